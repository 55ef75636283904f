package consumption

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyShare_SumsToOne(t *testing.T) {
	var sum float64
	for m := time.January; m <= time.December; m++ {
		sum += MonthlyShare(m)
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Greater(t, MonthlyShare(time.January), MonthlyShare(time.July))
	assert.Equal(t, 0.0, MonthlyShare(13))
}

func TestAnnualize_MissingDates(t *testing.T) {
	a := Annualize(4200, time.Time{}, time.Time{})
	assert.InDelta(t, 4200, a.KWh, 1e-9)
	assert.False(t, a.IsPartial)

	a = Annualize(4200, date(2024, 1, 1), time.Time{})
	assert.InDelta(t, 4200, a.KWh, 1e-9)
	assert.False(t, a.IsPartial)
}

func TestAnnualize_FullYearNeverScaled(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
	}{
		{"calendar year", date(2023, 1, 1), date(2024, 1, 1)},
		{"leap year", date(2024, 1, 1), date(2025, 1, 1)},
		{"heating season shifted", date(2023, 7, 1), date(2024, 7, 1)},
		{"threshold", date(2023, 1, 1), date(2023, 1, 1).AddDate(0, 0, FullYearDays)},
		{"longer than a year", date(2022, 6, 1), date(2024, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Annualize(5000, tt.start, tt.end)
			assert.False(t, a.IsPartial)
			assert.InDelta(t, 5000, a.KWh, 1e-9)
			assert.GreaterOrEqual(t, a.Days, FullYearDays)
		})
	}
}

func TestAnnualize_WinterHalfYear(t *testing.T) {
	a := Annualize(6000, date(2023, 10, 1), date(2024, 4, 1))

	assert.True(t, a.IsPartial)
	assert.Equal(t, 183, a.Days)
	assert.InDelta(t, 0.80, a.CoveredFraction, 1e-6)
	assert.InDelta(t, 7500, a.KWh, 1)
	assert.NotEqual(t, 6000.0, a.KWh)
	assert.Equal(t, a.KWh, float64(int(a.KWh)), "annualized value is rounded")
}

func TestAnnualize_SummerHalfYearExtrapolatesMore(t *testing.T) {
	winter := Annualize(1000, date(2023, 10, 1), date(2024, 4, 1))
	summer := Annualize(1000, date(2024, 4, 1), date(2024, 10, 1))
	assert.Greater(t, summer.KWh, winter.KWh)
}

func TestAnnualize_ShortPeriodFloored(t *testing.T) {
	a := Annualize(100, date(2024, 7, 1), date(2024, 7, 10))
	assert.True(t, a.IsPartial)
	assert.InDelta(t, MinCoveredFraction, a.CoveredFraction, 1e-9)
	assert.InDelta(t, 2000, a.KWh, 1e-9)
}

func TestAnnualize_NonPositiveSpan(t *testing.T) {
	a := Annualize(800, date(2024, 3, 1), date(2024, 3, 1))
	assert.False(t, a.IsPartial)
	assert.Equal(t, 0, a.Days)
	assert.InDelta(t, 800, a.KWh, 1e-9)

	a = Annualize(800, date(2024, 3, 1), date(2024, 1, 1))
	assert.Equal(t, 0, a.Days)
}

func TestAnnualize_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2023, 10, 1, 18, 30, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 6, 0, 0, 0, time.UTC)
	a := Annualize(6000, start, end)
	assert.Equal(t, 183, a.Days)
}

func TestCoveredFraction_FullYearIsOne(t *testing.T) {
	assert.InDelta(t, 1.0, CoveredFraction(date(2023, 1, 1), date(2024, 1, 1)), 1e-9)
	assert.InDelta(t, 1.0, CoveredFraction(date(2024, 1, 1), date(2025, 1, 1)), 1e-9)
}

func TestComparability(t *testing.T) {
	assert.Equal(t, 100, Comparability(Annualize(5000, time.Time{}, time.Time{})))
	assert.Equal(t, 100, Comparability(Annualize(5000, date(2023, 1, 1), date(2024, 1, 1))))
	assert.Equal(t, 0, Comparability(Annualize(5000, date(2024, 1, 1), date(2024, 1, 1))))

	// 340 days is partial for annualization but already comparable.
	a := Annualize(5000, date(2023, 1, 1), date(2023, 1, 1).AddDate(0, 0, 340))
	assert.True(t, a.IsPartial)
	assert.Equal(t, 100, Comparability(a))

	half := Comparability(Annualize(6000, date(2023, 10, 1), date(2024, 4, 1)))
	assert.Equal(t, 88, half)

	short := Comparability(Annualize(100, date(2024, 7, 1), date(2024, 7, 10)))
	assert.Less(t, short, half)
}
