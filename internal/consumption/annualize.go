// Package consumption normalizes metered heat-pump consumption to a full year.
package consumption

import (
	"math"
	"time"
)

const (
	// FullYearDays is the billing span from which a reading counts as a
	// full year and is not extrapolated.
	FullYearDays = 350

	// FlatShare is the part of annual consumption spread evenly over the
	// year (hot water, standby), independent of heating.
	FlatShare = 0.10

	// MinCoveredFraction bounds the extrapolation of very short periods.
	MinCoveredFraction = 0.05
)

// heatingShare is the expected fraction of annual consumption falling into
// each month for the heating part; the values sum to 1 - FlatShare.
var heatingShare = [12]float64{
	0.165, // Jan
	0.140, // Feb
	0.120, // Mar
	0.075, // Apr
	0.035, // May
	0.010, // Jun
	0.005, // Jul
	0.005, // Aug
	0.020, // Sep
	0.060, // Oct
	0.115, // Nov
	0.150, // Dec
}

// MonthlyShare returns the expected fraction of annual consumption that
// falls into the given month, flat share included. The twelve values sum to 1.
func MonthlyShare(m time.Month) float64 {
	if m < time.January || m > time.December {
		return 0
	}
	return heatingShare[m-1] + FlatShare/12
}

// Annualized is a metered reading projected to a full year.
type Annualized struct {
	KWh             float64 `json:"kwh"`
	Days            int     `json:"days"`
	IsPartial       bool    `json:"is_partial"`
	CoveredFraction float64 `json:"covered_fraction"`
}

// Annualize projects a metered reading over [start, end) to a full year
// using the monthly demand curve. Zero dates mean the reading already covers
// a full year.
func Annualize(meteredKWh float64, start, end time.Time) Annualized {
	if start.IsZero() || end.IsZero() {
		return Annualized{KWh: meteredKWh, Days: 365, CoveredFraction: 1}
	}

	start, end = civilDate(start), civilDate(end)
	days := int(math.Round(end.Sub(start).Hours() / 24))
	if days <= 0 {
		return Annualized{KWh: meteredKWh}
	}
	if days >= FullYearDays {
		return Annualized{KWh: meteredKWh, Days: days, CoveredFraction: 1}
	}

	covered := CoveredFraction(start, end)
	if covered < MinCoveredFraction {
		covered = MinCoveredFraction
	}

	return Annualized{
		KWh:             math.Round(meteredKWh / covered),
		Days:            days,
		IsPartial:       true,
		CoveredFraction: covered,
	}
}

// CoveredFraction sums the expected share of annual consumption over every
// calendar day in [start, end).
func CoveredFraction(start, end time.Time) float64 {
	var fraction float64
	end = civilDate(end)
	for d := civilDate(start); d.Before(end); d = d.AddDate(0, 0, 1) {
		fraction += MonthlyShare(d.Month()) / float64(daysIn(d.Year(), d.Month()))
	}
	return fraction
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
