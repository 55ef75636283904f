package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatpump_check/internal/model"
)

func TestMeterParser_Parse(t *testing.T) {
	input := `date,meter_kwh,heat_kwh
2024-01-01,12034.5,40110
2024-04-01,13600,45600
2024-07-01,14000,
2025-01-01,16234.5,54390`

	var parser Parser = NewMeterParser()
	readings, err := parser.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, readings, 4)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), readings[0].Date)
	assert.InDelta(t, 12034.5, readings[0].MeterKWh, 0.001)
	assert.True(t, readings[0].HasHeat)
	assert.InDelta(t, 40110, readings[0].HeatKWh, 0.001)

	assert.False(t, readings[2].HasHeat, "empty heat column")
}

func TestMeterParser_ElectricityOnly(t *testing.T) {
	input := `date,meter_kwh
2024-10-01,500
2025-04-01,3500`

	readings, err := NewMeterParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, readings, 2)
	assert.False(t, readings[1].HasHeat)
}

func TestMeterParser_SkipsBadRowsAndSorts(t *testing.T) {
	input := `date,meter_kwh
2025-04-01,3500
not-a-date,100
2024-12-01,unavailable
2024-10-01,500`

	readings, err := NewMeterParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, readings, 2)
	assert.Equal(t, time.October, readings[0].Date.Month())
	assert.Equal(t, time.April, readings[1].Date.Month())
}

func TestMeterParser_InvalidHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"wrong names", "day,value\n2024-01-01,1"},
		{"single column", "date\n2024-01-01"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMeterParser().Parse(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestToConsumption(t *testing.T) {
	readings := []MeterReading{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), MeterKWh: 1000, HeatKWh: 20000, HasHeat: true},
		{Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), MeterKWh: 3000},
		{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), MeterKWh: 5000, HeatKWh: 34000, HasHeat: true},
	}

	c, err := ToConsumption(readings)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, c.MeteredKWh)
	assert.Equal(t, 14000.0, c.ProducedKWh)
	assert.Equal(t, readings[0].Date, c.BillingStart)
	assert.Equal(t, readings[2].Date, c.BillingEnd)
}

func TestToConsumption_Errors(t *testing.T) {
	_, err := ToConsumption(nil)
	assert.ErrorIs(t, err, ErrTooFewReadings)

	_, err = ToConsumption([]MeterReading{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), MeterKWh: 5000},
		{Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), MeterKWh: 100},
	})
	assert.Error(t, err, "counter reset")
}

func TestApplyConsumption(t *testing.T) {
	var in model.Input
	ApplyConsumption(&in, model.Consumption{
		MeteredKWh:   4000,
		BillingStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		BillingEnd:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.True(t, in.HasConsumption)
	require.NotNil(t, in.MeteredKWh)
	assert.Equal(t, 4000.0, *in.MeteredKWh)
	assert.Equal(t, "2024-01-01", in.BillingStart)
	assert.Equal(t, "2025-01-01", in.BillingEnd)
	assert.Nil(t, in.ProducedKWh)
}
