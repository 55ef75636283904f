package solar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatpump_check/internal/model"
)

func TestMonthlyYield_SumsToReference(t *testing.T) {
	var sum float64
	for m := time.January; m <= time.December; m++ {
		sum += MonthlyYield(m)
	}
	assert.InDelta(t, 1000, sum, 1e-9)
	assert.Greater(t, MonthlyYield(time.June), MonthlyYield(time.December))
}

func TestOrientationFactor(t *testing.T) {
	assert.Equal(t, 1.0, OrientationFactor(model.OrientationSouth))
	assert.Equal(t, 0.95, OrientationFactor(model.OrientationSouthWest))
	assert.Equal(t, 0.82, OrientationFactor(model.OrientationEastWest))
	assert.Equal(t, 0.60, OrientationFactor(model.OrientationNorth))
}

func TestRegionalFactor(t *testing.T) {
	assert.Equal(t, 0.93, RegionalFactor("20095"))
	assert.Equal(t, 1.0, RegionalFactor("50667"))
	assert.Equal(t, 1.07, RegionalFactor("80331"))
	assert.Equal(t, 1.0, RegionalFactor(""))
}

func TestOverlapFraction(t *testing.T) {
	assert.Equal(t, 0.35, OverlapFraction(false, 10))
	assert.InDelta(t, 0.45, OverlapFraction(true, 5), 1e-9)
	assert.InDelta(t, 0.55, OverlapFraction(true, 10), 1e-9)
	assert.InDelta(t, 0.65, OverlapFraction(true, 30), 1e-9, "battery benefit is capped")
}

func TestEstimate_NoPV(t *testing.T) {
	assert.Nil(t, Estimate(Params{PV: model.PV{Present: model.PVNo}, HeatPumpKWh: 4000}))
}

func TestEstimate_MonthlyOverlapBounded(t *testing.T) {
	a := Estimate(Params{
		PV:          model.PV{Present: model.PVYes, CapacityKWp: 8, Orientation: model.OrientationSouth},
		PostalCode:  "50667",
		HeatPumpKWh: 4000,
		PricePerKWh: 0.30,
	})
	require.NotNil(t, a)
	require.Len(t, a.Months, 12)

	assert.InDelta(t, 8000, a.AnnualYieldKWh, 1e-6)
	var self float64
	for _, m := range a.Months {
		assert.LessOrEqual(t, m.SelfConsumptionKWh, m.YieldKWh*a.OverlapFraction+1e-9)
		assert.LessOrEqual(t, m.SelfConsumptionKWh, m.HeatPumpKWh+1e-9)
		self += m.SelfConsumptionKWh
	}
	assert.InDelta(t, self, a.SelfConsumptionKWh, 1e-9)

	// January is limited by PV yield, July by heat-pump demand.
	assert.InDelta(t, 200*0.35, a.Months[0].SelfConsumptionKWh, 1e-9)
	assert.InDelta(t, a.Months[6].HeatPumpKWh, a.Months[6].SelfConsumptionKWh, 1e-9)

	assert.Greater(t, a.SelfConsumptionShare, 0.0)
	assert.Less(t, a.SelfConsumptionShare, 1.0)
	assert.InDelta(t, a.SelfConsumptionKWh*0.22, a.AnnualSavings, 1e-9)
}

func TestEstimate_BatteryIncreasesSelfConsumption(t *testing.T) {
	params := Params{
		PV:          model.PV{Present: model.PVYes, CapacityKWp: 6, Orientation: model.OrientationEast},
		PostalCode:  "10115",
		HeatPumpKWh: 5000,
		PricePerKWh: 0.32,
	}
	without := Estimate(params)

	params.PV.HasBattery = true
	with := Estimate(params)

	require.NotNil(t, without)
	require.NotNil(t, with)
	assert.InDelta(t, DirectOverlap+BatteryOverlap*0.5, with.OverlapFraction, 1e-9, "default battery size")
	assert.Greater(t, with.SelfConsumptionKWh, without.SelfConsumptionKWh)
	assert.Greater(t, with.AnnualSavings, without.AnnualSavings)
}

func TestEstimate_PlannedDefaultsCapacity(t *testing.T) {
	a := Estimate(Params{PV: model.PV{Present: model.PVPlanned}, HeatPumpKWh: 3000, PricePerKWh: 0.3})
	require.NotNil(t, a)
	assert.Equal(t, DefaultCapacityKWp, a.CapacityKWp)
}

func TestEstimate_PriceBelowFeedIn(t *testing.T) {
	a := Estimate(Params{PV: model.PV{Present: model.PVYes, CapacityKWp: 5}, HeatPumpKWh: 3000, PricePerKWh: 0.05})
	require.NotNil(t, a)
	assert.Equal(t, 0.0, a.AnnualSavings)
}
