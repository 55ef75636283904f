package simulator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatpump_check/internal/efficiency"
	"heatpump_check/internal/model"
)

func typicalInput() model.Input {
	return model.Input{
		PostalCode:         "50667",
		AreaM2:             f64(140),
		BuildingType:       "existing",
		YearBracket:        "1979_1994",
		Renovations:        []string{"windows"},
		Occupants:          intp(3),
		Emitter:            "radiator",
		RadiatorCondition:  "renovated",
		HydraulicBalancing: "yes",
		BufferTank:         "no",
		FlowTempC:          f64(45),
		AutoControllers:    "yes",
	}
}

func TestRun_NoReading(t *testing.T) {
	res := Run(Normalize(typicalInput(), evalDate))

	assert.False(t, res.HasActual)
	assert.Equal(t, model.ScoreNotApplicable, res.ComparabilityScore)
	assert.Equal(t, res.SimulatedKWh, res.ActualKWh)
	assert.Equal(t, 0.0, res.DeviationPercent)
	assert.Equal(t, 0.0, res.Cost.DifferenceCost)
	assert.Equal(t, 0.0, res.MeasuredFactor)
}

func TestRun_DemandAndFactors(t *testing.T) {
	res := Run(Normalize(typicalInput(), evalDate))

	assert.Equal(t, "50", res.Climate.Prefix)
	assert.Greater(t, res.SpecificDemandKWhM2, 45.0)
	assert.InDelta(t, res.SpecificDemandKWhM2*140, res.HeatingDemandKWh, 1e-6)
	assert.InDelta(t, 1500, res.HotWaterDemandKWh, 1e-9)
	assert.InDelta(t, res.HeatingDemandKWh+res.HotWaterDemandKWh, res.TotalHeatDemandKWh, 1e-9)

	assert.GreaterOrEqual(t, res.HeatingFactor, efficiency.MinHeatingFactor)
	assert.LessOrEqual(t, res.HeatingFactor, efficiency.MaxHeatingFactor)
	assert.GreaterOrEqual(t, res.HotWaterFactor, efficiency.MinHotWaterFactor)
	assert.LessOrEqual(t, res.HotWaterFactor, efficiency.MaxHotWaterFactor)
	assert.Less(t, res.SystemFactor, res.HeatingFactor)
	assert.Greater(t, res.SystemFactor, res.HotWaterFactor)

	expected := res.HeatingDemandKWh/res.HeatingFactor + res.HotWaterDemandKWh/res.HotWaterFactor
	assert.InDelta(t, expected, res.SimulatedKWh, 1e-6)
}

func TestRun_Costs(t *testing.T) {
	in := typicalInput()
	in.PriceCtPerKWh = f64(40)
	res := Run(Normalize(in, evalDate))

	assert.Equal(t, 0.40, res.Cost.PricePerKWh)
	assert.InDelta(t, res.SimulatedKWh*0.40, res.Cost.SimulatedAnnualCost, 1e-9)
	assert.InDelta(t, res.TotalHeatDemandKWh/0.92*0.12, res.Cost.GasReferenceCost, 1e-9)
	assert.InDelta(t, res.Cost.GasReferenceCost-res.Cost.ActualAnnualCost, res.Cost.SavingsVsGas, 1e-9)
}

func TestRun_FullYearReading(t *testing.T) {
	in := typicalInput()
	in.HasConsumption = true
	in.MeteredKWh = f64(5200)
	in.ProducedKWh = f64(17680)
	in.BillingStart = "2024-01-01"
	in.BillingEnd = "2025-01-01"
	res := Run(Normalize(in, evalDate))

	assert.True(t, res.HasActual)
	assert.False(t, res.IsPartialPeriod)
	assert.Equal(t, 5200.0, res.ActualKWh)
	assert.Equal(t, 366, res.BillingDays)
	assert.Equal(t, 100, res.ComparabilityScore)
	assert.InDelta(t, (5200-res.SimulatedKWh)/res.SimulatedKWh*100, res.DeviationPercent, 1e-9)
	assert.InDelta(t, 3.4, res.MeasuredFactor, 1e-9)
}

func TestRun_PartialReadingIsAnnualized(t *testing.T) {
	in := typicalInput()
	in.HasConsumption = true
	in.MeteredKWh = f64(3000)
	in.BillingStart = "2024-10-01"
	in.BillingEnd = "2025-04-01"
	res := Run(Normalize(in, evalDate))

	assert.True(t, res.IsPartialPeriod)
	assert.NotEqual(t, 3000.0, res.ActualKWh)
	assert.Greater(t, res.ActualKWh, 3000.0)
	assert.Greater(t, res.ComparabilityScore, 0)
	assert.Less(t, res.ComparabilityScore, 100)
}

func TestRun_StartWithoutEndUsesEvaluationDate(t *testing.T) {
	in := typicalInput()
	in.HasConsumption = true
	in.MeteredKWh = f64(2500)
	in.BillingStart = "2024-10-01"
	res := Run(Normalize(in, evalDate))

	assert.True(t, res.IsPartialPeriod)
	assert.Equal(t, 165, res.BillingDays)
}

func TestRun_LargeDeviationTriggersAudit(t *testing.T) {
	in := typicalInput()
	in.HasConsumption = true
	in.MeteredKWh = f64(20000)
	res := Run(Normalize(in, evalDate))

	require.Greater(t, res.DeviationPercent, 30.0)
	assert.Equal(t, model.CategoryEnergyAudit, res.Recommendations[0].Category)

	var programs []string
	for _, p := range res.Funding {
		programs = append(programs, p.Measure)
	}
	assert.Contains(t, programs, "On-site energy consultation")
}

func TestRun_UnderfloorHighFlowTemperature(t *testing.T) {
	in := typicalInput()
	in.Emitter = "underfloor"
	in.FlowTempC = f64(45)
	res := Run(Normalize(in, evalDate))

	found := false
	for _, r := range res.Recommendations {
		if strings.Contains(r.Title, "flow temperature") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRun_NoBalancingTriggersRecommendation(t *testing.T) {
	in := typicalInput()
	in.HydraulicBalancing = "no"
	res := Run(Normalize(in, evalDate))

	require.NotEmpty(t, res.Recommendations)
	found := false
	for _, r := range res.Recommendations {
		if strings.Contains(strings.ToLower(r.Title), "hydraulic balancing") {
			found = true
		}
	}
	assert.True(t, found)
	require.NotEmpty(t, res.Funding)
	assert.Equal(t, "Heating system optimisation (hydraulic balancing)", res.Funding[0].Measure)
}

func TestRun_UnrenovatedOldHouseGetsEnvelopeAdvice(t *testing.T) {
	in := typicalInput()
	in.YearBracket = "before_1960"
	in.Renovations = nil
	res := Run(Normalize(in, evalDate))

	require.Greater(t, res.SpecificDemandKWhM2, 100.0)
	found := false
	for _, r := range res.Recommendations {
		if r.Category == model.CategoryBuildingEnvelope {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRun_OptionalAnalyses(t *testing.T) {
	in := typicalInput()
	res := Run(Normalize(in, evalDate))
	assert.Nil(t, res.AuxHeater)
	assert.Nil(t, res.PV)

	in.AuxHeater = &model.AuxHeaterInput{Present: "yes", Mode: "parallel"}
	in.PV = &model.PVInput{Present: "yes", CapacityKWp: f64(9.5), Orientation: "south"}
	res = Run(Normalize(in, evalDate))

	require.NotNil(t, res.AuxHeater)
	assert.True(t, res.AuxHeater.HoursEstimated)
	require.NotNil(t, res.PV)
	assert.Equal(t, 9.5, res.PV.CapacityKWp)
	assert.Len(t, res.PV.Months, 12)
}

func TestRun_AlwaysHasMaintenanceAndFundingSlice(t *testing.T) {
	res := Run(Normalize(model.Input{}, evalDate))
	assert.NotNil(t, res.Funding)

	found := false
	for _, r := range res.Recommendations {
		if r.Category == model.CategoryMaintenance {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRun_Deterministic(t *testing.T) {
	in := typicalInput()
	in.HasConsumption = true
	in.MeteredKWh = f64(4100)
	in.BillingStart = "2024-03-01"
	in.AuxHeater = &model.AuxHeaterInput{Present: "yes"}
	in.PV = &model.PVInput{Present: "planned", HasBattery: "yes"}

	a := Run(Normalize(in, evalDate))
	b := Run(Normalize(in, evalDate))
	assert.Equal(t, a, b)
}
