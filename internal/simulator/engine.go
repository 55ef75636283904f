// Package simulator runs the full efficiency check for one household.
package simulator

import (
	"heatpump_check/internal/auxheater"
	"heatpump_check/internal/climate"
	"heatpump_check/internal/consumption"
	"heatpump_check/internal/demand"
	"heatpump_check/internal/efficiency"
	"heatpump_check/internal/funding"
	"heatpump_check/internal/model"
	"heatpump_check/internal/recommend"
	"heatpump_check/internal/solar"
)

const (
	// GasPricePerKWh and GasBoilerEfficiency price the same heat with a
	// condensing gas boiler for reference.
	GasPricePerKWh      = 0.12
	GasBoilerEfficiency = 0.92
)

// Run derives every metric, recommendation and funding match for p.
// It is a pure function of its input.
func Run(p model.Profile) model.SimulationResult {
	cp := climate.Lookup(p.PostalCode)

	heating := demand.EstimateHeating(p.Building, cp)
	hotWater := demand.EstimateHotWater(p.Building.Occupants, p.Building.ShowersPerDay)

	hf := efficiency.HeatingFactor(efficiency.ParamsFor(p.HeatPump, cp))
	hwf := efficiency.HotWaterFactor(cp.AvgOutdoorC)

	res := model.SimulationResult{
		Climate:             cp,
		FlowTempC:           p.HeatPump.FlowTempC,
		HeatingFactor:       hf,
		HotWaterFactor:      hwf,
		SpecificDemandKWhM2: heating.SpecificKWhM2,
		HeatingDemandKWh:    heating.AbsoluteKWh,
		HotWaterDemandKWh:   hotWater,
		TotalHeatDemandKWh:  heating.AbsoluteKWh + hotWater,
	}
	res.SimulatedKWh = heating.AbsoluteKWh/hf + hotWater/hwf
	res.SystemFactor = res.TotalHeatDemandKWh / res.SimulatedKWh

	compare(&res, p.Consumption)
	res.Cost = costs(res, p.PricePerKWh)

	if p.AuxHeater != nil {
		res.AuxHeater = auxheater.Analyze(auxheater.Input{
			Heater:        *p.AuxHeater,
			ClimateFactor: climate.Factor(cp),
			SimulatedKWh:  res.SimulatedKWh,
			ActualKWh:     res.ActualKWh,
			TotalHeatKWh:  res.TotalHeatDemandKWh,
			SystemFactor:  res.SystemFactor,
			PricePerKWh:   p.PricePerKWh,
		})
	}
	if p.PV != nil {
		res.PV = solar.Estimate(solar.Params{
			PV:          *p.PV,
			PostalCode:  p.PostalCode,
			HeatPumpKWh: res.ConsumptionBasis(),
			PricePerKWh: p.PricePerKWh,
		})
	}

	res.Recommendations = recommend.Evaluate(recommend.Facts{
		Profile:             p,
		FlowTempC:           res.FlowTempC,
		HeatingFactor:       hf,
		SpecificDemandKWhM2: res.SpecificDemandKWhM2,
		SimulatedKWh:        res.SimulatedKWh,
		ActualKWh:           res.ActualKWh,
		HasActual:           res.HasActual,
		DeviationPercent:    res.DeviationPercent,
		AuxHeater:           res.AuxHeater,
		PV:                  res.PV,
	})
	res.Funding = funding.Match(res.Recommendations)
	return res
}

// compare fills the actual-consumption fields. Without a reading, actual
// equals simulated and the comparability score is not applicable.
func compare(res *model.SimulationResult, c *model.Consumption) {
	if c == nil || c.MeteredKWh <= 0 {
		res.ActualKWh = res.SimulatedKWh
		res.ComparabilityScore = model.ScoreNotApplicable
		return
	}

	a := consumption.Annualize(c.MeteredKWh, c.BillingStart, c.BillingEnd)
	res.HasActual = true
	res.ActualKWh = a.KWh
	res.BillingDays = a.Days
	res.IsPartialPeriod = a.IsPartial
	res.ComparabilityScore = consumption.Comparability(a)
	if res.SimulatedKWh > 0 {
		res.DeviationPercent = (a.KWh - res.SimulatedKWh) / res.SimulatedKWh * 100
	}
	if c.ProducedKWh > 0 {
		res.MeasuredFactor = c.ProducedKWh / c.MeteredKWh
	}
}

func costs(res model.SimulationResult, price float64) model.CostAnalysis {
	c := model.CostAnalysis{
		PricePerKWh:         price,
		SimulatedAnnualCost: res.SimulatedKWh * price,
		ActualAnnualCost:    res.ActualKWh * price,
		GasReferenceCost:    res.TotalHeatDemandKWh / GasBoilerEfficiency * GasPricePerKWh,
	}
	c.DifferenceCost = c.ActualAnnualCost - c.SimulatedAnnualCost
	c.SavingsVsGas = c.GasReferenceCost - c.ActualAnnualCost
	return c
}
