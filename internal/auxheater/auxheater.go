// Package auxheater estimates how much a resistive backup heater drags down
// the overall performance of a heat-pump installation.
package auxheater

import "heatpump_check/internal/model"

const (
	DefaultPowerKW = 6.0

	EmergencyHours = 75.0
	ParallelHours  = 500.0
	UnknownHours   = 200.0

	// Efficiency of the heating element.
	Efficiency = 0.98

	GoodShareBelow     = 0.05
	CriticalShareAbove = 0.15

	// minEnergyKWh keeps the factor denominators away from zero.
	minEnergyKWh = 1.0
)

// Input holds the totals the analysis is layered on.
type Input struct {
	Heater        model.AuxHeater
	ClimateFactor float64
	SimulatedKWh  float64
	ActualKWh     float64
	TotalHeatKWh  float64
	// SystemFactor is the heat-pump-only performance factor used to price
	// the heat the backup heater delivered.
	SystemFactor float64
	PricePerKWh  float64
}

// Analyze returns nil unless a backup heater was declared present.
func Analyze(in Input) *model.AuxHeaterAnalysis {
	if in.Heater.Present != model.Yes {
		return nil
	}

	power := in.Heater.RatedPowerKW
	if power <= 0 {
		power = DefaultPowerKW
	}
	hours, estimated := in.Heater.OperatingHours, false
	if hours <= 0 {
		hours, estimated = EstimateHours(in.Heater.Mode, in.ClimateFactor), true
	}

	auxKWh := power * hours
	auxHeat := auxKWh * Efficiency

	basis := in.SimulatedKWh
	if in.ActualKWh > basis {
		basis = in.ActualKWh
	}

	var share, withAux float64
	if basis > 0 {
		share = auxKWh / basis
		withAux = in.TotalHeatKWh / basis
	}
	withoutAux := atLeast(in.TotalHeatKWh-auxHeat, minEnergyKWh) / atLeast(basis-auxKWh, minEnergyKWh)

	avoidable := 0.0
	if in.SystemFactor > 0 {
		avoidable = atLeast(auxKWh-auxHeat/in.SystemFactor, 0)
	}

	return &model.AuxHeaterAnalysis{
		RatedPowerKW:     power,
		OperatingHours:   hours,
		HoursEstimated:   estimated,
		ElectricityKWh:   auxKWh,
		HeatKWh:          auxHeat,
		Share:            share,
		FactorWithAux:    withAux,
		FactorWithoutAux: withoutAux,
		Rating:           Rate(share),
		ExtraAnnualCost:  avoidable * in.PricePerKWh,
		AvoidableKWh:     avoidable,
	}
}

// EstimateHours derives yearly runtime from the operating mode. Parallel
// operation scales with the local climate.
func EstimateHours(mode model.AuxMode, climateFactor float64) float64 {
	switch mode {
	case model.AuxEmergency:
		return EmergencyHours
	case model.AuxParallel:
		if climateFactor <= 0 {
			climateFactor = 1
		}
		return ParallelHours * climateFactor
	default:
		return UnknownHours
	}
}

// Rate maps an electricity share to its rating band.
func Rate(share float64) model.AuxRating {
	switch {
	case share < GoodShareBelow:
		return model.AuxRatingGood
	case share <= CriticalShareAbove:
		return model.AuxRatingNoticeable
	default:
		return model.AuxRatingCritical
	}
}

func atLeast(v, min float64) float64 {
	if v < min {
		return min
	}
	return v
}
