// Package efficiency estimates seasonal performance factors from a Carnot
// ceiling scaled by an empirical quality coefficient.
package efficiency

import "heatpump_check/internal/model"

const (
	kelvin = 273.15

	// SourceOffsetC lifts the average outdoor temperature to an effective
	// source temperature.
	SourceOffsetC = 2.0

	MinHeatingFactor = 2.0
	MaxHeatingFactor = 5.5

	MinHotWaterFactor = 1.8
	MaxHotWaterFactor = 3.5

	// HotWaterSinkC is the storage target needed for legionella protection.
	HotWaterSinkC = 52.0

	baseCoefficient     = 0.45
	hotWaterCoefficient = 0.40
)

// Params are the system properties the heating factor depends on.
type Params struct {
	FlowTempC          float64
	AvgOutdoorC        float64
	Emitter            model.Emitter
	HeatPumpRadiators  bool
	HydraulicBalancing model.TriState
	BufferTank         bool
}

// ParamsFor collects the heating-factor inputs from a heat-pump profile.
func ParamsFor(hp model.HeatPump, cp model.ClimateProfile) Params {
	return Params{
		FlowTempC:          hp.FlowTempC,
		AvgOutdoorC:        cp.AvgOutdoorC,
		Emitter:            hp.Emitter,
		HeatPumpRadiators:  hp.HeatPumpRadiators == model.Yes,
		HydraulicBalancing: hp.HydraulicBalancing,
		BufferTank:         hp.BufferTank,
	}
}

// CarnotCeiling is the theoretical coefficient of performance between the
// given source and sink temperatures (°C). It returns 0 when there is no
// positive temperature lift.
func CarnotCeiling(sourceC, sinkC float64) float64 {
	sink := sinkC + kelvin
	lift := sink - (sourceC + kelvin)
	if lift <= 0 {
		return 0
	}
	return sink / lift
}

// Coefficient returns the empirical fraction of the Carnot ceiling a real
// installation reaches.
func Coefficient(p Params) float64 {
	c := baseCoefficient
	if p.Emitter == model.EmitterUnderfloor {
		c += 0.02
	}
	if p.HeatPumpRadiators {
		c += 0.015
	}
	switch p.HydraulicBalancing {
	case model.Yes:
		c += 0.02
	case model.No:
		c -= 0.02
	}
	if p.BufferTank {
		c -= 0.01
	}
	return c
}

// HeatingFactor is the seasonal performance factor for space heating,
// bounded to [2.0, 5.5].
func HeatingFactor(p Params) float64 {
	ceiling := CarnotCeiling(p.AvgOutdoorC+SourceOffsetC, p.FlowTempC)
	if ceiling == 0 {
		return MaxHeatingFactor
	}
	return clamp(ceiling*Coefficient(p), MinHeatingFactor, MaxHeatingFactor)
}

// HotWaterFactor is the seasonal performance factor for domestic hot water,
// bounded to [1.8, 3.5].
func HotWaterFactor(avgOutdoorC float64) float64 {
	ceiling := CarnotCeiling(avgOutdoorC+SourceOffsetC, HotWaterSinkC)
	if ceiling == 0 {
		return MaxHotWaterFactor
	}
	return clamp(ceiling*hotWaterCoefficient, MinHotWaterFactor, MaxHotWaterFactor)
}

// DefaultFlowTemp is the flow temperature assumed when none was declared.
func DefaultFlowTemp(hp model.HeatPump) float64 {
	switch {
	case hp.Emitter == model.EmitterUnderfloor:
		return 35
	case hp.HeatPumpRadiators == model.Yes || hp.RadiatorCondition == model.RadiatorRenovated:
		return 45
	default:
		return 55
	}
}

// GainPerDegree is the approximate relative efficiency gain per °C of flow
// temperature reduction.
const GainPerDegree = 0.025

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
