package simulator

import (
	"math"
	"strings"
	"time"

	"heatpump_check/internal/efficiency"
	"heatpump_check/internal/model"
)

const (
	DefaultAreaM2    = 120.0
	MinValidAreaM2   = 10.0
	MinAreaM2        = 20.0
	DefaultOccupants = 3
	DefaultPriceCt   = 30.0
	DefaultRoomTempC = 20.0

	dateLayout = "2006-01-02"
)

// Normalizer turns questionnaire input into a fully defaulted Profile.
type Normalizer struct {
	// DefaultPriceCt is used when no positive price was entered.
	DefaultPriceCt float64
}

// Normalize applies the built-in defaults. now stands in for a missing
// billing end date.
func Normalize(in model.Input, now time.Time) model.Profile {
	return Normalizer{DefaultPriceCt: DefaultPriceCt}.Normalize(in, now)
}

// Normalize never fails: every invalid or missing value falls back to a
// documented default.
func (n Normalizer) Normalize(in model.Input, now time.Time) model.Profile {
	p := model.Profile{
		PostalCode: strings.TrimSpace(in.PostalCode),
		Building: model.Building{
			AreaM2:             area(in.AreaM2),
			Type:               model.ParseBuildingType(in.BuildingType),
			YearBracket:        model.ParseYearBracket(in.YearBracket),
			Renovations:        model.ParseRenovations(in.Renovations),
			Occupants:          occupants(in.Occupants),
			TargetRoomTempC:    positiveOr(in.TargetRoomTempC, DefaultRoomTempC),
			HasAutoControllers: model.ParseTriState(in.AutoControllers) == model.Yes,
			ShowersPerDay:      positiveOr(in.ShowersPerDay, 0),
		},
		HeatPump: model.HeatPump{
			Emitter:            model.ParseEmitter(in.Emitter),
			RadiatorCondition:  model.ParseRadiatorCondition(in.RadiatorCondition),
			HeatPumpRadiators:  model.ParseTriState(in.HeatPumpRadiators),
			HydraulicBalancing: model.ParseTriState(in.HydraulicBalancing),
			BufferTank:         model.ParseTriState(in.BufferTank) == model.Yes,
		},
		PricePerKWh: n.price(in.PriceCtPerKWh) / 100,
	}

	if v, ok := positive(in.FlowTempC); ok {
		p.HeatPump.FlowTempC = v
		p.HeatPump.FlowTempDeclared = true
	} else {
		p.HeatPump.FlowTempC = efficiency.DefaultFlowTemp(p.HeatPump)
	}

	if in.HasConsumption {
		if metered, ok := positive(in.MeteredKWh); ok {
			start, end := billingPeriod(in.BillingStart, in.BillingEnd, now)
			p.Consumption = &model.Consumption{
				MeteredKWh:   metered,
				BillingStart: start,
				BillingEnd:   end,
				ProducedKWh:  positiveOr(in.ProducedKWh, 0),
			}
		}
	}

	if a := in.AuxHeater; a != nil {
		p.AuxHeater = &model.AuxHeater{
			Present:        model.ParseTriState(a.Present),
			RatedPowerKW:   positiveOr(a.RatedPowerKW, 0),
			OperatingHours: positiveOr(a.OperatingHours, 0),
			Mode:           model.ParseAuxMode(a.Mode),
		}
	}

	if pv := in.PV; pv != nil {
		p.PV = &model.PV{
			Present:            model.ParsePVPresence(pv.Present),
			CapacityKWp:        positiveOr(pv.CapacityKWp, 0),
			Orientation:        model.ParseOrientation(pv.Orientation),
			HasBattery:         model.ParseTriState(pv.HasBattery) == model.Yes,
			BatteryCapacityKWh: positiveOr(pv.BatteryCapacityKWh, 0),
		}
	}

	return p
}

func (n Normalizer) price(ct *float64) float64 {
	if v, ok := positive(ct); ok {
		return v
	}
	if n.DefaultPriceCt > 0 {
		return n.DefaultPriceCt
	}
	return DefaultPriceCt
}

func area(v *float64) float64 {
	a, ok := positive(v)
	if !ok || a < MinValidAreaM2 {
		a = DefaultAreaM2
	}
	return math.Max(a, MinAreaM2)
}

func occupants(v *int) int {
	if v == nil || *v < 1 {
		return DefaultOccupants
	}
	return *v
}

// billingPeriod parses both dates. A start without an end runs until now;
// an end without a start is ignored.
func billingPeriod(startStr, endStr string, now time.Time) (time.Time, time.Time) {
	start, okStart := parseDate(startStr)
	end, okEnd := parseDate(endStr)
	switch {
	case okStart && okEnd:
		return start, end
	case okStart && !now.IsZero():
		return start, now
	default:
		return time.Time{}, time.Time{}
	}
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func positive(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v <= 0 {
		return 0, false
	}
	return *v, true
}

func positiveOr(v *float64, def float64) float64 {
	if x, ok := positive(v); ok {
		return x
	}
	return def
}
