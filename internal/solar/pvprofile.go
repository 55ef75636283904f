// Package solar estimates how much of the heat pump's electricity an on-site
// photovoltaic system can cover.
package solar

import (
	"math"
	"strings"
	"time"

	"heatpump_check/internal/consumption"
	"heatpump_check/internal/model"
)

const (
	// FeedInTariff is paid per exported kWh (EUR).
	FeedInTariff = 0.08

	DefaultCapacityKWp = 8.0
	DefaultBatteryKWh  = 5.0

	// DirectOverlap is the share of PV yield used directly without storage.
	DirectOverlap = 0.35

	// BatteryOverlap is added per 10 kWh of storage, up to 1.5 times.
	BatteryOverlap  = 0.20
	maxBatteryUnits = 1.5
)

// monthlyYield is the yield of a south-facing 1 kWp system in kWh per
// month, Jan..Dec. It sums to 1000 kWh/kWp.
var monthlyYield = [12]float64{25, 45, 80, 115, 135, 140, 140, 120, 90, 60, 30, 20}

// MonthlyYield returns the south-reference yield per kWp for a month.
func MonthlyYield(m time.Month) float64 {
	if m < time.January || m > time.December {
		return 0
	}
	return monthlyYield[m-1]
}

// OrientationFactor scales yield relative to a south-facing array.
func OrientationFactor(o model.Orientation) float64 {
	switch o {
	case model.OrientationSouthEast, model.OrientationSouthWest:
		return 0.95
	case model.OrientationEast, model.OrientationWest, model.OrientationEastWest:
		return 0.82
	case model.OrientationNorth:
		return 0.60
	default:
		return 1.0
	}
}

// RegionalFactor bands yield by the first postal digit: the north (1, 2)
// gets less sun, the south (7, 8, 9) more.
func RegionalFactor(postalCode string) float64 {
	code := strings.TrimSpace(postalCode)
	if code == "" {
		return 1.0
	}
	switch code[0] {
	case '1', '2':
		return 0.93
	case '7', '8', '9':
		return 1.07
	default:
		return 1.0
	}
}

// OverlapFraction is the share of PV yield the household can use itself.
func OverlapFraction(hasBattery bool, batteryKWh float64) float64 {
	if !hasBattery {
		return DirectOverlap
	}
	return DirectOverlap + BatteryOverlap*math.Min(batteryKWh/10, maxBatteryUnits)
}

// Params are the inputs of the overlap estimate.
type Params struct {
	PV          model.PV
	PostalCode  string
	HeatPumpKWh float64
	PricePerKWh float64
}

// Estimate returns nil when no PV system exists or is planned.
func Estimate(p Params) *model.PVAnalysis {
	if p.PV.Present != model.PVYes && p.PV.Present != model.PVPlanned {
		return nil
	}

	kWp := p.PV.CapacityKWp
	if kWp <= 0 {
		kWp = DefaultCapacityKWp
	}
	battery := p.PV.BatteryCapacityKWh
	if p.PV.HasBattery && battery <= 0 {
		battery = DefaultBatteryKWh
	}

	overlap := OverlapFraction(p.PV.HasBattery, battery)
	scale := kWp * OrientationFactor(p.PV.Orientation) * RegionalFactor(p.PostalCode)

	a := &model.PVAnalysis{
		CapacityKWp:     kWp,
		OverlapFraction: overlap,
		Months:          make([]model.PVMonth, 0, 12),
	}
	for m := time.January; m <= time.December; m++ {
		yield := MonthlyYield(m) * scale
		hp := p.HeatPumpKWh * consumption.MonthlyShare(m)
		self := math.Min(yield*overlap, hp)

		a.AnnualYieldKWh += yield
		a.SelfConsumptionKWh += self
		a.Months = append(a.Months, model.PVMonth{
			Month:              int(m),
			YieldKWh:           yield,
			HeatPumpKWh:        hp,
			SelfConsumptionKWh: self,
		})
	}

	if p.HeatPumpKWh > 0 {
		a.SelfConsumptionShare = a.SelfConsumptionKWh / p.HeatPumpKWh
	}
	a.AnnualSavings = a.SelfConsumptionKWh * math.Max(p.PricePerKWh-FeedInTariff, 0)
	return a
}
