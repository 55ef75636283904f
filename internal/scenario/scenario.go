// Package scenario prices a user-selected combination of interventions.
package scenario

import (
	"math"

	"heatpump_check/internal/model"
)

const (
	// ReferenceAreaM2 is the house size catalog savings are normalized to.
	ReferenceAreaM2 = 120.0

	minSizeFactor = 0.5
	maxSizeFactor = 2.0

	// maxGainPercent bounds a single catalog entry.
	maxGainPercent = 95.0
)

// gainCeiling is the largest aggregate gain; float rounding would otherwise
// let many large entries land on exactly 100 %.
var gainCeiling = math.Nextafter(100, 0)

// Context carries the figures of the simulation a scenario builds on.
type Context struct {
	PricePerKWh   float64 `json:"price_per_kwh"`
	BaselineKWh   float64 `json:"baseline_kwh"`
	CurrentFactor float64 `json:"current_factor"`
	AreaM2        float64 `json:"area_m2"`
	// Catalog defaults to DefaultCatalog when empty.
	Catalog []model.Intervention `json:"catalog,omitempty"`
}

// SizeFactor scales reference savings to the actual heated area.
func SizeFactor(areaM2 float64) float64 {
	f := areaM2 / ReferenceAreaM2
	if f < minSizeFactor {
		return minSizeFactor
	}
	if f > maxSizeFactor {
		return maxSizeFactor
	}
	return f
}

// Compute aggregates the selected interventions in selection order. IDs
// missing from the catalog are skipped.
func Compute(selection []string, ctx Context) model.ScenarioResult {
	catalog := ctx.Catalog
	if len(catalog) == 0 {
		catalog = defaultCatalog
	}
	size := SizeFactor(ctx.AreaM2)

	res := model.ScenarioResult{Breakdown: make([]model.InterventionResult, 0, len(selection))}
	var running float64
	for _, id := range selection {
		iv, ok := Find(catalog, id)
		if !ok {
			continue
		}

		kwh := iv.BaselineKWhSavings * size
		euro := kwh * ctx.PricePerKWh
		gain := math.Min(math.Max(iv.EfficiencyGainPercent, 0), maxGainPercent)

		before := running
		running += gain * (1 - running/100)
		if running > gainCeiling {
			running = gainCeiling
		}

		res.CostMin += iv.CostMin
		res.CostMax += iv.CostMax
		res.TotalKWhSavings += kwh
		res.TotalEuroSavings += euro
		res.Breakdown = append(res.Breakdown, model.InterventionResult{
			ID:          iv.ID,
			Label:       iv.Label,
			CostMin:     iv.CostMin,
			CostMax:     iv.CostMax,
			KWhSavings:  kwh,
			EuroSavings: euro,
			GainPercent: running - before,
		})
	}

	res.CostMid = (res.CostMin + res.CostMax) / 2
	res.AggregateGainPercent = running
	res.ProjectedFactor = ctx.CurrentFactor * (1 + running/100)
	res.ProjectedConsumptionKWh = math.Max(ctx.BaselineKWh-res.TotalKWhSavings, 0)
	res.PaybackYears = Payback(res.CostMid, res.TotalEuroSavings)
	return res
}

// Payback returns years until cost is recovered, rounded to one decimal.
// Zero savings yield 0.
func Payback(cost, annualSavings float64) float64 {
	if annualSavings <= 0 {
		return 0
	}
	return math.Round(cost/annualSavings*10) / 10
}
