// Package recommend turns simulation results into a prioritized list of
// improvement actions.
//
// Rules are evaluated in the fixed order returned by Rules. Each rule that
// applies contributes one recommendation; the final list is stably sorted by
// priority so rule order is preserved within a tier.
package recommend

import (
	"sort"

	"heatpump_check/internal/model"
)

// Facts is everything a rule may look at.
type Facts struct {
	Profile model.Profile

	FlowTempC           float64
	HeatingFactor       float64
	SpecificDemandKWhM2 float64
	SimulatedKWh        float64
	ActualKWh           float64
	HasActual           bool
	DeviationPercent    float64

	AuxHeater *model.AuxHeaterAnalysis
	PV        *model.PVAnalysis
}

// Basis is the annual electricity consumption savings are estimated against.
func (f Facts) Basis() float64 {
	if f.ActualKWh > f.SimulatedKWh {
		return f.ActualKWh
	}
	return f.SimulatedKWh
}

// Rule is a predicate with the recommendation it produces.
type Rule struct {
	Name    string
	Applies func(Facts) bool
	Build   func(Facts) model.Recommendation
}

// Evaluate runs every rule against f and returns the applicable
// recommendations, high priority first.
func Evaluate(f Facts) []model.Recommendation {
	recs := make([]model.Recommendation, 0, 8)
	for _, r := range rules {
		if r.Applies(f) {
			recs = append(recs, r.Build(f))
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority.Rank() < recs[j].Priority.Rank()
	})
	return recs
}

// Rules returns the rule set in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Lookup returns the rule with the given name.
func Lookup(name string) (Rule, bool) {
	for _, r := range rules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}
