// Package funding maps recommendations to subsidy programs.
package funding

import (
	"strings"

	"heatpump_check/internal/model"
)

type bucket struct {
	name     string
	keywords []string
	program  model.FundingProgram
}

func capAt(v float64) *float64 { return &v }

// buckets are scanned in order; each contributes at most one program.
var buckets = []bucket{
	{
		name:     "system_optimisation",
		keywords: []string{"hydraulic", "hydraulischer abgleich"},
		program: model.FundingProgram{
			Program:            "BEG EM",
			Measure:            "Heating system optimisation (hydraulic balancing)",
			SubsidyRatePercent: 15,
			CapAmount:          capAt(30000),
			HasBonus:           true,
			Note:               "+5 % with an individual renovation roadmap (iSFP). Apply before commissioning the work.",
			Link:               "https://www.bafa.de/DE/Energie/Effiziente_Gebaeude/effiziente_gebaeude_node.html",
		},
	},
	{
		name:     "envelope",
		keywords: []string{"radiator", "insulation", "window", "envelope", "renovation"},
		program: model.FundingProgram{
			Program:            "BEG EM",
			Measure:            "Building envelope and heat distribution",
			SubsidyRatePercent: 15,
			CapAmount:          capAt(30000),
			HasBonus:           true,
			Note:               "+5 % with an individual renovation roadmap (iSFP). An energy efficiency expert must be involved.",
			Link:               "https://www.bafa.de/DE/Energie/Effiziente_Gebaeude/effiziente_gebaeude_node.html",
		},
	},
	{
		name:     "consultation",
		keywords: []string{"auditor", "audit", "energy consultation"},
		program: model.FundingProgram{
			Program:            "Energy consultation for residential buildings (EBW)",
			Measure:            "On-site energy consultation",
			SubsidyRatePercent: 50,
			CapAmount:          capAt(1300),
			Note:               "Covers the consultant's fee for one- and two-family houses.",
			Link:               "https://www.bafa.de/DE/Energie/Energieberatung/energieberatung_node.html",
		},
	},
}

// Match returns the funding programs the recommendations qualify for, in
// bucket order. The result is never nil.
func Match(recs []model.Recommendation) []model.FundingProgram {
	text := corpus(recs)
	out := make([]model.FundingProgram, 0, len(buckets))
	for _, b := range buckets {
		if containsAny(text, b.keywords) {
			out = append(out, b.clone())
		}
	}
	return out
}

// Catalog returns every program the matcher can emit.
func Catalog() []model.FundingProgram {
	out := make([]model.FundingProgram, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, b.clone())
	}
	return out
}

func (b bucket) clone() model.FundingProgram {
	p := b.program
	if p.CapAmount != nil {
		p.CapAmount = capAt(*p.CapAmount)
	}
	return p
}

func corpus(recs []model.Recommendation) string {
	var sb strings.Builder
	for _, r := range recs {
		sb.WriteString(r.Title)
		sb.WriteByte(' ')
		sb.WriteString(r.Impact)
		sb.WriteByte(' ')
		sb.WriteString(r.Context)
		for _, p := range r.Prerequisites {
			sb.WriteByte(' ')
			sb.WriteString(p)
		}
		sb.WriteByte('\n')
	}
	return strings.ToLower(sb.String())
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
