package consumption

import "math"

// ComparableDays is the billing span from which actual and simulated
// consumption are treated as directly comparable. It is distinct from
// FullYearDays.
const ComparableDays = 330

// Comparability scores (0-100) how well an annualized reading can be
// compared with the simulation. Readings over at least ComparableDays score
// 100; shorter periods lose confidence with the share of the year they miss.
// A reading with a non-positive billing span scores 0.
func Comparability(a Annualized) int {
	if a.Days <= 0 {
		return 0
	}
	if !a.IsPartial || a.Days >= ComparableDays {
		return 100
	}
	score := 40 + 60*a.CoveredFraction
	if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}
