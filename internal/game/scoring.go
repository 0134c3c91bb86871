package game

import "math"

// Scoring factors. Base points grow with the square of the path length; each
// turn adds a 15% bonus on top of the base.
const (
	baseFactor      = 10
	turnBonusFactor = 0.15
)

// Score maps a committed path to points:
//
//	base   = length² × 10
//	bonus  = base × 0.15 × turns
//	result = round((base + bonus) × multiplier)
//
// Rounding is half away from zero (math.Round); inputs are never negative.
// Pure and deterministic.
func Score(length, turns, multiplier int) int {
	base := float64(length*length) * baseFactor
	bonus := base * turnBonusFactor * float64(turns)
	return int(math.Round((base + bonus) * float64(multiplier)))
}
