package levels

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/gridshift/internal/config"
	"github.com/vovakirdan/gridshift/internal/core"
)

// Tier is the difficulty band a map node draws its level from.
type Tier int

const (
	TierPuzzle Tier = iota
	TierElite
	TierBoss
)

// PickIndex chooses a level index for a tier out of n levels:
// puzzles draw uniformly from [0, floor(puzzle_fraction*n)], elites from
// [floor(elite_fraction*n), n-1] and the boss always gets n-1.
// The result is clamped to [0, n-1]. n must be positive.
func PickIndex(tier Tier, n int, sel config.LevelSelection, rng *rand.Rand) int {
	last := n - 1
	var lo, hi int
	switch tier {
	case TierBoss:
		lo, hi = last, last
	case TierElite:
		lo, hi = int(math.Floor(sel.EliteFraction*float64(n))), last
	default:
		lo, hi = 0, int(math.Floor(sel.PuzzleFraction*float64(n)))
	}
	lo = core.Clamp(lo, 0, last)
	hi = core.Clamp(hi, lo, last)
	return lo + rng.Intn(hi-lo+1)
}
