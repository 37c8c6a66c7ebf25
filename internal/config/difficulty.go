package config

import "math"

// Lower bounds that keep a level playable at maximum difficulty.
const (
	minEnemyIntervalMS = 400
	minTimeLimitSec    = 10
)

// DifficultyManager scales per-level parameters with how deep the run is
// on the map.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for a map depth.
// With progression off, difficulty stays at 0 so levels play as authored.
func (d *DifficultyManager) Level(depth int) float64 {
	if !d.IsEnabled() {
		return 0
	}
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	progress := clampF(float64(depth)/maxAt, 0, 1)
	initial := clampF(d.cfg.InitialLevel, 0, 1)
	return initial + progress*(1-initial)
}

// EnemyInterval returns the enemy tick period in milliseconds at depth.
func (d *DifficultyManager) EnemyInterval(baseMS, depth int) int {
	level := d.Level(depth)
	ms := int(math.Round(float64(baseMS) * (1 - level*d.cfg.Scaling.EnemySpeedup)))
	return max(ms, min(baseMS, minEnemyIntervalMS))
}

// TimeLimit returns a level's time limit in seconds at depth.
// Unlimited levels (0) stay unlimited.
func (d *DifficultyManager) TimeLimit(baseSec, depth int) int {
	if baseSec <= 0 {
		return 0
	}
	level := d.Level(depth)
	sec := int(math.Round(float64(baseSec) * (1 - level*d.cfg.Scaling.TimeLimitCut)))
	return max(sec, min(baseSec, minTimeLimitSec))
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
