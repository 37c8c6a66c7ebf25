package session

import (
	"github.com/vovakirdan/gridshift/internal/config"
	"github.com/vovakirdan/gridshift/internal/core"
)

// Settings is the immutable per-attempt configuration, already converted
// from milliseconds to simulation ticks.
type Settings struct {
	PlayerMoveTicks    int
	EnemyIntervalTicks int
	CountdownTicks     int // ticks per countdown second
	Scoring            config.ScoringConfig

	depth      int
	difficulty *config.DifficultyManager
}

// NewSettings derives settings for an attempt at the given map depth.
// Difficulty scaling shortens the enemy interval and level time limits.
func NewSettings(cfg config.Config, rc core.RuntimeConfig, depth int) Settings {
	dm := config.NewDifficultyManager(cfg.Difficulty)
	return Settings{
		PlayerMoveTicks:    rc.TicksFor(cfg.Timing.PlayerMoveMS),
		EnemyIntervalTicks: max(1, rc.TicksFor(dm.EnemyInterval(cfg.Timing.EnemyIntervalMS, depth))),
		CountdownTicks:     max(1, rc.TicksFor(cfg.Timing.CountdownMS)),
		Scoring:            cfg.Scoring,
		depth:              depth,
		difficulty:         dm,
	}
}

// TimeLimit returns the effective limit in seconds for a level authored
// with base seconds. Zero stays unlimited.
func (s Settings) TimeLimit(base int) int {
	if s.difficulty == nil {
		return base
	}
	return s.difficulty.TimeLimit(base, s.depth)
}
