// Package config provides YAML-based game configuration loading and
// difficulty management for gridshift.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunables of the game. It is loaded once and handed to
// sessions and runs as an immutable value.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Map        MapConfig        `yaml:"map"`
	Levels     LevelSelection   `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig fixes the board size for the whole game.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// TimingConfig holds durations in milliseconds. The platform converts them
// to ticks.
type TimingConfig struct {
	PlayerMoveMS    int `yaml:"player_move_ms"`    // player move cooldown
	EnemyIntervalMS int `yaml:"enemy_interval_ms"` // period of the enemy tick
	EnemyMoveMS     int `yaml:"enemy_move_ms"`     // how long a landing cell stays highlighted
	CountdownMS     int `yaml:"countdown_ms"`      // length of one countdown second
	ChainDelayMS    int `yaml:"chain_delay_ms"`    // per-step stagger of chain highlights
}

// ScoringConfig holds point values.
type ScoringConfig struct {
	TileFlip   int `yaml:"tile_flip"`   // per flipped cell
	ChainBonus int `yaml:"chain_bonus"` // per cell of a chain
	LevelClear int `yaml:"level_clear"`
	TimeBonus  int `yaml:"time_bonus"` // per second left
	Chest      int `yaml:"chest"`
	Campfire   int `yaml:"campfire"`
}

// MapConfig shapes the generated run map.
type MapConfig struct {
	Rows        int         `yaml:"rows"` // rows before the boss
	MinNodes    int         `yaml:"min_nodes"`
	MaxNodes    int         `yaml:"max_nodes"`
	MaxEdges    int         `yaml:"max_edges"` // forward edges drawn per node
	Weights     NodeWeights `yaml:"weights"`
	EliteChance float64     `yaml:"elite_chance"` // elite share of the row before the boss
}

// NodeWeights are relative weights of interior node types.
type NodeWeights struct {
	Puzzle   int `yaml:"puzzle"`
	Chest    int `yaml:"chest"`
	Campfire int `yaml:"campfire"`
	Elite    int `yaml:"elite"`
}

// Total returns the sum of all weights.
func (w NodeWeights) Total() int {
	return w.Puzzle + w.Chest + w.Campfire + w.Elite
}

// LevelSelection says which part of the level list each node type draws from.
type LevelSelection struct {
	PuzzleFraction float64 `yaml:"puzzle_fraction"` // puzzles pick from [0, floor(f*n)]
	EliteFraction  float64 `yaml:"elite_fraction"`  // elites pick from [floor(f*n), n-1]
}

// DifficultyConfig defines how the run gets harder with map depth.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "depth" or "none"
	MaxAt int    `yaml:"max_at"` // map depth at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	EnemySpeedup float64 `yaml:"enemy_speedup"`  // fraction cut from the enemy interval
	TimeLimitCut float64 `yaml:"time_limit_cut"` // fraction cut from level time limits
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate reports the first setting that would make the game unplayable.
func (c Config) Validate() error {
	var errs []error
	if c.Grid.Cols <= 0 || c.Grid.Rows <= 0 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Grid.Cols, c.Grid.Rows))
	}
	if c.Map.Rows < 1 {
		errs = append(errs, fmt.Errorf("map.rows must be positive, got %d", c.Map.Rows))
	}
	if c.Map.MinNodes < 1 || c.Map.MaxNodes < c.Map.MinNodes {
		errs = append(errs, fmt.Errorf("map node range [%d, %d] is invalid", c.Map.MinNodes, c.Map.MaxNodes))
	}
	if c.Map.MaxEdges < 1 {
		errs = append(errs, fmt.Errorf("map.max_edges must be positive, got %d", c.Map.MaxEdges))
	}
	if c.Map.Weights.Total() <= 0 {
		errs = append(errs, errors.New("map.weights must not all be zero"))
	}
	if c.Timing.EnemyIntervalMS <= 0 || c.Timing.CountdownMS <= 0 {
		errs = append(errs, errors.New("timing intervals must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
