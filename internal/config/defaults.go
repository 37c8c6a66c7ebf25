package config

import (
	_ "embed"
)

//go:embed defaults/gridshift.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultConfig returns the hardcoded configuration. It matches the embedded
// YAML and is used when that cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{Cols: 8, Rows: 7},
		Timing: TimingConfig{
			PlayerMoveMS:    120,
			EnemyIntervalMS: 1500,
			EnemyMoveMS:     200,
			CountdownMS:     1000,
			ChainDelayMS:    50,
		},
		Scoring: ScoringConfig{
			TileFlip:   10,
			ChainBonus: 25,
			LevelClear: 500,
			TimeBonus:  5,
			Chest:      300,
			Campfire:   100,
		},
		Map: MapConfig{
			Rows:     5,
			MinNodes: 2,
			MaxNodes: 4,
			MaxEdges: 2,
			Weights: NodeWeights{
				Puzzle:   50,
				Chest:    20,
				Campfire: 15,
				Elite:    15,
			},
			EliteChance: 0.5,
		},
		Levels: LevelSelection{
			PuzzleFraction: 0.7,
			EliteFraction:  0.6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "depth",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				EnemySpeedup: 0.4,
				TimeLimitCut: 0.25,
			},
		},
	}
}
