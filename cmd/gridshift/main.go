// gridshift is a terminal tile-flip puzzle game with a roguelike run map.
//
// Usage:
//
//	gridshift list              - List available modes
//	gridshift play <mode>       - Play a mode
//	gridshift menu              - Start menu to pick modes interactively
//	gridshift serve             - Start SSH server for remote play
//	gridshift scores <mode>     - Show high scores and recent runs
//	gridshift levels list       - List the level pack
//	gridshift levels validate   - Check every level file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.gridshift/scores.db)
//	--config <path>       - Use a custom gridshift.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--levels <dir>        - Load levels from a directory instead of the built-in pack
//	--log-file <path>     - Write game logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/gridshift/internal/games/gridshift"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridshift",
	Short: "GRIDSHIFT - flip every tile, don't get caught",
	Long: `GRIDSHIFT is a tile-flip puzzle game for the terminal. Walk the board,
flip every open tile and dodge the enemies that undo your work. In a run you
climb a branching map of puzzles, chests and campfires up to a boss.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and run history
  levels   - List or validate level packs

Examples:
  gridshift play gridshift
  gridshift play gridshift_campaign --difficulty hard
  gridshift menu
  gridshift serve --ssh :2222
  gridshift levels validate --levels ./my-levels`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridshift/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gridshift.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of level files (default: built-in pack)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}
