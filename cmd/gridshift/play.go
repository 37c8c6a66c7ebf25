package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridshift/internal/platform/tui"
	"github.com/vovakirdan/gridshift/internal/registry"
	"github.com/vovakirdan/gridshift/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Arrows/WASD/hjkl - Move (choose a node on the map)
  Space            - Flip the tile you stand on
  Enter            - Confirm
  Esc/B            - Leave the puzzle (back to the map)
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower enemies, difficulty starts at 0%
  normal - Difficulty starts at 30% and grows with map depth
  hard   - Faster enemies, difficulty starts at 70%
  fixed  - No progression, plays exactly as configured

Examples:
  gridshift play gridshift
  gridshift play gridshift --difficulty hard
  gridshift play gridshift_campaign --levels ./my-levels
  gridshift play gridshift --seed 42 --config ./gridshift.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gridshift list' to see available modes.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	env, err := buildEnv(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	} else {
		store.SetLogger(logger)
	}
	env = tui.WithStore(env, store)

	game, err := registry.Create(gameID, env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Run the game
	_, runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
