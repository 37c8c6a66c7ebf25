package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/gridshift/internal/config"
	"github.com/vovakirdan/gridshift/internal/core"
	"github.com/vovakirdan/gridshift/internal/levels"
	"github.com/vovakirdan/gridshift/internal/registry"
)

// newLogger returns the game logger. The terminal belongs to the game while
// it runs, so logs are discarded unless --log-file is given. The returned
// closer is never nil.
func newLogger() (*log.Logger, func() error, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridshift",
	})
	return logger, f.Close, nil
}

// loadConfig loads the configuration and applies --difficulty.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return config.Config{}, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// levelLoader returns the loader for --levels, or the built-in pack.
func levelLoader(cfg config.Config, logger *log.Logger) *levels.Loader {
	var l *levels.Loader
	if flagLevels != "" {
		l = levels.Dir(flagLevels, cfg.Grid.Cols, cfg.Grid.Rows)
	} else {
		l = levels.Builtin(cfg.Grid.Cols, cfg.Grid.Rows)
	}
	l.Logger = logger
	return l
}

// buildEnv assembles everything a mode needs. High scores are wired by the
// caller once the score database is open. An empty level pack is not an
// error here: the game stays on its title screen and says so.
func buildEnv(logger *log.Logger) (registry.Env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return registry.Env{}, err
	}

	lvls, err := levelLoader(cfg, logger).LoadAll()
	switch {
	case errors.Is(err, levels.ErrNoLevels):
		logger.Warn("no playable levels", "dir", flagLevels)
	case err != nil:
		return registry.Env{}, err
	}

	return registry.Env{
		Config: cfg,
		Levels: lvls,
		Logger: logger,
	}, nil
}

// runtimeConfig returns the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
