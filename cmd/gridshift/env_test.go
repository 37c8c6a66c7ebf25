package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestBuildEnvLevelDirs(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  int
	}{
		{"empty dir", nil, 0},
		{"only broken files", map[string]string{"bad.yaml": "grid: [\"?\"]\n"}, 0},
		{"one level", map[string]string{"one.yaml": "start: {col: 0, row: 0}\ngrid: [\"..\"]\n"}, 1},
	}

	saved := flagLevels
	t.Cleanup(func() { flagLevels = saved })

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, body := range tc.files {
				if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			flagLevels = dir

			env, err := buildEnv(log.New(io.Discard))
			if err != nil {
				t.Fatalf("buildEnv: %v", err)
			}
			if len(env.Levels) != tc.want {
				t.Errorf("got %d levels, expected %d", len(env.Levels), tc.want)
			}
		})
	}

	flagLevels = filepath.Join(t.TempDir(), "missing")
	if _, err := buildEnv(log.New(io.Discard)); err == nil {
		t.Error("expected error for a missing level dir")
	}
}
