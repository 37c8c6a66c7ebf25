package gridshift

import "github.com/vovakirdan/gridshift/internal/session"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string
	Screen     string
	Score      int
	Selectable []int
	Cursor     int
	Completed  []int
	Level      int // index of the level being played, -1 outside a puzzle
	Puzzle     *session.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Screen:     g.screen.String(),
		Score:      g.Score(),
		Selectable: append([]int(nil), g.selectable...),
		Cursor:     g.cursor,
		Level:      -1,
	}
	if g.run != nil {
		for _, n := range g.run.Graph.Nodes {
			if g.run.IsCompleted(n.ID) {
				snap.Completed = append(snap.Completed, n.ID)
			}
		}
	}
	if g.sess != nil {
		ps := g.sess.Snapshot()
		snap.Puzzle = &ps
		snap.Level = g.attempt.LevelIndex
	}
	return snap
}
