package session

import "github.com/vovakirdan/gridshift/internal/grid"

// Snapshot captures the complete observable state of a session.
// Two sessions built from the same level, seed and inputs produce equal
// snapshots.
type Snapshot struct {
	Tick        int64
	State       State
	Reason      string
	Score       int
	SecondsLeft int
	Player      grid.Coord
	Enemies     []EnemySnapshot
	Board       string
}

// EnemySnapshot is one enemy's position and heading.
type EnemySnapshot struct {
	Pos  grid.Coord
	Kind string
	Sign int
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        s.now,
		State:       s.state,
		Reason:      string(s.reason),
		Score:       s.score,
		SecondsLeft: s.secondsLeft,
		Player:      s.player.Pos,
		Board:       s.grid.String(),
	}
	for _, e := range s.enemies {
		snap.Enemies = append(snap.Enemies, EnemySnapshot{Pos: e.Pos, Kind: e.Kind.String(), Sign: e.Sign})
	}
	return snap
}
