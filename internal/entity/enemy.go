package entity

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/gridshift/internal/core"
	"github.com/vovakirdan/gridshift/internal/grid"
)

// Kind selects an enemy's movement policy.
type Kind int

const (
	Wanderer Kind = iota // random walk
	Chaser               // steps toward the player
	Pacer                // back and forth along one axis
)

func (k Kind) String() string {
	switch k {
	case Wanderer:
		return "wanderer"
	case Chaser:
		return "chaser"
	case Pacer:
		return "pacer"
	}
	return "unknown"
}

// ParseKind converts a level file name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "wanderer":
		return Wanderer, nil
	case "chaser":
		return Chaser, nil
	case "pacer":
		return Pacer, nil
	}
	return 0, fmt.Errorf("entity: unknown enemy type %q", s)
}

// Axis is the line a Pacer patrols.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseAxis converts a level file axis. An empty string means Horizontal.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("entity: unknown pacer axis %q", s)
}

// Enemy is a hostile actor. Landing on a Flipped cell turns it back to Open.
type Enemy struct {
	Pos  grid.Coord
	Kind Kind
	Axis Axis // Pacer only
	Sign int  // Pacer heading along Axis, +1 or -1
}

// NewEnemy creates an enemy. Pacers start heading in the positive direction.
func NewEnemy(pos grid.Coord, kind Kind, axis Axis) *Enemy {
	return &Enemy{Pos: pos, Kind: kind, Axis: axis, Sign: 1}
}

// Step runs one enemy tick: the policy picks a destination, the enemy moves
// there and unflips it. It reports whether the enemy moved.
func (e *Enemy) Step(t Terrain, player grid.Coord, rng *rand.Rand) bool {
	next, ok := e.nextMove(t, player, rng)
	if !ok {
		return false
	}
	e.Pos = next
	t.Unflip(next)
	return true
}

func (e *Enemy) nextMove(t Terrain, player grid.Coord, rng *rand.Rand) (grid.Coord, bool) {
	switch e.Kind {
	case Wanderer:
		return e.wander(t, rng)
	case Chaser:
		return e.chase(t, player, rng)
	case Pacer:
		return e.pace(t)
	}
	return e.Pos, false
}

func (e *Enemy) wander(t Terrain, rng *rand.Rand) (grid.Coord, bool) {
	for _, i := range rng.Perm(len(grid.Dirs)) {
		next := e.Pos.Add(grid.Dirs[i])
		if t.IsWalkable(next) {
			return next, true
		}
	}
	return e.Pos, false
}

func (e *Enemy) chase(t Terrain, player grid.Coord, rng *rand.Rand) (grid.Coord, bool) {
	dx := core.Sign(player.Col - e.Pos.Col)
	dy := core.Sign(player.Row - e.Pos.Row)

	var tries []grid.Coord
	if dx != 0 {
		tries = append(tries, grid.Coord{Col: e.Pos.Col + dx, Row: e.Pos.Row})
	}
	if dy != 0 {
		tries = append(tries, grid.Coord{Col: e.Pos.Col, Row: e.Pos.Row + dy})
	}
	// Aligned on one axis: allow a sidestep around an obstacle.
	switch {
	case dx == 0 && dy != 0:
		tries = append(tries, grid.Coord{Col: e.Pos.Col + randSign(rng), Row: e.Pos.Row})
	case dy == 0 && dx != 0:
		tries = append(tries, grid.Coord{Col: e.Pos.Col, Row: e.Pos.Row + randSign(rng)})
	}

	for _, next := range tries {
		if t.IsWalkable(next) {
			return next, true
		}
	}
	return e.Pos, false
}

func (e *Enemy) pace(t Terrain) (grid.Coord, bool) {
	next := e.paceTarget()
	if t.IsWalkable(next) {
		return next, true
	}
	e.Sign = -e.Sign
	next = e.paceTarget()
	if t.IsWalkable(next) {
		return next, true
	}
	return e.Pos, false
}

func (e *Enemy) paceTarget() grid.Coord {
	if e.Axis == Vertical {
		return grid.Coord{Col: e.Pos.Col, Row: e.Pos.Row + e.Sign}
	}
	return grid.Coord{Col: e.Pos.Col + e.Sign, Row: e.Pos.Row}
}

func randSign(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
