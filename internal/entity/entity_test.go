package entity

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/gridshift/internal/grid"
)

// probe wraps a board and records every walkability query.
type probe struct {
	*grid.Grid
	asked []grid.Coord
}

func (p *probe) IsWalkable(c grid.Coord) bool {
	p.asked = append(p.asked, c)
	return p.Grid.IsWalkable(c)
}

func board(t *testing.T, rows ...[]int) *grid.Grid {
	t.Helper()
	g, err := grid.FromCodes(len(rows[0]), len(rows), rows)
	if err != nil {
		t.Fatalf("FromCodes: %v", err)
	}
	return g
}

func TestPlayerMoveCooldown(t *testing.T) {
	g := grid.New(4, 1)
	p := NewPlayer(grid.Coord{}, 5)

	if !p.TryMove(grid.DirRight, g, 0) {
		t.Fatal("first move should succeed")
	}
	if p.Pos != (grid.Coord{Col: 1}) {
		t.Fatalf("Pos = %v, expected (1,0)", p.Pos)
	}
	if !p.Moving(4) {
		t.Error("player should still be moving at tick 4")
	}
	if p.TryMove(grid.DirRight, g, 4) {
		t.Error("move during cooldown should be rejected")
	}
	if p.Pos != (grid.Coord{Col: 1}) {
		t.Error("rejected move changed position")
	}
	if !p.TryMove(grid.DirRight, g, 5) {
		t.Error("move after cooldown should succeed")
	}
}

func TestPlayerBlockedMove(t *testing.T) {
	g := board(t, []int{0, 2}, []int{3, 0})
	p := NewPlayer(grid.Coord{}, 5)

	tests := []struct {
		name string
		dir  grid.Dir
	}{
		{"into block", grid.DirRight},
		{"into hole", grid.DirDown},
		{"off board up", grid.DirUp},
		{"off board left", grid.DirLeft},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if p.TryMove(tc.dir, g, 0) {
				t.Error("move should be rejected")
			}
			if p.Moving(0) {
				t.Error("rejected move should not start a cooldown")
			}
		})
	}
}

func TestEnemyLandingUnflips(t *testing.T) {
	tests := []struct {
		name     string
		dest     int
		expected grid.Kind
	}{
		{"flipped becomes open", 1, grid.Open},
		{"open stays open", 0, grid.Open},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := board(t, []int{0, tc.dest})
			e := NewEnemy(grid.Coord{}, Pacer, Horizontal)

			if !e.Step(g, grid.Coord{Col: 9}, rand.New(rand.NewSource(1))) {
				t.Fatal("pacer should move")
			}
			if got := g.KindAt(grid.Coord{Col: 1}); got != tc.expected {
				t.Errorf("landing cell = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPacerTriesAtMostTwoCells(t *testing.T) {
	// Boxed in: both sides blocked.
	g := board(t, []int{2, 0, 2})
	pr := &probe{Grid: g}
	e := NewEnemy(grid.Coord{Col: 1}, Pacer, Horizontal)

	if e.Step(pr, grid.Coord{}, rand.New(rand.NewSource(1))) {
		t.Error("boxed pacer should not move")
	}
	if len(pr.asked) != 2 {
		t.Errorf("pacer probed %d cells, expected 2", len(pr.asked))
	}
	if e.Sign != -1 {
		t.Errorf("Sign = %d, expected reversed to -1", e.Sign)
	}
}

func TestPacerReversesAtWall(t *testing.T) {
	g := grid.New(3, 1)
	e := NewEnemy(grid.Coord{Col: 1}, Pacer, Horizontal)
	rng := rand.New(rand.NewSource(1))

	path := []int{2, 1, 0, 1, 2}
	for i, want := range path {
		e.Step(g, grid.Coord{}, rng)
		if e.Pos.Col != want {
			t.Fatalf("step %d: col = %d, expected %d", i, e.Pos.Col, want)
		}
	}
}

func TestVerticalPacer(t *testing.T) {
	g := grid.New(1, 2)
	e := NewEnemy(grid.Coord{}, Pacer, Vertical)

	e.Step(g, grid.Coord{}, rand.New(rand.NewSource(1)))
	if e.Pos != (grid.Coord{Row: 1}) {
		t.Errorf("Pos = %v, expected (0,1)", e.Pos)
	}
}

func TestChaserPrefersColumnGap(t *testing.T) {
	g := grid.New(5, 5)
	e := NewEnemy(grid.Coord{Col: 0, Row: 0}, Chaser, Horizontal)

	e.Step(g, grid.Coord{Col: 3, Row: 3}, rand.New(rand.NewSource(1)))
	if e.Pos != (grid.Coord{Col: 1, Row: 0}) {
		t.Errorf("Pos = %v, expected horizontal step to (1,0)", e.Pos)
	}
}

func TestChaserFallsBackToRowGap(t *testing.T) {
	g := board(t,
		[]int{0, 2},
		[]int{0, 0},
	)
	e := NewEnemy(grid.Coord{}, Chaser, Horizontal)

	e.Step(g, grid.Coord{Col: 1, Row: 1}, rand.New(rand.NewSource(1)))
	if e.Pos != (grid.Coord{Row: 1}) {
		t.Errorf("Pos = %v, expected (0,1)", e.Pos)
	}
}

func TestChaserSidestepsWhenAligned(t *testing.T) {
	// Player straight below, but a block in between.
	g := board(t,
		[]int{2, 0, 2},
		[]int{0, 2, 0},
		[]int{0, 0, 0},
	)
	for seed := int64(0); seed < 8; seed++ {
		e := NewEnemy(grid.Coord{Col: 1}, Chaser, Horizontal)
		moved := e.Step(g, grid.Coord{Col: 1, Row: 2}, rand.New(rand.NewSource(seed)))
		if moved {
			t.Errorf("seed %d: chaser moved to %v through walls", seed, e.Pos)
		}
	}

	// A hole on the direct route with open cells either side.
	e := NewEnemy(grid.Coord{Col: 1}, Chaser, Horizontal)
	blocked := board(t,
		[]int{0, 0, 0},
		[]int{0, 3, 0},
		[]int{0, 0, 0},
	)
	e.Step(blocked, grid.Coord{Col: 1, Row: 2}, rand.New(rand.NewSource(3)))
	if e.Pos.Row != 0 || (e.Pos.Col != 0 && e.Pos.Col != 2) {
		t.Errorf("Pos = %v, expected a sidestep along row 0", e.Pos)
	}
}

func TestChaserOnPlayerStaysPut(t *testing.T) {
	g := grid.New(3, 3)
	e := NewEnemy(grid.Coord{Col: 1, Row: 1}, Chaser, Horizontal)

	if e.Step(g, grid.Coord{Col: 1, Row: 1}, rand.New(rand.NewSource(1))) {
		t.Error("chaser on the player should have no candidate")
	}
}

func TestWandererStuck(t *testing.T) {
	g := board(t,
		[]int{2, 2, 2},
		[]int{3, 0, 2},
		[]int{2, 3, 2},
	)
	e := NewEnemy(grid.Coord{Col: 1, Row: 1}, Wanderer, Horizontal)

	if e.Step(g, grid.Coord{}, rand.New(rand.NewSource(42))) {
		t.Error("enclosed wanderer should not move")
	}
}

func TestWandererMovesToNeighbour(t *testing.T) {
	g := grid.New(3, 3)
	for seed := int64(0); seed < 10; seed++ {
		e := NewEnemy(grid.Coord{Col: 1, Row: 1}, Wanderer, Horizontal)
		if !e.Step(g, grid.Coord{}, rand.New(rand.NewSource(seed))) {
			t.Fatalf("seed %d: wanderer did not move", seed)
		}
		dc, dr := e.Pos.Col-1, e.Pos.Row-1
		if dc*dc+dr*dr != 1 {
			t.Errorf("seed %d: moved to %v, not a neighbour", seed, e.Pos)
		}
	}
}

func TestCaught(t *testing.T) {
	enemies := []*Enemy{
		NewEnemy(grid.Coord{Col: 1}, Wanderer, Horizontal),
		NewEnemy(grid.Coord{Col: 3}, Pacer, Horizontal),
	}
	if !Caught(enemies, grid.Coord{Col: 3}) {
		t.Error("expected caught")
	}
	if Caught(enemies, grid.Coord{Col: 2}) {
		t.Error("unexpected catch")
	}
	if Caught(nil, grid.Coord{}) {
		t.Error("no enemies cannot catch")
	}
}

func TestParse(t *testing.T) {
	for _, name := range []string{"wanderer", "chaser", "pacer"} {
		k, err := ParseKind(name)
		if err != nil || k.String() != name {
			t.Errorf("ParseKind(%q) = %v, %v", name, k, err)
		}
	}
	if _, err := ParseKind("ghost"); err == nil {
		t.Error("expected error for unknown kind")
	}
	if a, err := ParseAxis(""); err != nil || a != Horizontal {
		t.Errorf("ParseAxis(\"\") = %v, %v", a, err)
	}
	if _, err := ParseAxis("diagonal"); err == nil {
		t.Error("expected error for unknown axis")
	}
}
