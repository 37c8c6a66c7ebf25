package grid

import (
	"strings"
	"testing"
)

// parse builds a board from glyph rows, e.g. "..#", "x.o".
func parse(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g := New(len([]rune(rows[0])), len(rows))
	for r, line := range rows {
		for c, ch := range []rune(line) {
			k, err := KindFromGlyph(ch)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			g.cells[r*g.cols+c] = k
		}
	}
	return g
}

func TestFlipAtNonEligibleIsNoop(t *testing.T) {
	tests := []struct {
		name  string
		coord Coord
	}{
		{"block", Coord{1, 0}},
		{"hole", Coord{2, 0}},
		{"push block", Coord{3, 0}},
		{"left of board", Coord{-1, 0}},
		{"below board", Coord{0, 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := parse(t, ".#oB", "x...")
			before := g.String()

			res := g.FlipAt(tc.coord)
			if res.Count() != 0 {
				t.Errorf("Count() = %d, expected 0", res.Count())
			}
			if g.String() != before {
				t.Errorf("board mutated:\n%s\nwas\n%s", g.String(), before)
			}
		})
	}
}

func TestFlipAtChainRules(t *testing.T) {
	tests := []struct {
		name     string
		board    []string
		anchor   Coord
		count    int
		chain    bool
		expected []string
	}{
		{
			name:     "open open flipped chains",
			board:    []string{"..x"},
			anchor:   Coord{0, 0},
			count:    2,
			chain:    true,
			expected: []string{"xxx"},
		},
		{
			name:     "open open block does not chain",
			board:    []string{"..#"},
			anchor:   Coord{0, 0},
			count:    1,
			chain:    false,
			expected: []string{"x.#"},
		},
		{
			name:     "edge discards run",
			board:    []string{"..."},
			anchor:   Coord{0, 0},
			count:    1,
			expected: []string{"x.."},
		},
		{
			name:     "hole breaks run before flipped",
			board:    []string{".o.x"},
			anchor:   Coord{0, 0},
			count:    1,
			expected: []string{"xo.x"},
		},
		{
			name:     "adjacent flipped adds nothing",
			board:    []string{".x.."},
			anchor:   Coord{0, 0},
			count:    1,
			expected: []string{"xx.."},
		},
		{
			name:     "two directions at once",
			board:    []string{"x...x"},
			anchor:   Coord{2, 0},
			count:    3,
			chain:    true,
			expected: []string{"xxxxx"},
		},
		{
			name:     "vertical chain",
			board:    []string{"x", ".", "."},
			anchor:   Coord{0, 2},
			count:    2,
			chain:    true,
			expected: []string{"x", "x", "x"},
		},
		{
			name:     "flipped anchor resolves chains without toggling",
			board:    []string{"x..x"},
			anchor:   Coord{0, 0},
			count:    2,
			chain:    true,
			expected: []string{"xxxx"},
		},
		{
			name:     "flipped anchor with nothing to chain",
			board:    []string{"x.."},
			anchor:   Coord{0, 0},
			count:    0,
			expected: []string{"x.."},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := parse(t, tc.board...)
			res := g.FlipAt(tc.anchor)

			if res.Count() != tc.count {
				t.Errorf("Count() = %d, expected %d", res.Count(), tc.count)
			}
			if res.IsChain() != tc.chain {
				t.Errorf("IsChain() = %v, expected %v", res.IsChain(), tc.chain)
			}
			if got, want := g.String(), strings.Join(tc.expected, "\n"); got != want {
				t.Errorf("board =\n%s\nexpected\n%s", got, want)
			}
		})
	}
}

func TestFlipAtDistances(t *testing.T) {
	g := parse(t, "x...")
	res := g.FlipAt(Coord{3, 0})

	if res.Count() != 3 {
		t.Fatalf("Count() = %d, expected 3", res.Count())
	}
	if res.Flipped[0].Coord != (Coord{3, 0}) || res.Flipped[0].Distance != 0 {
		t.Errorf("first flip = %+v, expected anchor at distance 0", res.Flipped[0])
	}
	for _, f := range res.Flipped[1:] {
		if want := 3 - f.Col; f.Distance != want {
			t.Errorf("cell %v distance = %d, expected %d", f.Coord, f.Distance, want)
		}
	}
	if res.MaxDistance() != 2 {
		t.Errorf("MaxDistance() = %d, expected 2", res.MaxDistance())
	}
}

func TestChainInvariant(t *testing.T) {
	// Every cell that changed is reported, and only Open cells change.
	g := parse(t,
		"x..#...",
		"..o..x.",
		".......",
		"x.....x",
	)
	before := g.Clone()
	res := g.FlipAt(Coord{3, 3})

	reported := make(map[Coord]bool)
	for _, f := range res.Flipped {
		reported[f.Coord] = true
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := Coord{c, r}
			changed := before.KindAt(p) != g.KindAt(p)
			if changed != reported[p] {
				t.Errorf("cell %v changed=%v reported=%v", p, changed, reported[p])
			}
			if changed && (before.KindAt(p) != Open || g.KindAt(p) != Flipped) {
				t.Errorf("cell %v went %v -> %v", p, before.KindAt(p), g.KindAt(p))
			}
		}
	}
	if res.Count() != 5 {
		t.Errorf("Count() = %d, expected 5", res.Count())
	}
}

func TestSmallBoardSequence(t *testing.T) {
	g := New(3, 3)

	if n := g.FlipAt(Coord{0, 0}).Count(); n != 1 {
		t.Fatalf("first flip = %d, expected 1", n)
	}
	if n := g.FlipAt(Coord{0, 1}).Count(); n != 1 {
		t.Fatalf("adjacent flip = %d, expected 1", n)
	}
	if n := g.FlipAt(Coord{0, 2}).Count(); n != 1 {
		t.Fatalf("third flip = %d, expected 1", n)
	}

	// (2,1) chains left to (0,1) through (1,1).
	if n := g.FlipAt(Coord{2, 1}).Count(); n != 2 {
		t.Fatalf("chain flip = %d, expected 2", n)
	}
}

func TestGapChain(t *testing.T) {
	g := New(3, 3)
	g.FlipAt(Coord{0, 0})

	// (2,0) reaches (0,0) through (1,0).
	res := g.FlipAt(Coord{2, 0})
	if res.Count() != 2 || !res.IsChain() {
		t.Errorf("FlipAt((2,0)) = %d chain=%v, expected 2 chain", res.Count(), res.IsChain())
	}
}

func TestRowMajorCompletion(t *testing.T) {
	g := New(8, 7)
	total := g.TotalFlippable()
	flipped := 0

	for r := 0; r < 7; r++ {
		for c := 0; c < 8; c++ {
			n := g.FlipAt(Coord{c, r}).Count()
			if n != 1 {
				t.Errorf("FlipAt(%d,%d) = %d, expected 1", c, r, n)
			}
			flipped += n
		}
	}

	if !g.IsComplete() {
		t.Error("board should be complete after flipping every cell")
	}
	if flipped != total || total != 56 {
		t.Errorf("flipped %d of %d, expected 56", flipped, total)
	}
}

func TestCompletionAndUnflip(t *testing.T) {
	g := parse(t, ".#", "..")

	for _, p := range []Coord{{0, 0}, {0, 1}, {1, 1}} {
		g.FlipAt(p)
	}
	if !g.IsComplete() || g.Remaining() != 0 {
		t.Fatalf("expected complete board, remaining %d", g.Remaining())
	}
	if g.TotalFlippable() != 3 {
		t.Errorf("TotalFlippable() = %d, expected 3", g.TotalFlippable())
	}

	if !g.Unflip(Coord{0, 1}) {
		t.Fatal("Unflip on a flipped cell should succeed")
	}
	if g.IsComplete() || g.Remaining() != 1 {
		t.Errorf("after unflip: complete=%v remaining=%d", g.IsComplete(), g.Remaining())
	}
	// Unflip never cascades to neighbours.
	if g.KindAt(Coord{0, 0}) != Flipped || g.KindAt(Coord{1, 1}) != Flipped {
		t.Error("unflip cascaded")
	}

	if n := g.FlipAt(Coord{0, 1}).Count(); n != 1 {
		t.Errorf("reflip = %d, expected 1", n)
	}
	if !g.IsComplete() {
		t.Error("completion should be restored after reflip")
	}
}

func TestUnflipOnlyAffectsFlipped(t *testing.T) {
	g := parse(t, ".#oBx")

	for _, p := range []Coord{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {9, 9}} {
		if g.Unflip(p) {
			t.Errorf("Unflip(%v) changed a non-flipped cell", p)
		}
	}
	if g.String() != ".#oBx" {
		t.Errorf("board changed: %s", g.String())
	}
}

func TestWalkability(t *testing.T) {
	g := parse(t, ".x#oB")

	expected := []bool{true, true, false, false, false}
	for c, want := range expected {
		if got := g.IsWalkable(Coord{c, 0}); got != want {
			t.Errorf("IsWalkable(%d,0) = %v, expected %v", c, got, want)
		}
		if g.IsWalkable(Coord{c, 0}) != g.IsFlippable(Coord{c, 0}) {
			t.Errorf("walkable and flippable disagree at %d", c)
		}
	}
	if g.IsWalkable(Coord{-1, 0}) || g.IsWalkable(Coord{5, 0}) {
		t.Error("off-board cells should not be walkable")
	}
}

func TestFromCodes(t *testing.T) {
	g, err := FromCodes(3, 2, [][]int{{0, 1, 2}, {3}})
	if err != nil {
		t.Fatalf("FromCodes: %v", err)
	}
	if got := g.String(); got != ".x#\no.." {
		t.Errorf("board =\n%s", got)
	}
	if !g.At(Coord{1, 0}).Flipped() {
		t.Error("code 1 should load as flipped")
	}

	if _, err := FromCodes(2, 1, [][]int{{0, 7}}); err == nil {
		t.Error("expected error for unknown code")
	}
}
