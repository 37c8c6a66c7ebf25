// Package grid holds the puzzle board: a fixed rectangle of cells and the
// chain-flip rule that turns Open cells into Flipped ones.
package grid

import (
	"fmt"
	"strings"
)

// Cell is a read-only view of one board position.
type Cell struct {
	Coord
	Kind Kind
}

// Flipped reports whether the cell has been flipped.
func (c Cell) Flipped() bool { return c.Kind == Flipped }

// Grid is a Cols×Rows board. Block and Hole cells never change; floor cells
// move between Open and Flipped through FlipAt and Unflip only.
type Grid struct {
	cols, rows int
	cells      []Kind
}

// New creates a board with every cell Open.
func New(cols, rows int) *Grid {
	return &Grid{cols: cols, rows: rows, cells: make([]Kind, cols*rows)}
}

// FromCodes builds a board from row-major level codes. Rows shorter than
// cols are padded with Open cells and extra entries are ignored.
func FromCodes(cols, rows int, codes [][]int) (*Grid, error) {
	g := New(cols, rows)
	for r := 0; r < rows && r < len(codes); r++ {
		for c := 0; c < cols && c < len(codes[r]); c++ {
			k, err := KindFromCode(codes[r][c])
			if err != nil {
				return nil, fmt.Errorf("grid: cell (%d,%d): %w", c, r, err)
			}
			g.cells[r*cols+c] = k
		}
	}
	return g, nil
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// InBounds reports whether c lies on the board.
func (g *Grid) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < g.cols && c.Row >= 0 && c.Row < g.rows
}

// KindAt returns the kind at c. Off-board positions read as Block.
func (g *Grid) KindAt(c Coord) Kind {
	if !g.InBounds(c) {
		return Block
	}
	return g.cells[c.Row*g.cols+c.Col]
}

// At returns the cell at c.
func (g *Grid) At(c Coord) Cell {
	return Cell{Coord: c, Kind: g.KindAt(c)}
}

// IsFlippable reports whether c is on the board and is floor.
func (g *Grid) IsFlippable(c Coord) bool {
	return g.InBounds(c) && g.KindAt(c).Floor()
}

// IsWalkable reports whether an actor may stand on c.
// Flipped cells stay walkable, so this matches IsFlippable.
func (g *Grid) IsWalkable(c Coord) bool {
	return g.IsFlippable(c)
}

// Unflip turns a single Flipped cell back to Open. It never cascades and
// reports whether the cell changed.
func (g *Grid) Unflip(c Coord) bool {
	if g.KindAt(c) != Flipped {
		return false
	}
	g.cells[c.Row*g.cols+c.Col] = Open
	return true
}

// Remaining counts Open cells.
func (g *Grid) Remaining() int {
	n := 0
	for _, k := range g.cells {
		if k == Open {
			n++
		}
	}
	return n
}

// TotalFlippable counts Open and Flipped cells.
func (g *Grid) TotalFlippable() int {
	n := 0
	for _, k := range g.cells {
		if k.Floor() {
			n++
		}
	}
	return n
}

// IsComplete reports whether no Open cell is left.
func (g *Grid) IsComplete() bool {
	return g.Remaining() == 0
}

// Clone returns an independent copy of the board.
func (g *Grid) Clone() *Grid {
	cp := &Grid{cols: g.cols, rows: g.rows, cells: make([]Kind, len(g.cells))}
	copy(cp.cells, g.cells)
	return cp
}

// Codes returns the board as row-major level codes.
func (g *Grid) Codes() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		for c := range out[r] {
			out[r][c] = int(g.cells[r*g.cols+c])
		}
	}
	return out
}

// String renders the board with one glyph per cell, rows separated by newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.cells[r*g.cols+c].Glyph())
		}
	}
	return sb.String()
}
