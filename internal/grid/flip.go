package grid

// Flip is one cell that went from Open to Flipped during a FlipAt call.
// Distance is the number of steps from the anchor (0 for the anchor itself).
type Flip struct {
	Coord
	Distance int
}

// FlipResult describes everything a single FlipAt call changed.
type FlipResult struct {
	Anchor  Coord
	Flipped []Flip // in resolution order: anchor, then Up, Down, Left, Right runs
}

// Count is the number of cells that transitioned Open to Flipped.
func (r FlipResult) Count() int { return len(r.Flipped) }

// IsChain reports whether more than one cell flipped.
func (r FlipResult) IsChain() bool { return len(r.Flipped) > 1 }

// MaxDistance is the distance of the farthest flipped cell.
func (r FlipResult) MaxDistance() int {
	m := 0
	for _, f := range r.Flipped {
		m = max(m, f.Distance)
	}
	return m
}

// FlipAt flips the anchor cell and resolves chains from it.
//
// In each direction the board is walked outward from the anchor. The walk
// stops at the first non-floor cell or the board edge, which discards
// everything collected. Reaching a Flipped cell closes the run and every
// Open cell between anchor and that cell is flipped too. An anchor that is
// already Flipped stays Flipped but still resolves chains.
//
// A target that is not floor yields an empty result and leaves the board
// untouched.
func (g *Grid) FlipAt(anchor Coord) FlipResult {
	res := FlipResult{Anchor: anchor}
	if !g.IsFlippable(anchor) {
		return res
	}

	var targets []Flip
	for _, d := range Dirs {
		targets = append(targets, g.chainRun(anchor, d)...)
	}

	// The anchor always comes first in the result.
	if g.set(anchor, Flipped) {
		res.Flipped = append(res.Flipped, Flip{Coord: anchor})
	}
	for _, t := range targets {
		if g.set(t.Coord, Flipped) {
			res.Flipped = append(res.Flipped, t)
		}
	}
	return res
}

// chainRun returns the Open cells between from and the nearest Flipped cell
// in direction d, or nil when the walk is broken first.
func (g *Grid) chainRun(from Coord, d Dir) []Flip {
	var run []Flip
	p := from
	for dist := 1; ; dist++ {
		p = p.Add(d)
		switch g.KindAt(p) {
		case Open:
			run = append(run, Flip{Coord: p, Distance: dist})
		case Flipped:
			return run
		default:
			return nil
		}
	}
}

func (g *Grid) set(c Coord, k Kind) bool {
	i := c.Row*g.cols + c.Col
	if g.cells[i] == k {
		return false
	}
	g.cells[i] = k
	return true
}
