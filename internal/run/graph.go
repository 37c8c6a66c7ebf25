package run

import (
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/gridshift/internal/config"
	"github.com/vovakirdan/gridshift/internal/levels"
)

// NodeKind is what happens when a map node is entered.
type NodeKind int

const (
	Puzzle NodeKind = iota
	Elite
	Chest
	Campfire
	Boss
)

func (k NodeKind) String() string {
	switch k {
	case Puzzle:
		return "puzzle"
	case Elite:
		return "elite"
	case Chest:
		return "chest"
	case Campfire:
		return "campfire"
	case Boss:
		return "boss"
	}
	return "unknown"
}

// Glyph is the map marker for the kind.
func (k NodeKind) Glyph() rune {
	switch k {
	case Puzzle:
		return '■'
	case Elite:
		return '◆'
	case Chest:
		return '$'
	case Campfire:
		return '∆'
	case Boss:
		return '☠'
	}
	return '?'
}

// IsPuzzle reports whether entering the node starts a puzzle attempt.
func (k NodeKind) IsPuzzle() bool {
	return k == Puzzle || k == Elite || k == Boss
}

// Tier maps a puzzle kind to the level band it draws from.
func (k NodeKind) Tier() levels.Tier {
	switch k {
	case Elite:
		return levels.TierElite
	case Boss:
		return levels.TierBoss
	}
	return levels.TierPuzzle
}

// Node is one stop on the run map. Only Completed changes after generation.
type Node struct {
	ID          int
	Row         int
	Col         int
	ColCount    int // nodes in this row
	Kind        NodeKind
	Connections mapset.Set[int] // forward edges into Row+1
	Completed   bool
}

// Targets returns the forward connections in ascending order.
func (n *Node) Targets() []int {
	return sortedIDs(n.Connections)
}

// Graph is a layered map: Rows ordinary rows followed by a single boss row.
// Edges only go from a row to the next one.
type Graph struct {
	Nodes []*Node
	Rows  [][]int // node ids per row, left to right
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id int) *Node {
	if id < 0 || id >= len(g.Nodes) {
		return nil
	}
	return g.Nodes[id]
}

// Boss returns the final node.
func (g *Graph) Boss() *Node {
	return g.Nodes[len(g.Nodes)-1]
}

// Incoming returns the ids of nodes with an edge into id.
func (g *Graph) Incoming(id int) []int {
	var out []int
	for _, n := range g.Nodes {
		if n.Connections.Has(id) {
			out = append(out, n.ID)
		}
	}
	return out
}

// Generate builds a run map. Node counts, kinds and edges all come from rng,
// so the same seed always yields the same map.
func Generate(cfg config.MapConfig, rng *rand.Rand) *Graph {
	g := &Graph{}

	for r := 0; r < cfg.Rows; r++ {
		count := cfg.MinNodes + rng.Intn(cfg.MaxNodes-cfg.MinNodes+1)
		row := make([]int, 0, count)
		for c := 0; c < count; c++ {
			row = append(row, g.add(r, c, count, nodeKind(r, cfg, rng)))
		}
		g.Rows = append(g.Rows, row)
	}
	g.Rows = append(g.Rows, []int{g.add(cfg.Rows, 0, 1, Boss)})

	for r := 0; r+1 < len(g.Rows); r++ {
		g.connect(g.Rows[r], g.Rows[r+1], cfg.MaxEdges, rng)
	}
	return g
}

func (g *Graph) add(row, col, count int, kind NodeKind) int {
	id := len(g.Nodes)
	g.Nodes = append(g.Nodes, &Node{
		ID:          id,
		Row:         row,
		Col:         col,
		ColCount:    count,
		Kind:        kind,
		Connections: mapset.New[int](),
	})
	return id
}

// connect wires one row pair in two passes: every node gets 1..maxEdges
// random forward edges, then every next-row node left without an incoming
// edge gets one from a random node of the current row.
func (g *Graph) connect(cur, next []int, maxEdges int, rng *rand.Rand) {
	for _, id := range cur {
		n := min(1+rng.Intn(maxEdges), len(next))
		for _, i := range rng.Perm(len(next))[:n] {
			g.Nodes[id].Connections.Put(next[i])
		}
	}

	for _, id := range next {
		if len(g.Incoming(id)) > 0 {
			continue
		}
		src := cur[rng.Intn(len(cur))]
		g.Nodes[src].Connections.Put(id)
	}
}

func nodeKind(row int, cfg config.MapConfig, rng *rand.Rand) NodeKind {
	if row == 0 {
		return Puzzle
	}
	if row == cfg.Rows-1 {
		if rng.Float64() < cfg.EliteChance {
			return Elite
		}
		return Puzzle
	}

	w := cfg.Weights
	roll := rng.Intn(w.Total())
	switch {
	case roll < w.Puzzle:
		return Puzzle
	case roll < w.Puzzle+w.Chest:
		return Chest
	case roll < w.Puzzle+w.Chest+w.Campfire:
		return Campfire
	}
	return Elite
}

func sortedIDs(s mapset.Set[int]) []int {
	out := make([]int, 0, s.Size())
	s.Each(func(id int) { out = append(out, id) })
	sort.Ints(out)
	return out
}
