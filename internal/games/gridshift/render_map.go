package gridshift

import (
	"fmt"

	"github.com/vovakirdan/gridshift/internal/core"
	"github.com/vovakirdan/gridshift/internal/run"
)

const (
	mapTop      = 3
	mapMaxWidth = 60
)

// renderMap draws the run map with row 0 at the bottom and the boss on top.
func (g *Game) renderMap(dst *core.Screen) {
	r := g.run
	if r == nil {
		return
	}

	dst.DrawTextCentered(0, "GRIDSHIFT · RUN MAP", core.ColorBrightCyan)
	info := fmt.Sprintf("Score: %d   Depth: %d   Best: %d", r.Score(), r.Depth(), g.highScore)
	dst.DrawTextCentered(1, info, core.ColorDefault)

	rows := len(r.Graph.Rows)
	avail := dst.Height() - mapTop - 4
	spacing := 3
	if rows > 1 {
		spacing = core.Clamp(avail/(rows-1), 1, 3)
	}
	bottom := mapTop + (rows-1)*spacing
	width := min(dst.Width()-4, mapMaxWidth)
	left := (dst.Width() - width) / 2

	pos := func(n *run.Node) (int, int) {
		return left + (n.Col+1)*width/(n.ColCount+1), bottom - n.Row*spacing
	}

	selectable := make(map[int]bool, len(g.selectable))
	for _, id := range g.selectable {
		selectable[id] = true
	}
	current := r.Current()

	for _, n := range r.Graph.Nodes {
		x1, y1 := pos(n)
		for _, t := range n.Targets() {
			x2, y2 := pos(r.Graph.Nodes[t])
			color := core.ColorDim
			if current != nil && n.ID == current.ID && selectable[t] {
				color = core.ColorYellow
			}
			drawEdge(dst, x1, y1, x2, y2, color)
		}
	}

	cursorID := -1
	if len(g.selectable) > 0 {
		cursorID = g.selectable[g.cursor]
	}
	for _, n := range r.Graph.Nodes {
		x, y := pos(n)
		color := nodeColor(n, r, selectable[n.ID], current)
		if n.ID == cursorID {
			color = core.ColorBrightCyan
			dst.SetColored(x-1, y, '[', color)
			dst.SetColored(x+1, y, ']', color)
		}
		dst.SetColored(x, y, n.Kind.Glyph(), color)
	}

	g.renderMapFooter(dst, cursorID)
}

func drawEdge(dst *core.Screen, x1, y1, x2, y2 int, color core.Color) {
	steps := y1 - y2
	for k := 1; k < steps; k++ {
		x := x1 + (x2-x1)*k/steps
		ch := '│'
		switch {
		case x2 > x1:
			ch = '/'
		case x2 < x1:
			ch = '\\'
		}
		dst.SetColored(x, y1-k, ch, color)
	}
}

func nodeColor(n *run.Node, r *run.Run, selectable bool, current *run.Node) core.Color {
	switch {
	case current != nil && n.ID == current.ID:
		return core.ColorBrightWhite
	case selectable:
		return core.ColorYellow
	case r.IsCompleted(n.ID):
		return core.ColorGreen
	case n.Kind == run.Boss:
		return core.ColorBrightRed
	case n.Kind == run.Elite:
		return core.ColorViolet
	}
	return core.ColorGray
}

func (g *Game) renderMapFooter(dst *core.Screen, cursorID int) {
	h := dst.Height()

	legend := fmt.Sprintf("%c puzzle  %c elite  %c chest  %c campfire  %c boss",
		run.Puzzle.Glyph(), run.Elite.Glyph(), run.Chest.Glyph(), run.Campfire.Glyph(), run.Boss.Glyph())
	dst.DrawTextCentered(h-3, legend, core.ColorGray)

	if n := g.run.Graph.Node(cursorID); n != nil {
		dst.DrawTextCentered(h-2, "Next: "+describeNode(n.Kind, g.run), core.ColorYellow)
	}
	dst.DrawTextCentered(h-1, "←/→: choose   Enter: go   Q: quit", core.ColorGray)
}

func describeNode(k run.NodeKind, r *run.Run) string {
	switch k {
	case run.Puzzle:
		return "puzzle"
	case run.Elite:
		return "elite puzzle (harder level)"
	case run.Boss:
		return "boss puzzle"
	case run.Chest:
		return fmt.Sprintf("chest (+%d)", r.Reward(k))
	case run.Campfire:
		return fmt.Sprintf("campfire (+%d)", r.Reward(k))
	}
	return k.String()
}
