// Package levels provides puzzle level definitions, loading, and the
// policy that maps map nodes to levels.
package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gridshift/internal/entity"
	"github.com/vovakirdan/gridshift/internal/grid"
	"github.com/vovakirdan/gridshift/internal/levels/formats"
)

// ErrNoLevels is returned when no usable level data could be found.
var ErrNoLevels = errors.New("levels: no levels available")

// EnemySpawn places one enemy at level start.
type EnemySpawn struct {
	Kind entity.Kind
	At   grid.Coord
	Axis entity.Axis
}

// Level is a validated level definition.
type Level struct {
	ID        string
	Name      string
	Cols      int
	Rows      int
	Cells     [][]int
	Start     grid.Coord
	Enemies   []EnemySpawn
	TimeLimit int    // seconds, 0 = unlimited
	FilePath  string // source file, empty for built-in levels
}

// NewGrid builds a fresh board for one attempt at the level.
func (l *Level) NewGrid() *grid.Grid {
	// Cells were checked by FromFormat.
	g, _ := grid.FromCodes(l.Cols, l.Rows, l.Cells)
	return g
}

// SpawnEnemies creates the level's enemies.
func (l *Level) SpawnEnemies() []*entity.Enemy {
	out := make([]*entity.Enemy, len(l.Enemies))
	for i, s := range l.Enemies {
		out[i] = entity.NewEnemy(s.At, s.Kind, s.Axis)
	}
	return out
}

// Format converts the level back into its file form.
func (l *Level) Format() formats.Level {
	fl := formats.Level{
		ID:        l.ID,
		Name:      l.Name,
		Cells:     l.Cells,
		StartCol:  l.Start.Col,
		StartRow:  l.Start.Row,
		TimeLimit: l.TimeLimit,
	}
	for _, s := range l.Enemies {
		fe := formats.Enemy{Type: s.Kind.String(), Col: s.At.Col, Row: s.At.Row}
		if s.Kind == entity.Pacer {
			fe.Axis = s.Axis.String()
		}
		fl.Enemies = append(fl.Enemies, fe)
	}
	return fl
}

// FromFormat validates a parsed level against the board size.
func FromFormat(fl formats.Level, cols, rows int) (Level, error) {
	lvl := Level{
		ID:        fl.ID,
		Name:      fl.Name,
		Cols:      cols,
		Rows:      rows,
		Cells:     fl.Cells,
		Start:     grid.Coord{Col: fl.StartCol, Row: fl.StartRow},
		TimeLimit: fl.TimeLimit,
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}
	if lvl.TimeLimit < 0 {
		return Level{}, fmt.Errorf("level %q: negative time limit %d", lvl.ID, lvl.TimeLimit)
	}
	if len(fl.Cells) == 0 {
		return Level{}, fmt.Errorf("level %q: empty grid", lvl.ID)
	}
	if len(fl.Cells) > rows {
		return Level{}, fmt.Errorf("level %q: %d rows exceed board height %d", lvl.ID, len(fl.Cells), rows)
	}
	for r, row := range fl.Cells {
		if len(row) > cols {
			return Level{}, fmt.Errorf("level %q: row %d has %d cells, board width is %d", lvl.ID, r, len(row), cols)
		}
	}

	g, err := grid.FromCodes(cols, rows, fl.Cells)
	if err != nil {
		return Level{}, fmt.Errorf("level %q: %w", lvl.ID, err)
	}
	if !g.IsWalkable(lvl.Start) {
		return Level{}, fmt.Errorf("level %q: start %v is not floor", lvl.ID, lvl.Start)
	}

	for i, fe := range fl.Enemies {
		kind, err := entity.ParseKind(fe.Type)
		if err != nil {
			return Level{}, fmt.Errorf("level %q: enemy %d: %w", lvl.ID, i, err)
		}
		axis, err := entity.ParseAxis(fe.Axis)
		if err != nil {
			return Level{}, fmt.Errorf("level %q: enemy %d: %w", lvl.ID, i, err)
		}
		at := grid.Coord{Col: fe.Col, Row: fe.Row}
		if !g.IsWalkable(at) {
			return Level{}, fmt.Errorf("level %q: enemy %d at %v is not on floor", lvl.ID, i, at)
		}
		if at == lvl.Start {
			return Level{}, fmt.Errorf("level %q: enemy %d spawns on the player", lvl.ID, i)
		}
		lvl.Enemies = append(lvl.Enemies, EnemySpawn{Kind: kind, At: at, Axis: axis})
	}
	return lvl, nil
}
