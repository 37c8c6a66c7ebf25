package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridshift/internal/grid"
)

// YAMLLevel is the YAML structure of a level file. Grid rows are strings
// with one glyph per cell: '.' open, 'x' flipped, '#' block, 'o' hole,
// 'B' pushable block. Digits 0-4 may be used instead.
type YAMLLevel struct {
	ID        string      `yaml:"id"`
	Name      string      `yaml:"name"`
	TimeLimit int         `yaml:"time_limit,omitempty"`
	Start     YAMLCoord   `yaml:"start"`
	Grid      []string    `yaml:"grid"`
	Enemies   []YAMLEnemy `yaml:"enemies,omitempty"`
}

// YAMLCoord is a board position.
type YAMLCoord struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// YAMLEnemy is one enemy spawn.
type YAMLEnemy struct {
	Type string `yaml:"type"`
	Col  int    `yaml:"col"`
	Row  int    `yaml:"row"`
	Axis string `yaml:"axis,omitempty"`
}

// ParseYAML parses a single-level YAML file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	cells := make([][]int, len(yl.Grid))
	for r, line := range yl.Grid {
		for c, ch := range []rune(line) {
			k, err := grid.KindFromGlyph(ch)
			if err != nil {
				return Level{}, fmt.Errorf("grid row %d col %d: %w", r, c, err)
			}
			cells[r] = append(cells[r], int(k))
		}
	}

	lvl := Level{
		ID:        yl.ID,
		Name:      yl.Name,
		Cells:     cells,
		StartCol:  yl.Start.Col,
		StartRow:  yl.Start.Row,
		TimeLimit: yl.TimeLimit,
	}
	for _, e := range yl.Enemies {
		lvl.Enemies = append(lvl.Enemies, Enemy{Type: e.Type, Col: e.Col, Row: e.Row, Axis: e.Axis})
	}
	return lvl, nil
}

// MarshalYAML renders a level back into the YAML file format.
func MarshalYAML(lvl Level) ([]byte, error) {
	yl := YAMLLevel{
		ID:        lvl.ID,
		Name:      lvl.Name,
		TimeLimit: lvl.TimeLimit,
		Start:     YAMLCoord{Col: lvl.StartCol, Row: lvl.StartRow},
	}
	for _, row := range lvl.Cells {
		line := make([]rune, len(row))
		for c, code := range row {
			k, err := grid.KindFromCode(code)
			if err != nil {
				return nil, err
			}
			line[c] = k.Glyph()
		}
		yl.Grid = append(yl.Grid, string(line))
	}
	for _, e := range lvl.Enemies {
		yl.Enemies = append(yl.Enemies, YAMLEnemy{Type: e.Type, Col: e.Col, Row: e.Row, Axis: e.Axis})
	}
	return yaml.Marshal(yl)
}
