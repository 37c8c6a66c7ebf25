package formats

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonPack is the pack layout: every level of a game in one file.
type jsonPack struct {
	Levels []jsonLevel `json:"levels"`
}

type jsonLevel struct {
	ID          jsonID      `json:"id"`
	Name        string      `json:"name"`
	Grid        [][]int     `json:"grid"`
	PlayerStart jsonCoord   `json:"playerStart"`
	Enemies     []jsonEnemy `json:"enemies"`
	TimeLimit   int         `json:"timeLimit"`
}

type jsonCoord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

type jsonEnemy struct {
	Type string `json:"type"`
	Col  int    `json:"col"`
	Row  int    `json:"row"`
	Axis string `json:"axis"`
}

// jsonID accepts both "id": "intro" and "id": 1.
type jsonID string

func (id *jsonID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = jsonID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("level id must be a string or a number: %s", data)
	}
	*id = jsonID(n.String())
	return nil
}

// ParseJSONPack parses a {"levels": [...]} pack. Levels keep pack order.
func ParseJSONPack(data []byte) ([]Level, error) {
	var pack jsonPack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	out := make([]Level, 0, len(pack.Levels))
	for _, jl := range pack.Levels {
		lvl := Level{
			ID:        string(jl.ID),
			Name:      jl.Name,
			Cells:     jl.Grid,
			StartCol:  jl.PlayerStart.Col,
			StartRow:  jl.PlayerStart.Row,
			TimeLimit: jl.TimeLimit,
		}
		for _, e := range jl.Enemies {
			lvl.Enemies = append(lvl.Enemies, Enemy(e))
		}
		out = append(out, lvl)
	}
	return out, nil
}
