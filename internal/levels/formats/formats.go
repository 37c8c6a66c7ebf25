// Package formats parses the YAML and JSON level file formats.
package formats

import "strings"

// Level is a parsed level before validation against the board size.
type Level struct {
	ID        string
	Name      string
	Cells     [][]int // row-major cell codes
	StartCol  int
	StartRow  int
	Enemies   []Enemy
	TimeLimit int // seconds, 0 = unlimited
}

// Enemy is one enemy spawn as written in a level file.
type Enemy struct {
	Type string
	Col  int
	Row  int
	Axis string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}

// Parse routes data to the parser for ext. One file may hold several levels.
func Parse(data []byte, ext string) ([]Level, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		lvl, err := ParseYAML(data)
		if err != nil {
			return nil, err
		}
		return []Level{lvl}, nil
	case ".json":
		return ParseJSONPack(data)
	}
	return nil, &UnsupportedError{Ext: ext}
}

// UnsupportedError is returned for file extensions with no parser.
type UnsupportedError struct {
	Ext string
}

func (e *UnsupportedError) Error() string {
	return "unsupported extension: " + e.Ext
}
