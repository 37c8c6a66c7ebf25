package grid

import "fmt"

// Kind is the state of a single cell.
type Kind uint8

// Cell codes as stored in level data.
const (
	Open      Kind = 0 // floor that still needs flipping
	Flipped   Kind = 1 // floor that has been flipped
	Block     Kind = 2 // wall
	Hole      Kind = 3 // pit
	PushBlock Kind = 4 // reserved; behaves exactly as Block
)

// KindFromCode converts a level cell code to a Kind.
func KindFromCode(code int) (Kind, error) {
	if code < int(Open) || code > int(PushBlock) {
		return 0, fmt.Errorf("grid: unknown cell code %d", code)
	}
	return Kind(code), nil
}

// Floor reports whether the kind is Open or Flipped.
// Floor cells are the only flippable and walkable ones.
func (k Kind) Floor() bool {
	return k == Open || k == Flipped
}

// Glyph returns the single-character notation used by text level files.
func (k Kind) Glyph() rune {
	switch k {
	case Open:
		return '.'
	case Flipped:
		return 'x'
	case Block:
		return '#'
	case Hole:
		return 'o'
	case PushBlock:
		return 'B'
	}
	return '?'
}

// KindFromGlyph is the inverse of Glyph. Digits 0-4 are accepted as well.
func KindFromGlyph(r rune) (Kind, error) {
	switch r {
	case '.', '0':
		return Open, nil
	case 'x', '1':
		return Flipped, nil
	case '#', '2':
		return Block, nil
	case 'o', '3':
		return Hole, nil
	case 'B', '4':
		return PushBlock, nil
	}
	return 0, fmt.Errorf("grid: unknown cell glyph %q", r)
}

func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Flipped:
		return "flipped"
	case Block:
		return "block"
	case Hole:
		return "hole"
	case PushBlock:
		return "push-block"
	}
	return "unknown"
}
