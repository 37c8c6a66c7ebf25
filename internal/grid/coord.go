package grid

// Coord addresses a cell by column and row. (0,0) is the top-left cell.
type Coord struct {
	Col, Row int
}

// Add returns c moved one step in direction d.
func (c Coord) Add(d Dir) Coord {
	dc, dr := d.Delta()
	return Coord{Col: c.Col + dc, Row: c.Row + dr}
}

// Dir is one of the four grid directions.
type Dir int

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// Dirs lists the directions in chain resolution order.
var Dirs = [4]Dir{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the column and row offsets of one step in d.
func (d Dir) Delta() (dc, dr int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}
