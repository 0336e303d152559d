package model

import "fmt"

// Position identifies a cell on the grid
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Location is the configured coordinate list of a hidden word.
// Two elements describe a single cell, four describe a straight run
// from (r1, c1) to (r2, c2).
type Location []int

// Shape is the geometric classification of a Location
type Shape string

const (
	ShapeSingle       Shape = "single"
	ShapeHorizontal   Shape = "horizontal"
	ShapeVertical     Shape = "vertical"
	ShapeDiagonal     Shape = "diagonal"
	ShapeUnrecognized Shape = "unrecognized"
)

// Start returns the first coordinate pair
func (l Location) Start() Position {
	return Position{Row: l[0], Col: l[1]}
}

// End returns the last coordinate pair. For a single cell it equals Start.
func (l Location) End() Position {
	if len(l) < 4 {
		return l.Start()
	}
	return Position{Row: l[2], Col: l[3]}
}

// Clone returns a copy that does not share the backing array
func (l Location) Clone() Location {
	out := make(Location, len(l))
	copy(out, l)
	return out
}

func (l Location) String() string {
	return fmt.Sprint([]int(l))
}
