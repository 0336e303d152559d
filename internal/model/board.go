package model

// Grid holds the puzzle letters, row-major: Grid[row][col]
type Grid [][]rune

// Rows returns the number of rows
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns in the first row
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Contains returns true if the position is within the grid
func (g Grid) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < len(g) && pos.Col >= 0 && pos.Col < len(g[pos.Row])
}

// Get returns the letter at the given position, or 0 if out of range
func (g Grid) Get(pos Position) rune {
	if !g.Contains(pos) {
		return 0
	}
	return g[pos.Row][pos.Col]
}

// Board is the shared grid of a game plus the locations found so far
type Board struct {
	Grid    Grid
	Length  int // declared rows
	Breadth int // declared columns

	// Locations players have guessed correctly, in the order found
	RecognizedLocations []Location
}

// NewBoard creates a board with no recognized locations
func NewBoard(grid Grid, length, breadth int) *Board {
	return &Board{
		Grid:                grid,
		Length:              length,
		Breadth:             breadth,
		RecognizedLocations: []Location{},
	}
}

// Reveal records a found location
func (b *Board) Reveal(loc Location) {
	b.RecognizedLocations = append(b.RecognizedLocations, loc)
}

// SnapshotCell is a single rendered cell
type SnapshotCell struct {
	Letter rune `json:"letter"`
	Found  bool `json:"found"`
}

// BoardSnapshot is what a renderer needs to draw the board
type BoardSnapshot struct {
	Cells [][]SnapshotCell `json:"cells"`
}

// FoundCount returns the number of highlighted cells
func (s BoardSnapshot) FoundCount() int {
	count := 0
	for _, row := range s.Cells {
		for _, c := range row {
			if c.Found {
				count++
			}
		}
	}
	return count
}
