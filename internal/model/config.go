package model

// GameConfig is everything needed to set up a game.
// It is built once at startup and never mutated afterwards.
type GameConfig struct {
	Grid      string     `json:"grid"`    // raw grid text, one row per line
	Length    int        `json:"glen"`    // declared rows
	Breadth   int        `json:"gbred"`   // declared columns
	Players   []string   `json:"players"` // turn order
	Locations []Location `json:"locations"`
}
