package model

import "time"

// GameID uniquely identifies a game session
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateAwaitingGuess GameState = "awaiting_guess" // Waiting for the current player
	GameStateFinished      GameState = "finished"       // Terminal condition reached
)

// EndReason explains why a game finished
type EndReason string

const (
	EndReasonExhausted EndReason = "exhausted" // Every hidden word was found
	EndReasonPassedOut EndReason = "passed_out" // Every player passed twice in a row
)

// Game is a single word-search session.
// The game controller is the only writer of its fields.
type Game struct {
	ID      GameID
	State   GameState
	Board   *Board
	Players []*Player
	Words   *WordIndex

	// Turn management
	CurrentIdx int // Index into Players for the player to move
	TurnCount  int // Turns completed so far

	Result    *GameResult // nil until finished
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.CurrentIdx]
}

// IsFinished returns true once a terminal condition has been reached
func (g *Game) IsFinished() bool {
	return g.State == GameStateFinished
}

// AllPassedOut returns true if every player's last two answers were passes
func (g *Game) AllPassedOut() bool {
	if len(g.Players) == 0 {
		return false
	}
	for _, p := range g.Players {
		if !p.PassedOut() {
			return false
		}
	}
	return true
}

// GameResult is the outcome of a finished game. Winner is nil on a draw.
type GameResult struct {
	Winner  *Player   `json:"winner,omitempty"`
	Draw    bool      `json:"draw"`
	Reason  EndReason `json:"reason"`
	Players []*Player `json:"players"` // sorted by score, highest first
}

// GameSummary is a lightweight record of a completed game
type GameSummary struct {
	ID          GameID         `json:"id"`
	FinalScores map[string]int `json:"final_scores"`
	Winner      string         `json:"winner,omitempty"` // Empty if draw
	Reason      EndReason      `json:"reason"`
	Turns       int            `json:"turns"`
	CompletedAt time.Time      `json:"completed_at"`
}
