package storage

import (
	"context"

	"github.com/mcoot/wordsearch-go/internal/model"
)

// Storage defines the interface for data persistence.
// Only setup data and finished-game records are stored; a game in
// progress lives in memory for its whole lifetime.
type Storage interface {
	// Puzzle operations
	SavePuzzle(ctx context.Context, name string, cfg *model.GameConfig) error
	GetPuzzle(ctx context.Context, name string) (*model.GameConfig, error)
	ListPuzzles(ctx context.Context) ([]string, error)
	DeletePuzzle(ctx context.Context, name string) error

	// Game history operations
	SaveGameSummary(ctx context.Context, summary *model.GameSummary) error
	ListGameSummaries(ctx context.Context, limit int) ([]*model.GameSummary, error)

	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error
}
