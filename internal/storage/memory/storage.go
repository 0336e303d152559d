package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/mcoot/wordsearch-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	puzzles         map[string]*model.GameConfig
	history         []*model.GameSummary // oldest first
	dictionaryWords []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		puzzles: make(map[string]*model.GameConfig),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Puzzle operations

func (s *Storage) SavePuzzle(ctx context.Context, name string, cfg *model.GameConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzles[name] = cfg
	return nil
}

func (s *Storage) GetPuzzle(ctx context.Context, name string) (*model.GameConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg, ok := s.puzzles[name]
	if !ok {
		return nil, model.ErrPuzzleNotFound
	}
	return cfg, nil
}

func (s *Storage) ListPuzzles(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.puzzles))
	for name := range s.puzzles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Storage) DeletePuzzle(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.puzzles, name)
	return nil
}

// Game history operations

func (s *Storage) SaveGameSummary(ctx context.Context, summary *model.GameSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, summary)
	return nil
}

// ListGameSummaries returns the most recent summaries, newest first.
// A limit of 0 or less returns everything.
func (s *Storage) ListGameSummaries(ctx context.Context, limit int) ([]*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.history)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]*model.GameSummary, 0, n)
	for i := len(s.history) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, s.history[i])
	}
	return result, nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dictionaryWords == nil {
		return nil, model.ErrDictionaryNotLoaded
	}
	result := make([]string, len(s.dictionaryWords))
	copy(result, s.dictionaryWords)
	return result, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dictionaryWords = make([]string, len(words))
	copy(s.dictionaryWords, words)
	return nil
}
