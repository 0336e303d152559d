package wordindex

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/mcoot/wordsearch-go/internal/services/grid"
)

// Service builds the word index for a game
type Service struct {
	logger *slog.Logger
}

// New creates a new WordIndexService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Build reads the word under every configured location, in order.
// Locations spelling the same word share one entry. Any location that
// cannot be recognized or read aborts the build.
func (s *Service) Build(g model.Grid, locations []model.Location) (*model.WordIndex, error) {
	index := model.NewWordIndex()

	for i, loc := range locations {
		shape := grid.Recognize(loc)
		if shape == model.ShapeUnrecognized {
			return nil, fmt.Errorf("location %d %v: %w", i, loc, model.ErrUnrecognizedShape)
		}

		word, err := grid.Word(g, loc, shape)
		if err != nil {
			return nil, fmt.Errorf("location %d: %w", i, err)
		}

		index.Add(word, loc.Clone())
	}

	s.logger.Debug("word index built",
		slog.Int("locations", len(locations)),
		slog.Int("distinct_words", index.Len()),
	)

	return index, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Build(g model.Grid, locations []model.Location) (*model.WordIndex, error)
}

var _ ServiceInterface = (*Service)(nil)
