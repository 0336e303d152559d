package board

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/mcoot/wordsearch-go/internal/services/grid"
)

// Service provides board operations
type Service struct {
	logger *slog.Logger
}

// New creates a new BoardService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// CreateBoard parses the grid text and checks it against the declared size.
// A size mismatch is only logged; locations are bounds-checked separately
// when the word index is built.
func (s *Service) CreateBoard(text string, length, breadth int) (*model.Board, error) {
	g, err := grid.Parse(text)
	if err != nil {
		return nil, err
	}
	if g.Rows() == 0 {
		return nil, fmt.Errorf("%w: grid", model.ErrConfigurationMissing)
	}

	if g.Rows() != length {
		s.logger.Warn("grid length does not match declared size",
			slog.Int("declared", length),
			slog.Int("actual", g.Rows()),
		)
	}
	for i, row := range g {
		if len(row) != breadth {
			s.logger.Warn("grid breadth does not match declared size",
				slog.Int("row", i),
				slog.Int("declared", breadth),
				slog.Int("actual", len(row)),
			)
		}
	}

	return model.NewBoard(g, length, breadth), nil
}

// Reveal marks a location as found
func (s *Service) Reveal(board *model.Board, loc model.Location) {
	board.Reveal(loc)
}

// FoundCells works out which cells belong to a recognized location.
// It is recomputed from scratch on every call.
func (s *Service) FoundCells(board *model.Board) map[model.Position]bool {
	found := make(map[model.Position]bool)
	for _, loc := range board.RecognizedLocations {
		cells, err := grid.Cells(loc, grid.Recognize(loc))
		if err != nil {
			s.logger.Error("recognized location cannot be traversed",
				slog.String("location", loc.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		for _, pos := range cells {
			found[pos] = true
		}
	}
	return found
}

// IsFound returns true if the cell lies within any recognized location
func (s *Service) IsFound(board *model.Board, pos model.Position) bool {
	return s.FoundCells(board)[pos]
}

// Snapshot returns every cell with its letter and found flag
func (s *Service) Snapshot(board *model.Board) model.BoardSnapshot {
	found := s.FoundCells(board)

	cells := make([][]model.SnapshotCell, len(board.Grid))
	for row, letters := range board.Grid {
		cells[row] = make([]model.SnapshotCell, len(letters))
		for col, letter := range letters {
			cells[row][col] = model.SnapshotCell{
				Letter: letter,
				Found:  found[model.Position{Row: row, Col: col}],
			}
		}
	}
	return model.BoardSnapshot{Cells: cells}
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateBoard(text string, length, breadth int) (*model.Board, error)
	Reveal(board *model.Board, loc model.Location)
	FoundCells(board *model.Board) map[model.Position]bool
	IsFound(board *model.Board, pos model.Position) bool
	Snapshot(board *model.Board) model.BoardSnapshot
}

var _ ServiceInterface = (*Service)(nil)
