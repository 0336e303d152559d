package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcoot/wordsearch-go/internal/dependencies/random"
	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/mcoot/wordsearch-go/internal/services/dictionary"
)

const (
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// minWordLength keeps single letters and pairs out of generated puzzles
	minWordLength = 3

	// placementAttempts is how many random spots are tried per word
	placementAttempts = 50
)

// Request describes the puzzle to generate
type Request struct {
	Players   []string
	Length    int // rows
	Breadth   int // columns
	WordCount int
}

// Service builds random puzzles from the dictionary
type Service struct {
	dictionary *dictionary.Service
	random     random.Random
	logger     *slog.Logger
}

// New creates a new GeneratorService
func New(dictionary *dictionary.Service, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		dictionary: dictionary,
		random:     random,
		logger:     logger,
	}
}

// direction of a placed word; every direction reads top-left to bottom-right
type direction int

const (
	horizontal direction = iota
	vertical
	diagonal
)

// Generate hides WordCount dictionary words in a fresh grid and fills the
// remaining cells with random letters. Words may cross where letters agree.
// Every location is written with its lower endpoint first.
func (s *Service) Generate(ctx context.Context, req Request) (*model.GameConfig, error) {
	if len(req.Players) == 0 {
		return nil, fmt.Errorf("%w: players", model.ErrConfigurationMissing)
	}
	if req.Length <= 0 || req.Breadth <= 0 || req.WordCount <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d with %d words",
			model.ErrConfigurationMalformed, req.Length, req.Breadth, req.WordCount)
	}

	maxLen := max(req.Length, req.Breadth)
	candidates, err := s.dictionary.Candidates(minWordLength, maxLen)
	if err != nil {
		return nil, err
	}
	s.shuffle(candidates)

	cells := make([][]rune, req.Length)
	for i := range cells {
		cells[i] = make([]rune, req.Breadth)
	}

	var locations []model.Location
	for _, word := range candidates {
		if len(locations) == req.WordCount {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if loc, ok := s.place(cells, []rune(word)); ok {
			locations = append(locations, loc)
		}
	}

	if len(locations) < req.WordCount {
		return nil, fmt.Errorf("%w: placed %d of %d words in a %dx%d grid",
			model.ErrNotEnoughWords, len(locations), req.WordCount, req.Length, req.Breadth)
	}

	rows := make([]string, req.Length)
	for r, row := range cells {
		out := make([]string, len(row))
		for c, letter := range row {
			if letter == 0 {
				letter = rune(letters[s.random.Intn(len(letters))])
			}
			out[c] = string(letter)
		}
		rows[r] = strings.Join(out, " ")
	}

	s.logger.Info("puzzle generated",
		slog.Int("rows", req.Length),
		slog.Int("cols", req.Breadth),
		slog.Int("words", len(locations)),
	)

	return &model.GameConfig{
		Grid:      strings.Join(rows, "\n"),
		Length:    req.Length,
		Breadth:   req.Breadth,
		Players:   req.Players,
		Locations: locations,
	}, nil
}

// shuffle permutes words in place (Fisher-Yates)
func (s *Service) shuffle(words []string) {
	for i := len(words) - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		words[i], words[j] = words[j], words[i]
	}
}

// place tries random spots for a word and writes it on success
func (s *Service) place(cells [][]rune, word []rune) (model.Location, bool) {
	rows, cols := len(cells), len(cells[0])
	n := len(word)

	for attempt := 0; attempt < placementAttempts; attempt++ {
		dir := direction(s.random.Intn(3))

		dr, dc := 0, 1
		maxRow, maxCol := rows-1, cols-n
		switch dir {
		case vertical:
			dr, dc = 1, 0
			maxRow, maxCol = rows-n, cols-1
		case diagonal:
			dr, dc = 1, 1
			maxRow, maxCol = rows-n, cols-n
		}
		if maxRow < 0 || maxCol < 0 {
			continue
		}

		row := s.random.Intn(maxRow + 1)
		col := s.random.Intn(maxCol + 1)
		if !fits(cells, word, row, col, dr, dc) {
			continue
		}

		for k, letter := range word {
			cells[row+k*dr][col+k*dc] = letter
		}
		return model.Location{row, col, row + (n-1)*dr, col + (n-1)*dc}, true
	}
	return nil, false
}

func fits(cells [][]rune, word []rune, row, col, dr, dc int) bool {
	for k, letter := range word {
		existing := cells[row+k*dr][col+k*dc]
		if existing != 0 && existing != letter {
			return false
		}
	}
	return true
}

// Interface check
type ServiceInterface interface {
	Generate(ctx context.Context, req Request) (*model.GameConfig, error)
}

var _ ServiceInterface = (*Service)(nil)
