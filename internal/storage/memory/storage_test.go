package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func testPuzzle() *model.GameConfig {
	return &model.GameConfig{
		Grid:      "C A T\nD O G",
		Length:    2,
		Breadth:   3,
		Players:   []string{"alice", "bob"},
		Locations: []model.Location{{0, 0, 0, 2}, {1, 0, 1, 2}},
	}
}

// Puzzle tests

func (s *StorageSuite) TestSaveAndGetPuzzle() {
	err := s.storage.SavePuzzle(s.ctx, "animals", testPuzzle())
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPuzzle(s.ctx, "animals")
	s.Require().NoError(err)
	s.Equal(testPuzzle(), retrieved)
}

func (s *StorageSuite) TestGetPuzzleNotFound() {
	_, err := s.storage.GetPuzzle(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}

func (s *StorageSuite) TestListPuzzlesSorted() {
	_ = s.storage.SavePuzzle(s.ctx, "zoo", testPuzzle())
	_ = s.storage.SavePuzzle(s.ctx, "animals", testPuzzle())

	names, err := s.storage.ListPuzzles(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"animals", "zoo"}, names)
}

func (s *StorageSuite) TestDeletePuzzle() {
	_ = s.storage.SavePuzzle(s.ctx, "animals", testPuzzle())

	err := s.storage.DeletePuzzle(s.ctx, "animals")
	s.Require().NoError(err)

	_, err = s.storage.GetPuzzle(s.ctx, "animals")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}

// Game history tests

func (s *StorageSuite) TestListGameSummariesNewestFirst() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []model.GameID{"g1", "g2", "g3"} {
		_ = s.storage.SaveGameSummary(s.ctx, &model.GameSummary{
			ID:          id,
			CompletedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	all, err := s.storage.ListGameSummaries(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal(model.GameID("g3"), all[0].ID)
	s.Equal(model.GameID("g1"), all[2].ID)

	limited, err := s.storage.ListGameSummaries(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(limited, 2)
	s.Equal(model.GameID("g3"), limited[0].ID)
	s.Equal(model.GameID("g2"), limited[1].ID)
}

func (s *StorageSuite) TestListGameSummariesEmpty() {
	all, err := s.storage.ListGameSummaries(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(all)
}

// Dictionary tests

func (s *StorageSuite) TestSaveAndGetDictionaryWords() {
	words := []string{"apple", "banana", "cherry"}

	err := s.storage.SaveDictionaryWords(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}

func (s *StorageSuite) TestGetDictionaryWordsNotLoaded() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}
