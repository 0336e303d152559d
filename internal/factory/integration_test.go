package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/mcoot/wordsearch-go/internal/services/config"
	"github.com/mcoot/wordsearch-go/internal/services/generator"
)

const catDogINI = `
[nplayers]
nplayers = 2

[gsize]
gsize = 2x3

[grid]
grid = """C A T
D O G"""

[players]
players = P1, P2

[words]
w1 = 0 0 0 2
w2 = 1 0 1 2
`

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.Require().NoError(s.app.LoadTestDictionary())
}

// Test: Complete game flow from configuration file to recorded history
func (s *IntegrationSuite) TestCompleteGameFlow() {
	s.app.MockRandom.QueueString("GAME0001")

	// Step 1: Parse the configuration
	cfg, err := config.Parse([]byte(catDogINI))
	s.Require().NoError(err)

	// Step 2: Create the game
	game, err := s.app.GameController.CreateGame(s.ctx, *cfg)
	s.Require().NoError(err)
	s.Equal(model.GameID("GAME0001"), game.ID)
	s.Equal(2, game.Words.Remaining())

	// Step 3: P1 finds CAT
	s.app.MockClock.Advance(time.Minute)
	turn, err := s.app.GameController.SubmitGuess(s.ctx, game, "cat")
	s.Require().NoError(err)
	s.Equal(model.OutcomeCorrect, turn.Outcome)
	s.Equal("P2", turn.NextPlayer.Name)

	// Step 4: P2 repeats CAT
	turn, err = s.app.GameController.SubmitGuess(s.ctx, game, "CAT")
	s.Require().NoError(err)
	s.Equal(model.OutcomeAlreadyFound, turn.Outcome)

	// Step 5: P1 finds DOG and the game ends
	turn, err = s.app.GameController.SubmitGuess(s.ctx, game, "dog")
	s.Require().NoError(err)
	s.True(turn.Finished)

	s.Require().NotNil(game.Result)
	s.False(game.Result.Draw)
	s.Equal("P1", game.Result.Winner.Name)
	s.Equal(6, s.app.GameController.RenderSnapshot(game).FoundCount())

	// Step 6: The summary is in history
	history, err := s.app.Storage.ListGameSummaries(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Equal(model.GameID("GAME0001"), history[0].ID)
	s.Equal("P1", history[0].Winner)
	s.Equal(map[string]int{"P1": 2, "P2": 0}, history[0].FinalScores)
	s.Equal(3, history[0].Turns)
	s.Equal(s.app.MockClock.Now(), history[0].CompletedAt)
}

// Test: A generated puzzle saved by name can be played back
func (s *IntegrationSuite) TestGeneratedPuzzleFlow() {
	// Step 1: Generate a one-word puzzle
	puzzle, err := s.app.GeneratorService.Generate(s.ctx, generator.Request{
		Players:   []string{"alice", "bob"},
		Length:    6,
		Breadth:   6,
		WordCount: 1,
	})
	s.Require().NoError(err)

	// Step 2: Save it and load it back
	s.Require().NoError(s.app.Storage.SavePuzzle(s.ctx, "daily", puzzle))
	loaded, err := s.app.Storage.GetPuzzle(s.ctx, "daily")
	s.Require().NoError(err)

	// Step 3: Play it
	game, err := s.app.GameController.CreateGame(s.ctx, *loaded)
	s.Require().NoError(err)
	words := game.Words.Words()
	s.Require().Len(words, 1)

	turn, err := s.app.GameController.SubmitGuess(s.ctx, game, "PASS")
	s.Require().NoError(err)
	s.Equal(model.OutcomePass, turn.Outcome)

	turn, err = s.app.GameController.SubmitGuess(s.ctx, game, words[0])
	s.Require().NoError(err)
	s.True(turn.Finished)
	s.Equal("bob", game.Result.Winner.Name)
}

// Test: Passing out ends a game in a draw even with words left
func (s *IntegrationSuite) TestPassOutFlow() {
	cfg, err := config.Parse([]byte(catDogINI))
	s.Require().NoError(err)

	game, err := s.app.GameController.CreateGame(s.ctx, *cfg)
	s.Require().NoError(err)

	for i := 0; i < 4; i++ {
		_, err := s.app.GameController.SubmitGuess(s.ctx, game, "pass")
		s.Require().NoError(err)
	}

	s.True(game.IsFinished())
	s.True(game.Result.Draw)
	s.Equal(model.EndReasonPassedOut, game.Result.Reason)

	_, err = s.app.GameController.SubmitGuess(s.ctx, game, "cat")
	s.ErrorIs(err, model.ErrGameComplete)
}

// Test: History lists finished games newest first
func (s *IntegrationSuite) TestHistoryNewestFirst() {
	s.app.MockClock.Step = time.Second
	s.app.MockRandom.QueueString("FIRST001", "SECOND01")

	for i := 0; i < 2; i++ {
		cfg, err := config.Parse([]byte(catDogINI))
		s.Require().NoError(err)
		game, err := s.app.GameController.CreateGame(s.ctx, *cfg)
		s.Require().NoError(err)

		for _, guess := range []string{"cat", "pass", "dog"} {
			_, err := s.app.GameController.SubmitGuess(s.ctx, game, guess)
			s.Require().NoError(err)
		}
		s.Require().True(game.IsFinished())
		s.True(game.UpdatedAt.After(game.CreatedAt))
	}

	history, err := s.app.Storage.ListGameSummaries(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal(model.GameID("SECOND01"), history[0].ID)
	s.Equal(model.GameID("FIRST001"), history[1].ID)
	s.True(history[0].CompletedAt.After(history[1].CompletedAt))
}
