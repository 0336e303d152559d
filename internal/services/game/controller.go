package game

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/mcoot/wordsearch-go/internal/dependencies/clock"
	"github.com/mcoot/wordsearch-go/internal/dependencies/random"
	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/mcoot/wordsearch-go/internal/services/board"
	"github.com/mcoot/wordsearch-go/internal/services/scoring"
	"github.com/mcoot/wordsearch-go/internal/services/wordindex"
	"github.com/mcoot/wordsearch-go/internal/storage"
)

// Prompter asks the current player for a guess and blocks until one arrives
type Prompter interface {
	Prompt(ctx context.Context, request string) (string, error)
}

// Display shows the game as it progresses
type Display interface {
	ShowBoard(snapshot model.BoardSnapshot)
	ShowTurn(turn *model.TurnResult)
	ShowResult(result *model.GameResult)
}

// Controller manages the game state machine and turn flow
type Controller struct {
	storage          storage.Storage
	boardService     *board.Service
	wordIndexService *wordindex.Service
	scoringService   *scoring.Service
	clock            clock.Clock
	random           random.Random
	logger           *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	wordIndexService *wordindex.Service,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:          storage,
		boardService:     boardService,
		wordIndexService: wordIndexService,
		scoringService:   scoringService,
		clock:            clock,
		random:           random,
		logger:           logger,
	}
}

// CreateGame validates the configuration and sets up a new game.
// Every configuration problem is reported here, before any turn is played.
func (c *Controller) CreateGame(ctx context.Context, cfg model.GameConfig) (*model.Game, error) {
	if len(cfg.Players) == 0 {
		return nil, fmt.Errorf("%w: players", model.ErrConfigurationMissing)
	}
	if len(cfg.Locations) == 0 {
		return nil, fmt.Errorf("%w: word locations", model.ErrConfigurationMissing)
	}

	players := make([]*model.Player, 0, len(cfg.Players))
	for _, name := range cfg.Players {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty player name", model.ErrConfigurationMalformed)
		}
		player := model.NewPlayer(name)
		if slices.ContainsFunc(players, player.Equal) {
			return nil, fmt.Errorf("%w: duplicate player %q", model.ErrConfigurationMalformed, name)
		}
		players = append(players, player)
	}

	boardObj, err := c.boardService.CreateBoard(cfg.Grid, cfg.Length, cfg.Breadth)
	if err != nil {
		return nil, err
	}

	words, err := c.wordIndexService.Build(boardObj.Grid, cfg.Locations)
	if err != nil {
		return nil, err
	}
	if _, hidden := words.Get(model.PassAnswer); hidden {
		return nil, fmt.Errorf("%w: %s is reserved and cannot be a hidden word",
			model.ErrConfigurationMalformed, model.PassAnswer)
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:         model.GameID(c.random.String(8, "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")),
		State:      model.GameStateAwaitingGuess,
		Board:      boardObj,
		Players:    players,
		Words:      words,
		CurrentIdx: 0,
		TurnCount:  0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("player_count", len(players)),
		slog.Int("word_count", words.Remaining()),
		slog.Int("rows", boardObj.Grid.Rows()),
	)

	return game, nil
}

// NormalizeGuess trims surrounding whitespace and upper-cases a guess
func NormalizeGuess(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// SubmitGuess applies the current player's guess and advances the game.
// Any string is accepted; the only error is playing after the game ended.
func (c *Controller) SubmitGuess(ctx context.Context, game *model.Game, raw string) (*model.TurnResult, error) {
	if game.IsFinished() {
		return nil, model.ErrGameComplete
	}

	player := game.CurrentPlayer()
	guess := NormalizeGuess(raw)
	player.RecordAnswer(guess)

	turn := &model.TurnResult{
		TurnNumber: game.TurnCount + 1,
		Player:     player,
		Guess:      guess,
	}

	switch entry, known := game.Words.Get(guess); {
	case guess == model.PassAnswer:
		turn.Outcome = model.OutcomePass
	case !known:
		turn.Outcome = model.OutcomeWrong
	case entry.Count == 0:
		turn.Outcome = model.OutcomeAlreadyFound
	default:
		loc, _ := game.Words.Claim(guess)
		player.RecordCorrect(guess)
		c.boardService.Reveal(game.Board, loc)
		turn.Outcome = model.OutcomeCorrect
		turn.Location = loc
	}

	game.TurnCount++
	game.UpdatedAt = c.clock.Now()
	turn.Remaining = game.Words.Remaining()

	c.logger.Debug("turn played",
		slog.String("game_id", string(game.ID)),
		slog.String("player", player.Name),
		slog.String("outcome", string(turn.Outcome)),
		slog.Int("remaining", turn.Remaining),
	)

	switch {
	case turn.Remaining == 0:
		c.finish(ctx, game, model.EndReasonExhausted)
	case game.AllPassedOut():
		c.finish(ctx, game, model.EndReasonPassedOut)
	default:
		game.CurrentIdx = (game.CurrentIdx + 1) % len(game.Players)
		turn.NextPlayer = game.CurrentPlayer()
	}
	turn.Finished = game.IsFinished()

	return turn, nil
}

// finish computes the result and records a summary of the game
func (c *Controller) finish(ctx context.Context, game *model.Game, reason model.EndReason) {
	game.Result = c.scoringService.Result(game.Players, reason)
	game.State = model.GameStateFinished

	summary := c.summarize(game)
	c.logger.Info("game completed",
		slog.String("game_id", string(game.ID)),
		slog.String("reason", string(reason)),
		slog.String("winner", summary.Winner),
		slog.Int("total_turns", game.TurnCount),
	)

	// The result stands even if history cannot be written
	if err := c.storage.SaveGameSummary(ctx, summary); err != nil {
		c.logger.Error("failed to save game summary",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
	}
}

func (c *Controller) summarize(game *model.Game) *model.GameSummary {
	scores := make(map[string]int, len(game.Players))
	for _, p := range game.Players {
		scores[p.Name] = p.Score
	}

	summary := &model.GameSummary{
		ID:          game.ID,
		FinalScores: scores,
		Reason:      game.Result.Reason,
		Turns:       game.TurnCount,
		CompletedAt: c.clock.Now(),
	}
	if game.Result.Winner != nil {
		summary.Winner = game.Result.Winner.Name
	}
	return summary
}

// Play runs the turn loop until the game finishes. It shows the board
// before every turn, asks the current player for a guess, and reports
// each outcome and the final result to the display.
func (c *Controller) Play(ctx context.Context, game *model.Game, prompter Prompter, display Display) (*model.GameResult, error) {
	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		display.ShowBoard(c.RenderSnapshot(game))

		player := game.CurrentPlayer()
		request := fmt.Sprintf("%s, enter a word (or %s): ", player.Name, model.PassAnswer)
		guess, err := prompter.Prompt(ctx, request)
		if err != nil {
			return nil, fmt.Errorf("prompting %s: %w", player.Name, err)
		}

		turn, err := c.SubmitGuess(ctx, game, guess)
		if err != nil {
			return nil, err
		}
		display.ShowTurn(turn)
	}

	display.ShowBoard(c.RenderSnapshot(game))
	display.ShowResult(game.Result)
	return game.Result, nil
}

// RenderSnapshot returns the board with found cells marked
func (c *Controller) RenderSnapshot(game *model.Game) model.BoardSnapshot {
	return c.boardService.Snapshot(game.Board)
}

// CheckWinner returns the winner among players, or nil on a draw
func (c *Controller) CheckWinner(players []*model.Player) *model.Player {
	return c.scoringService.DetermineWinner(c.scoringService.RankPlayers(players))
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, cfg model.GameConfig) (*model.Game, error)
	SubmitGuess(ctx context.Context, game *model.Game, raw string) (*model.TurnResult, error)
	Play(ctx context.Context, game *model.Game, prompter Prompter, display Display) (*model.GameResult, error)
	RenderSnapshot(game *model.Game) model.BoardSnapshot
	CheckWinner(players []*model.Player) *model.Player
}

var _ ControllerInterface = (*Controller)(nil)
