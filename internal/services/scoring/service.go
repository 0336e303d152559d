package scoring

import (
	"sort"

	"github.com/mcoot/wordsearch-go/internal/model"
)

// Service ranks players and decides the winner of a finished game
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// RankPlayers returns the players sorted by score, highest first.
// Players with equal scores keep their turn order.
func (s *Service) RankPlayers(players []*model.Player) []*model.Player {
	ranked := make([]*model.Player, len(players))
	copy(ranked, players)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// DetermineWinner returns the highest-scoring player, or nil if the top two
// scores are equal. A lone player always wins.
func (s *Service) DetermineWinner(ranked []*model.Player) *model.Player {
	if len(ranked) == 0 {
		return nil
	}
	if len(ranked) > 1 && ranked[0].Score == ranked[1].Score {
		return nil // Tie
	}
	return ranked[0]
}

// Result builds the final result for a game that ended for the given reason.
// A pass-out is always a draw.
func (s *Service) Result(players []*model.Player, reason model.EndReason) *model.GameResult {
	ranked := s.RankPlayers(players)
	result := &model.GameResult{
		Reason:  reason,
		Players: ranked,
	}

	if reason == model.EndReasonPassedOut {
		result.Draw = true
		return result
	}

	result.Winner = s.DetermineWinner(ranked)
	result.Draw = result.Winner == nil
	return result
}

// Interface for dependency injection
type ServiceInterface interface {
	RankPlayers(players []*model.Player) []*model.Player
	DetermineWinner(ranked []*model.Player) *model.Player
	Result(players []*model.Player, reason model.EndReason) *model.GameResult
}

var _ ServiceInterface = (*Service)(nil)
