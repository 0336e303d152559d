package model

// GuessOutcome classifies a submitted guess
type GuessOutcome string

const (
	OutcomePass         GuessOutcome = "pass"
	OutcomeCorrect      GuessOutcome = "correct"
	OutcomeAlreadyFound GuessOutcome = "already_found"
	OutcomeWrong        GuessOutcome = "wrong"
)

// Message returns the text shown to players for an outcome
func (o GuessOutcome) Message() string {
	switch o {
	case OutcomePass:
		return "Passed"
	case OutcomeCorrect:
		return "Correct!"
	case OutcomeAlreadyFound:
		return "Already identified"
	case OutcomeWrong:
		return "Wrong choice"
	default:
		return string(o)
	}
}

// TurnResult describes one completed turn
type TurnResult struct {
	TurnNumber int          // 1-indexed
	Player     *Player      // who moved
	Guess      string       // normalized guess
	Outcome    GuessOutcome
	Location   Location // the revealed location on a correct guess
	Remaining  int      // unclaimed occurrences left after this turn
	NextPlayer *Player  // nil when the game finished
	Finished   bool
}
