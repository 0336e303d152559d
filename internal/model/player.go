package model

// PassAnswer is the guess a player submits to skip their turn
const PassAnswer = "PASS"

// Player represents a game participant. Players are identified by name.
type Player struct {
	Name           string   `json:"name"`
	Score          int      `json:"score"`
	Answers        []string `json:"answers"`         // every guess, including passes
	CorrectAnswers []string `json:"correct_answers"` // guesses that scored
}

// NewPlayer creates a player with an empty history
func NewPlayer(name string) *Player {
	return &Player{
		Name:           name,
		Answers:        []string{},
		CorrectAnswers: []string{},
	}
}

// Equal reports whether both players have the same name
func (p *Player) Equal(other *Player) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.Name == other.Name
}

// RecordAnswer appends a guess to the answer history
func (p *Player) RecordAnswer(answer string) {
	p.Answers = append(p.Answers, answer)
}

// RecordCorrect appends a scored guess and awards one point
func (p *Player) RecordCorrect(answer string) {
	p.CorrectAnswers = append(p.CorrectAnswers, answer)
	p.Score++
}

// PassedOut returns true if the last two answers were both passes
func (p *Player) PassedOut() bool {
	n := len(p.Answers)
	if n < 2 {
		return false
	}
	return p.Answers[n-1] == PassAnswer && p.Answers[n-2] == PassAnswer
}
