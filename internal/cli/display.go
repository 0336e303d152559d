package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/mcoot/wordsearch-go/internal/services/game"
)

// TerminalDisplay draws the board and turn results as text.
// Found letters are highlighted in color, or shown in lower case
// when color is unavailable.
type TerminalDisplay struct {
	out    io.Writer
	plain  bool
	found  *color.Color
	winner *color.Color
}

var _ game.Display = (*TerminalDisplay)(nil)

// NewTerminalDisplay creates a display writing to out
func NewTerminalDisplay(out io.Writer, noColor bool) *TerminalDisplay {
	d := &TerminalDisplay{
		out:    out,
		plain:  noColor || color.NoColor,
		found:  color.New(color.FgGreen, color.Bold),
		winner: color.New(color.FgYellow, color.Bold),
	}
	if d.plain {
		d.found.DisableColor()
		d.winner.DisableColor()
	}
	return d
}

// ShowBoard prints the grid with row and column numbers
func (d *TerminalDisplay) ShowBoard(snapshot model.BoardSnapshot) {
	rows := len(snapshot.Cells)
	if rows == 0 {
		return
	}

	cols := 0
	for _, row := range snapshot.Cells {
		cols = max(cols, len(row))
	}

	cellWidth := runewidth.StringWidth(strconv.Itoa(cols - 1))
	for _, row := range snapshot.Cells {
		for _, cell := range row {
			cellWidth = max(cellWidth, runewidth.RuneWidth(cell.Letter))
		}
	}
	labelWidth := runewidth.StringWidth(strconv.Itoa(rows - 1))

	var b strings.Builder

	// Column headers
	b.WriteString(strings.Repeat(" ", labelWidth+3))
	for col := 0; col < cols; col++ {
		b.WriteString(" " + runewidth.FillRight(strconv.Itoa(col), cellWidth) + " ")
	}
	b.WriteString("\n")

	border := strings.Repeat(" ", labelWidth+2) + "+" + strings.Repeat("-", cols*(cellWidth+2)) + "+\n"
	b.WriteString(border)

	for r, row := range snapshot.Cells {
		b.WriteString(" " + runewidth.FillLeft(strconv.Itoa(r), labelWidth) + " |")
		for col := 0; col < cols; col++ {
			if col >= len(row) {
				b.WriteString(strings.Repeat(" ", cellWidth+2))
				continue
			}
			b.WriteString(" " + d.cell(row[col], cellWidth) + " ")
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)

	fmt.Fprint(d.out, b.String())
}

func (d *TerminalDisplay) cell(c model.SnapshotCell, width int) string {
	if !c.Found {
		return runewidth.FillRight(string(c.Letter), width)
	}
	if d.plain {
		return runewidth.FillRight(string(unicode.ToLower(c.Letter)), width)
	}
	return d.found.Sprint(runewidth.FillRight(string(c.Letter), width))
}

// ShowTurn prints the outcome of a single guess
func (d *TerminalDisplay) ShowTurn(turn *model.TurnResult) {
	switch turn.Outcome {
	case model.OutcomePass:
		fmt.Fprintf(d.out, "%s: %s\n", turn.Player.Name, turn.Outcome.Message())
	case model.OutcomeCorrect:
		fmt.Fprintf(d.out, "%s: %s - %s %d left\n",
			turn.Player.Name, turn.Guess, turn.Outcome.Message(), turn.Remaining)
	default:
		fmt.Fprintf(d.out, "%s: %s - %s\n", turn.Player.Name, turn.Guess, turn.Outcome.Message())
	}
}

// ShowResult prints the final standings
func (d *TerminalDisplay) ShowResult(result *model.GameResult) {
	if result == nil {
		return
	}

	switch result.Reason {
	case model.EndReasonExhausted:
		fmt.Fprintln(d.out, "Game over: all words found")
	case model.EndReasonPassedOut:
		fmt.Fprintln(d.out, "Game over: every player passed twice")
	}

	if result.Draw || result.Winner == nil {
		fmt.Fprintln(d.out, d.winner.Sprint("It's a draw"))
	} else {
		fmt.Fprintln(d.out, d.winner.Sprintf("Winner: %s with %d points", result.Winner.Name, result.Winner.Score))
	}

	fmt.Fprintln(d.out, "\nFinal Scores:")
	for _, p := range result.Players {
		if len(p.CorrectAnswers) == 0 {
			fmt.Fprintf(d.out, "  %s: %d\n", p.Name, p.Score)
			continue
		}
		fmt.Fprintf(d.out, "  %s: %d (%s)\n", p.Name, p.Score, strings.Join(p.CorrectAnswers, ", "))
	}
}
