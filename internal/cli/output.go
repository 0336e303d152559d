package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/mcoot/wordsearch-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// IsJSON reports whether machine-readable output was requested
func (o *Output) IsJSON() bool {
	return o.format == "json"
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.IsJSON() {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.IsJSON() {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.IsJSON() {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case []*model.GameSummary:
		o.printHistory(v)
	case PuzzleList:
		o.printPuzzleList(v)
	case MadePuzzle:
		o.printMadePuzzle(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// PuzzleList is the set of saved puzzle names
type PuzzleList struct {
	Puzzles []string `json:"puzzles"`
}

// MadePuzzle describes a newly generated puzzle
type MadePuzzle struct {
	Path    string   `json:"path,omitempty"`
	SavedAs string   `json:"saved_as,omitempty"`
	Rows    int      `json:"rows"`
	Cols    int      `json:"cols"`
	Players []string `json:"players"`
	Words   int      `json:"words"`
}

func (o *Output) printHistory(summaries []*model.GameSummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(o.out, "No games played yet")
		return
	}

	for _, s := range summaries {
		winner := "draw"
		if s.Winner != "" {
			winner = "winner " + s.Winner
		}
		fmt.Fprintf(o.out, "%s  %s  %s (%s, %d turns)\n",
			s.CompletedAt.Format(time.DateTime), s.ID, winner, s.Reason, s.Turns)

		names := make([]string, 0, len(s.FinalScores))
		for name := range s.FinalScores {
			names = append(names, name)
		}
		sort.Strings(names)

		scores := make([]string, 0, len(names))
		for _, name := range names {
			scores = append(scores, fmt.Sprintf("%s=%d", name, s.FinalScores[name]))
		}
		fmt.Fprintf(o.out, "    %s\n", strings.Join(scores, " "))
	}
}

func (o *Output) printPuzzleList(l PuzzleList) {
	if len(l.Puzzles) == 0 {
		fmt.Fprintln(o.out, "No saved puzzles")
		return
	}
	fmt.Fprintf(o.out, "Saved puzzles (%d):\n", len(l.Puzzles))
	for _, name := range l.Puzzles {
		fmt.Fprintf(o.out, "  - %s\n", name)
	}
}

func (o *Output) printMadePuzzle(p MadePuzzle) {
	fmt.Fprintf(o.out, "Generated %dx%d puzzle with %d words for %s\n",
		p.Rows, p.Cols, p.Words, strings.Join(p.Players, ", "))
	if p.Path != "" {
		fmt.Fprintf(o.out, "Written to %s\n", p.Path)
	}
	if p.SavedAs != "" {
		fmt.Fprintf(o.out, "Saved as %q\n", p.SavedAs)
	}
}
