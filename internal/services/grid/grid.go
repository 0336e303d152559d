// Package grid recognizes location shapes and walks the cells they cover.
package grid

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mcoot/wordsearch-go/internal/model"
)

// Parse converts raw grid text into upper-cased rows.
// Cells on a line are separated by whitespace; a line holding a single
// multi-letter token is split into one cell per letter. Blank lines are
// skipped. A multi-letter cell on a spaced line is malformed.
func Parse(text string) (model.Grid, error) {
	var g model.Grid
	for i, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) == 1 {
			fields = strings.Split(fields[0], "")
		}
		row := make([]rune, 0, len(fields))
		for _, f := range fields {
			r := []rune(f)
			if len(r) != 1 {
				return nil, fmt.Errorf("%w: line %d cell %q has %d letters",
					model.ErrConfigurationMalformed, i+1, f, len(r))
			}
			row = append(row, unicode.ToUpper(r[0]))
		}
		g = append(g, row)
	}
	return g, nil
}

// Recognize classifies a location. It never fails; unsupported
// locations, including the reserved six-element "L" shape, are reported
// as ShapeUnrecognized.
func Recognize(loc model.Location) model.Shape {
	switch len(loc) {
	case 2:
		return model.ShapeSingle
	case 4:
		r1, c1, r2, c2 := loc[0], loc[1], loc[2], loc[3]
		switch {
		case r1 == r2:
			return model.ShapeHorizontal
		case c1 == c2:
			return model.ShapeVertical
		case r1 == r2+c1-c2:
			return model.ShapeDiagonal
		}
		return model.ShapeUnrecognized
	case 6:
		// reserved for L-shaped words
		return model.ShapeUnrecognized
	default:
		return model.ShapeUnrecognized
	}
}

// Cells enumerates the positions covered by a location of the given shape,
// from the first coordinate towards the second.
func Cells(loc model.Location, shape model.Shape) ([]model.Position, error) {
	switch shape {
	case model.ShapeSingle:
		return []model.Position{loc.Start()}, nil
	case model.ShapeHorizontal, model.ShapeVertical, model.ShapeDiagonal:
	default:
		return nil, fmt.Errorf("%w: %v", model.ErrUnrecognizedShape, loc)
	}

	start, end := loc.Start(), loc.End()
	if start.Row > end.Row || start.Col > end.Col {
		return nil, fmt.Errorf("%w: %v", model.ErrReversedLocation, loc)
	}

	var cells []model.Position
	switch shape {
	case model.ShapeHorizontal:
		for c := start.Col; c <= end.Col; c++ {
			cells = append(cells, model.Position{Row: start.Row, Col: c})
		}
	case model.ShapeVertical:
		for r := start.Row; r <= end.Row; r++ {
			cells = append(cells, model.Position{Row: r, Col: start.Col})
		}
	case model.ShapeDiagonal:
		diff := end.Row - start.Row
		for k := 0; k <= diff; k++ {
			cells = append(cells, model.Position{Row: start.Row + k, Col: start.Col + k})
		}
	}
	return cells, nil
}

// Word concatenates the letters under a location
func Word(g model.Grid, loc model.Location, shape model.Shape) (string, error) {
	cells, err := Cells(loc, shape)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, pos := range cells {
		if !g.Contains(pos) {
			return "", fmt.Errorf("%w: %v (row %d, col %d)", model.ErrLocationOutOfBounds, loc, pos.Row, pos.Col)
		}
		sb.WriteRune(g.Get(pos))
	}
	return sb.String(), nil
}
