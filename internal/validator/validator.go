// Package validator performs the fast structural checks around a solve:
// is the requested letter selection sound, and does a rendered grid
// actually cover the board as a solved tiling should.
package validator

import (
	"context"
	"fmt"

	"dlx.dev/pentomino/internal/domain"
)

// FastValidator implements ports.Validator without running a solve.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// ValidateSelection checks that every requested letter is one of the
// twelve known pentomino letters and that the (possibly defaulted)
// selection is non-empty.
func (v *FastValidator) ValidateSelection(ctx context.Context, selection []domain.Letter) (bool, []string, error) {
	known := make(map[domain.Letter]bool, len(domain.AllLetters))
	for _, l := range domain.AllLetters {
		known[l] = true
	}

	var problems []string
	for _, l := range selection {
		if !known[l] {
			problems = append(problems, fmt.Sprintf("unknown letter %q", l.String()))
		}
	}
	if len(selection) == 0 {
		problems = append(problems, "empty selection")
	}
	return len(problems) == 0, problems, nil
}

// ValidateGrid checks a rendered grid for pentomino-coverage conflicts:
// every cell must hold a letter from selection, every selected letter
// must cover exactly 5 cells, and no cell may be blank.
func (v *FastValidator) ValidateGrid(ctx context.Context, selection []domain.Letter, g domain.Grid) (bool, []string, error) {
	allowed := make(map[domain.Letter]bool, len(selection))
	for _, l := range selection {
		allowed[l] = true
	}
	counts := make(map[domain.Letter]int, len(selection))

	var problems []string
	for r, row := range g {
		for c, cell := range row {
			if cell == 0 {
				problems = append(problems, fmt.Sprintf("blank cell at (%d,%d)", r, c))
				continue
			}
			if !allowed[cell] {
				problems = append(problems, fmt.Sprintf("unexpected letter %q at (%d,%d)", cell.String(), r, c))
				continue
			}
			counts[cell]++
		}
	}
	for _, l := range selection {
		if counts[l] != 5 {
			problems = append(problems, fmt.Sprintf("letter %q covers %d cells, want 5", l.String(), counts[l]))
		}
	}
	return len(problems) == 0, problems, nil
}
