// Package ports declares the interfaces the usecase layer depends on,
// so concrete solver, validator and history implementations can be
// swapped without touching the wiring in cmd/.
package ports

import (
	"context"

	"dlx.dev/pentomino/internal/domain"
)

// Result is what a solve attempt produces: whether a tiling was found,
// the rendered grid if so, and performance stats either way.
type Result struct {
	Found bool
	Grid  domain.Grid
	Board domain.Board
	Stats domain.Stats
}

// Solver reduces a piece selection to exact cover and searches for a
// tiling of the derived board.
type Solver interface {
	Solve(ctx context.Context, selection []domain.Letter) (Result, error)
}

// Validator performs structural checks: a requested letter selection
// before solving, and a rendered grid after.
type Validator interface {
	ValidateSelection(ctx context.Context, selection []domain.Letter) (ok bool, problems []string, err error)
	ValidateGrid(ctx context.Context, selection []domain.Letter, g domain.Grid) (ok bool, problems []string, err error)
}

// History persists and retrieves solve runs as JSON.
type History interface {
	Save(ctx context.Context, r *domain.Run) error
	Load(ctx context.Context, id string) (*domain.Run, error)
	List(ctx context.Context) ([]domain.RunMeta, error)
}
