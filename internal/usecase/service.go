// Package usecase wires the solver, validator and history ports behind
// a single service the CLI entry point can call.
package usecase

import (
	"context"
	"errors"

	"dlx.dev/pentomino/internal/domain"
	"dlx.dev/pentomino/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	History   ports.History
}

func NewService(s ports.Solver, v ports.Validator, h ports.History) *Service {
	return &Service{Solver: s, Validator: v, History: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, selection []domain.Letter) (ports.Result, error) {
	if u.Solver == nil {
		return ports.Result{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, selection)
}

func (u *Service) ValidateSelection(ctx context.Context, selection []domain.Letter) (bool, []string, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.ValidateSelection(ctx, selection)
}

func (u *Service) ValidateGrid(ctx context.Context, selection []domain.Letter, g domain.Grid) (bool, []string, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.ValidateGrid(ctx, selection, g)
}

// Persistence
func (u *Service) SaveRun(ctx context.Context, r *domain.Run) error {
	if u.History == nil {
		return errNotConfigured
	}
	return u.History.Save(ctx, r)
}
func (u *Service) LoadRun(ctx context.Context, id string) (*domain.Run, error) {
	if u.History == nil {
		return nil, errNotConfigured
	}
	return u.History.Load(ctx, id)
}
func (u *Service) ListRuns(ctx context.Context) ([]domain.RunMeta, error) {
	if u.History == nil {
		return nil, errNotConfigured
	}
	return u.History.List(ctx)
}
