// Package solver wires the piece catalog, board and exact-cover builder
// into the Dancing Links matrix and reports the chosen placements back
// as a rendered grid.
package solver

import (
	"context"
	"time"

	"dlx.dev/pentomino/internal/board"
	"dlx.dev/pentomino/internal/catalog"
	"dlx.dev/pentomino/internal/dlx"
	"dlx.dev/pentomino/internal/domain"
	"dlx.dev/pentomino/internal/exactcover"
	"dlx.dev/pentomino/internal/ports"
	"dlx.dev/pentomino/internal/render"
	"dlx.dev/pentomino/internal/resource"
)

// DLXSolver implements Algorithm X / Dancing Links for pentomino
// packing. Exact-cover mapping: 5H+P columns (H = piece count, P = piece
// count), one row per legal (orientation, anchor) placement.
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

// Solve builds the board, catalog and exact-cover matrix for selection
// and searches for the first tiling.
func (s *DLXSolver) Solve(ctx context.Context, selection []domain.Letter) (ports.Result, error) {
	start := time.Now()

	shapes, err := resource.Load()
	if err != nil {
		return ports.Result{}, err
	}

	cat := catalog.Build(selection, shapes)
	b := board.New(cat.PieceCount())

	m := dlx.New(b.TotalCells() + cat.PieceCount())
	for _, row := range exactcover.Build(cat, b) {
		m.AddRow(row.Columns, row.Placement)
	}
	if m.ColumnCount() != b.TotalCells()+cat.PieceCount() {
		panic("solver: matrix column count drifted from board cells + piece identities")
	}

	rowIDs, st, ok := m.Solve(ctx)
	result := ports.Result{
		Board: domain.Board{H: b.H, W: b.W},
		Stats: domain.Stats{Nodes: st.Nodes, Duration: time.Since(start).Nanoseconds()},
	}
	if !ok {
		return result, nil
	}

	placements := make([]domain.Placement, 0, len(rowIDs))
	for _, id := range rowIDs {
		placements = append(placements, m.Payload(id).(domain.Placement))
	}

	result.Found = true
	result.Grid = render.Grid(b, cat, placements)
	return result, nil
}
