// Package board holds the rectangular cell map a solve runs against and
// the legality/indexing helpers the exact-cover builder needs.
package board

import (
	"fmt"

	"dlx.dev/pentomino/internal/domain"
)

// Board is a fully-active H x W rectangle.
type Board struct {
	H, W int
}

// New returns a board for the given height; width is always 5.
func New(h int) Board {
	return Board{H: h, W: 5}
}

// TotalCells returns the number of active cells, H*W.
func (b Board) TotalCells() int { return b.H * b.W }

// CanPlace reports whether every occupied cell of s, anchored at (r, c),
// lands inside the board.
func (b Board) CanPlace(s domain.Shape, r, c int) bool {
	for i, row := range s.Rows {
		for j := 0; j < 5; j++ {
			if row&(1<<uint(j)) == 0 {
				continue
			}
			rr, cc := r+i, c+j
			if rr < 0 || rr >= b.H || cc < 0 || cc >= b.W {
				return false
			}
		}
	}
	return true
}

// CellIndex returns the row-major ordinal of cell (r, c) among active
// cells. It panics on an out-of-range cell: every active cell on a fully
// active rectangle is always in range, so an out-of-range request
// indicates a programmer error in the caller.
func (b Board) CellIndex(r, c int) int {
	if r < 0 || r >= b.H || c < 0 || c >= b.W {
		panic(fmt.Sprintf("board: cell (%d,%d) out of range for %dx%d board", r, c, b.H, b.W))
	}
	return r*b.W + c
}
