// Package render maps a chosen set of exact-cover rows back to a labeled
// char grid.
package render

import (
	"fmt"

	"dlx.dev/pentomino/internal/board"
	"dlx.dev/pentomino/internal/catalog"
	"dlx.dev/pentomino/internal/domain"
)

// Grid allocates an H x W grid of blank (zero) cells and paints every chosen
// placement's letter into the cells its shape occupies. A placement
// whose shape would write outside the board is a fatal internal
// invariant breach (it indicates matrix corruption), so it panics
// instead of returning a partially-painted grid.
func Grid(b board.Board, c *catalog.Catalog, placements []domain.Placement) domain.Grid {
	grid := make(domain.Grid, b.H)
	for r := range grid {
		grid[r] = make([]domain.Letter, b.W)
	}

	for _, p := range placements {
		s := c.Shape(p.Orientation)
		for i, row := range s.Rows {
			for j := 0; j < 5; j++ {
				if row&(1<<uint(j)) == 0 {
					continue
				}
				rr, cc := p.Row+i, p.Col+j
				if rr < 0 || rr >= b.H || cc < 0 || cc >= b.W {
					panic(fmt.Sprintf("render: placement for %c writes out of bounds at (%d,%d)", p.Letter, rr, cc))
				}
				grid[rr][cc] = p.Letter
			}
		}
	}
	return grid
}
