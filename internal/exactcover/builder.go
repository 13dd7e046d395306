// Package exactcover reduces "place piece P at (r, c)" to exact-cover
// matrix rows: a row is legal exactly when the shape fits the board, and
// its columns are the cells it covers plus its piece-identity column.
package exactcover

import (
	"dlx.dev/pentomino/internal/board"
	"dlx.dev/pentomino/internal/catalog"
	"dlx.dev/pentomino/internal/domain"
)

// Row is one emitted exact-cover row: the column indices it covers, and
// the placement payload the solver reports back on success.
type Row struct {
	Columns   []int
	Placement domain.Placement
}

// Build walks every (orientation, anchor) pair in catalog/board-anchor
// order and emits one row per legal placement. The outer loop over
// orientation handles and the inner row-major loop over anchors fixes
// the insertion order, which in turn fixes Algorithm X's tie-breaking.
func Build(c *catalog.Catalog, b board.Board) []Row {
	total := b.TotalCells()
	var rows []Row
	for v := 0; v < c.OrientationCount(); v++ {
		s := c.Shape(v)
		id := c.Identity(v)
		letter := c.Letter(id)
		for r := 0; r < b.H; r++ {
			for col := 0; col < b.W; col++ {
				if !b.CanPlace(s, r, col) {
					continue
				}
				columns := make([]int, 0, 6)
				for i, row := range s.Rows {
					for j := 0; j < 5; j++ {
						if row&(1<<uint(j)) != 0 {
							columns = append(columns, b.CellIndex(r+i, col+j))
						}
					}
				}
				columns = append(columns, total+id)
				rows = append(rows, Row{
					Columns: columns,
					Placement: domain.Placement{
						Orientation: v,
						Letter:      letter,
						Row:         r,
						Col:         col,
					},
				})
			}
		}
	}
	return rows
}
