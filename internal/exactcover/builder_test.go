package exactcover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dlx.dev/pentomino/internal/board"
	"dlx.dev/pentomino/internal/catalog"
	"dlx.dev/pentomino/internal/domain"
	"dlx.dev/pentomino/internal/resource"
)

func TestEveryRowHasSixColumns(t *testing.T) {
	shapes, err := resource.Load()
	require.NoError(t, err)

	c := catalog.Build([]domain.Letter{domain.L, domain.Y}, shapes)
	b := board.New(2)
	rows := Build(c, b)
	require.NotEmpty(t, rows)

	total := b.TotalCells()
	piece := c.PieceCount()
	for _, row := range rows {
		require.Len(t, row.Columns, 6)
		cellCols := row.Columns[:5]
		idCol := row.Columns[5]
		seen := map[int]bool{}
		for _, col := range cellCols {
			assert.False(t, seen[col], "duplicate column in a single row")
			seen[col] = true
			assert.GreaterOrEqual(t, col, 0)
			assert.Less(t, col, total)
		}
		assert.GreaterOrEqual(t, idCol, total)
		assert.Less(t, idCol, total+piece)
	}
}

func TestNoLegalPlacementForImpossiblePiece(t *testing.T) {
	shapes, err := resource.Load()
	require.NoError(t, err)

	c := catalog.Build([]domain.Letter{domain.X}, shapes)
	b := board.New(1) // X is a plus sign, cannot fit on a 1x5 board
	rows := Build(c, b)
	assert.Empty(t, rows)
}
