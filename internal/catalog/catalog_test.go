package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dlx.dev/pentomino/internal/domain"
	"dlx.dev/pentomino/internal/resource"
)

func TestBuildDefaultsToAllTwelve(t *testing.T) {
	shapes, err := resource.Load()
	require.NoError(t, err)

	c := Build(nil, shapes)
	assert.Equal(t, 12, c.PieceCount())
	assert.ElementsMatch(t, domain.AllLetters, c.Letters())
}

func TestBuildDeduplicatesAndSorts(t *testing.T) {
	shapes, err := resource.Load()
	require.NoError(t, err)

	c := Build([]domain.Letter{domain.Y, domain.L, domain.Y}, shapes)
	require.Equal(t, 2, c.PieceCount())
	assert.Equal(t, []domain.Letter{domain.L, domain.Y}, c.Letters())
}

func TestIdentityMatchesOwningLetter(t *testing.T) {
	shapes, err := resource.Load()
	require.NoError(t, err)

	c := Build([]domain.Letter{domain.X, domain.I}, shapes)
	for v := 0; v < c.OrientationCount(); v++ {
		id := c.Identity(v)
		letter := c.Letter(id)
		assert.Contains(t, []domain.Letter{domain.X, domain.I}, letter)
	}
	// X has 1 orientation, I has 2: three total.
	assert.Equal(t, 3, c.OrientationCount())
}
