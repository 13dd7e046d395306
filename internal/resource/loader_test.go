package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dlx.dev/pentomino/internal/domain"
)

func TestLoadAllTwelveLetters(t *testing.T) {
	shapes, err := Load()
	require.NoError(t, err)
	require.Len(t, shapes, 12)

	for _, l := range domain.AllLetters {
		s, ok := shapes[l]
		require.True(t, ok, "missing shape for %c", l)
		assert.Equal(t, 5, s.Popcount(), "shape %c must have popcount 5", l)
		assert.NotZero(t, s.Rows[0], "shape %c top row must be non-zero", l)
	}
}

func TestDecodeTerminatesOnZero(t *testing.T) {
	s, err := decode([]byte{1, 1, 1, 3, 0})
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 1, 1, 3}, s.Rows)
}

func TestDecodeRejectsDisconnected(t *testing.T) {
	// five single cells in a zig-zag, each only diagonally adjacent to the next
	_, err := decode([]byte{1, 2, 1, 2, 1})
	assert.Error(t, err)
}

func TestDecodeRejectsWrongPopcount(t *testing.T) {
	_, err := decode([]byte{1, 1, 1, 1})
	assert.Error(t, err)
}
