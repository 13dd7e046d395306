package shapegen

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dlx.dev/pentomino/internal/resource"
)

func TestGenerateWritesTwelveFiveByteFiles(t *testing.T) {
	dir := t.TempDir()
	written, err := Generate(dir)
	require.NoError(t, err)
	assert.Len(t, written, 12)

	for _, path := range written {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.EqualValues(t, 5, info.Size())
	}
}

func TestGeneratedShapesMatchEmbeddedResource(t *testing.T) {
	dir := t.TempDir()
	_, err := Generate(dir)
	require.NoError(t, err)

	embedded, err := resource.Load()
	require.NoError(t, err)

	for letter, rows := range canonical {
		path := dir + "/piece_" + letter.String() + ".bin"
		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var trimmed []byte
		for _, b := range data {
			if b == 0 {
				break
			}
			trimmed = append(trimmed, b)
		}
		assert.Equal(t, rows, trimmed)
		assert.Equal(t, len(rows), embedded[letter].Height())
	}
}
