// Package catalog turns a selection of pentomino letters into the set of
// distinct orientations each one admits, with a stable identity index per
// letter and an orientation handle per generated shape.
package catalog

import (
	"sort"

	"dlx.dev/pentomino/internal/domain"
	"dlx.dev/pentomino/internal/shape"
)

// Catalog maps orientation handles back to their shape and owning piece.
type Catalog struct {
	letters      []domain.Letter // alphabetical, one entry per selected piece
	orientations []domain.Shape  // indexed by handle
	identity     []int           // handle -> index into letters
}

// Build constructs a catalog for the given letter selection, loading
// canonical shapes from shapes and generating every distinct orientation
// via the rotate/reflect closure. An empty selection defaults to all
// twelve letters.
func Build(selection []domain.Letter, shapes map[domain.Letter]domain.Shape) *Catalog {
	letters := normalizeSelection(selection)

	c := &Catalog{letters: letters}
	for id, l := range letters {
		canonical, ok := shapes[l]
		if !ok {
			continue
		}
		for _, o := range shape.Orientations(canonical) {
			c.orientations = append(c.orientations, o)
			c.identity = append(c.identity, id)
		}
	}
	return c
}

// normalizeSelection deduplicates and alphabetically sorts the requested
// letters, defaulting to every letter when the selection is empty.
func normalizeSelection(selection []domain.Letter) []domain.Letter {
	if len(selection) == 0 {
		return append([]domain.Letter(nil), domain.AllLetters...)
	}
	seen := make(map[domain.Letter]bool, len(selection))
	var out []domain.Letter
	for _, l := range selection {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PieceCount reports P, the number of selected pieces.
func (c *Catalog) PieceCount() int { return len(c.letters) }

// OrientationCount reports V, the total number of orientations across all
// selected letters.
func (c *Catalog) OrientationCount() int { return len(c.orientations) }

// Shape returns the row masks for orientation handle v.
func (c *Catalog) Shape(v int) domain.Shape { return c.orientations[v] }

// Identity returns the piece identity index id(l) for orientation handle v.
func (c *Catalog) Identity(v int) int { return c.identity[v] }

// Letter returns the letter for piece identity index id.
func (c *Catalog) Letter(id int) domain.Letter { return c.letters[id] }

// Letters returns the selected letters in the catalog's alphabetical
// identity order.
func (c *Catalog) Letters() []domain.Letter { return c.letters }
