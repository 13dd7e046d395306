// Package shape implements the bit-grid piece model: representing a
// pentomino as a short sequence of 5-bit row masks, and the rotate and
// reflect transforms used to enumerate its orientations.
package shape

import "dlx.dev/pentomino/internal/domain"

// Rotate90CW rotates a shape 90 degrees clockwise and re-normalizes the
// result to top-left anchoring. An occupancy at (r, c) in an H x W shape
// maps to (c, H-1-r) in the resulting W x H shape.
func Rotate90CW(s domain.Shape) domain.Shape {
	h := s.Height()
	w := s.Width()
	rows := make([]uint8, w)
	for r := 0; r < h; r++ {
		row := s.Rows[r]
		for c := 0; c < 5; c++ {
			if row&(1<<uint(c)) == 0 {
				continue
			}
			nr := c
			nc := h - 1 - r
			rows[nr] |= 1 << uint(nc)
		}
	}
	return normalize(rows)
}

// ReflectHorizontal mirrors a shape across its vertical axis and
// re-normalizes the result. An occupancy at (r, c) maps to (r, cmax-c)
// where cmax is the shape's rightmost occupied column.
func ReflectHorizontal(s domain.Shape) domain.Shape {
	cmax := s.Width() - 1
	rows := make([]uint8, s.Height())
	for r, row := range s.Rows {
		var out uint8
		for c := 0; c <= cmax; c++ {
			if row&(1<<uint(c)) != 0 {
				out |= 1 << uint(cmax-c)
			}
		}
		rows[r] = out
	}
	return normalize(rows)
}

// normalize trims leading and trailing all-zero rows and right-shifts
// every row uniformly so that at least one row has bit 0 set. This is
// what makes orientation equality a plain row-mask comparison.
func normalize(rows []uint8) domain.Shape {
	start, end := 0, len(rows)
	for start < end && rows[start] == 0 {
		start++
	}
	for end > start && rows[end-1] == 0 {
		end--
	}
	trimmed := append([]uint8(nil), rows[start:end]...)

	var orAll uint8
	for _, r := range trimmed {
		orAll |= r
	}
	shift := 0
	for orAll != 0 && orAll&1 == 0 {
		orAll >>= 1
		shift++
	}
	for i, r := range trimmed {
		trimmed[i] = r >> uint(shift)
	}
	return domain.Shape{Rows: trimmed}
}

// Orientations returns every distinct shape reachable from the canonical
// shape by the closure of {Rotate90CW, ReflectHorizontal}, including the
// canonical shape itself (normalized).
func Orientations(canonical domain.Shape) []domain.Shape {
	seed := normalize(append([]uint8(nil), canonical.Rows...))
	seen := []domain.Shape{seed}

	contains := func(s domain.Shape) bool {
		for _, o := range seen {
			if o.Equal(s) {
				return true
			}
		}
		return false
	}

	frontier := []domain.Shape{seed}
	for len(frontier) > 0 {
		var next []domain.Shape
		for _, s := range frontier {
			for _, t := range []domain.Shape{Rotate90CW(s), ReflectHorizontal(s)} {
				if !contains(t) {
					seen = append(seen, t)
					next = append(next, t)
				}
			}
		}
		frontier = next
	}
	return seen
}
