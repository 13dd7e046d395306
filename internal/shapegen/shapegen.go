// Package shapegen is the write side of the resource loader: it encodes
// the twelve canonical pentomino shapes as byte sequences and writes
// them to disk, so the embedded resource data in internal/resource has
// a traceable, regenerable source rather than being an opaque committed
// binary blob.
package shapegen

import (
	"fmt"
	"os"
	"path/filepath"

	"dlx.dev/pentomino/internal/domain"
)

// canonical holds one hand-verified representative shape per letter,
// each satisfying the popcount-5/connectivity/top-left invariants the
// resource loader checks on the way back in.
var canonical = map[domain.Letter][]byte{
	domain.F: {6, 3, 2},
	domain.I: {1, 1, 1, 1, 1},
	domain.L: {1, 1, 1, 3},
	domain.N: {2, 2, 3, 1},
	domain.P: {3, 3, 1},
	domain.T: {7, 2, 2},
	domain.U: {5, 7},
	domain.V: {1, 1, 7},
	domain.W: {1, 3, 6},
	domain.X: {2, 7, 2},
	domain.Y: {2, 3, 2, 2},
	domain.Z: {3, 2, 6},
}

// Generate writes one "piece_<letter>.bin" file per letter into dir,
// zero-padded to 5 bytes, overwriting any existing files. It returns
// the list of files written, in alphabetical order, for the caller to
// report.
func Generate(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("shapegen: create %s: %w", dir, err)
	}

	var written []string
	for _, l := range domain.AllLetters {
		rows, ok := canonical[l]
		if !ok {
			return nil, fmt.Errorf("shapegen: no canonical shape for %c", l)
		}
		if len(rows) > 5 {
			return nil, fmt.Errorf("shapegen: shape for %c has %d rows, max 5", l, len(rows))
		}
		buf := make([]byte, 5)
		copy(buf, rows)

		path := filepath.Join(dir, fmt.Sprintf("piece_%c.bin", l))
		if err := os.WriteFile(path, buf, 0o644); err != nil {
			return nil, fmt.Errorf("shapegen: write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
