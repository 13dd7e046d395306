// Package resource embeds and decodes the twelve canonical pentomino
// shape files. Each file's bytes, in order, are that letter's canonical
// row masks; a zero byte terminates the shape early.
package resource

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"dlx.dev/pentomino/internal/domain"
)

//go:embed shapes/*.bin
var shapesFS embed.FS

const shapesDir = "shapes"

// Load reads every embedded shape file, in alphabetical file-name order,
// and returns the canonical shape for each of the twelve letters keyed
// by letter. A shape whose
// bytes do not describe a connected, popcount-5 piece is a fatal error.
func Load() (map[domain.Letter]domain.Shape, error) {
	entries, err := fs.ReadDir(shapesFS, shapesDir)
	if err != nil {
		return nil, fmt.Errorf("resource: read shapes dir: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	out := make(map[domain.Letter]domain.Shape, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		letter := domain.Letter(name[len(name)-len(".bin")-1])
		data, err := fs.ReadFile(shapesFS, shapesDir+"/"+name)
		if err != nil {
			return nil, fmt.Errorf("resource: read %s: %w", name, err)
		}
		s, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("resource: decode %s (%c): %w", name, letter, err)
		}
		out[letter] = s
	}
	if len(out) != len(domain.AllLetters) {
		return nil, fmt.Errorf("resource: expected %d piece shapes, found %d", len(domain.AllLetters), len(out))
	}
	return out, nil
}

// decode turns raw resource bytes into a Shape, stopping at the first
// zero byte or after 5 bytes, whichever comes first, then validates the
// popcount and connectivity invariants.
func decode(data []byte) (domain.Shape, error) {
	var rows []uint8
	for i := 0; i < len(data) && i < 5; i++ {
		if data[i] == 0 {
			break
		}
		rows = append(rows, data[i])
	}
	s := domain.Shape{Rows: rows}
	if len(rows) == 0 {
		return domain.Shape{}, fmt.Errorf("empty shape")
	}
	if rows[0] == 0 {
		return domain.Shape{}, fmt.Errorf("top row must be non-zero")
	}
	if s.Popcount() != 5 {
		return domain.Shape{}, fmt.Errorf("popcount %d, want 5", s.Popcount())
	}
	if !hasLeftmostColumn(rows) {
		return domain.Shape{}, fmt.Errorf("leftmost column is empty")
	}
	if !connected(rows) {
		return domain.Shape{}, fmt.Errorf("cells are not connected")
	}
	return s, nil
}

func hasLeftmostColumn(rows []uint8) bool {
	for _, r := range rows {
		if r&1 != 0 {
			return true
		}
	}
	return false
}

// connected runs a flood fill over the occupied cells and checks every
// occupied cell was reached.
func connected(rows []uint8) bool {
	type cell struct{ r, c int }
	var cells []cell
	occupied := map[cell]bool{}
	for r, row := range rows {
		for c := 0; c < 5; c++ {
			if row&(1<<uint(c)) != 0 {
				cells = append(cells, cell{r, c})
				occupied[cell{r, c}] = true
			}
		}
	}
	if len(cells) == 0 {
		return false
	}
	visited := map[cell]bool{cells[0]: true}
	stack := []cell{cells[0]}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range []cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			n := cell{cur.r + d.r, cur.c + d.c}
			if occupied[n] && !visited[n] {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return len(visited) == len(cells)
}
