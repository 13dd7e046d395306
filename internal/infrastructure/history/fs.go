// Package history persists solve runs as indented JSON files, bucketed
// into a subdirectory per piece count.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dlx.dev/pentomino/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func bucketDir(pieceCount int) string {
	return fmt.Sprintf("p%d", pieceCount)
}

func (s *FS) pathFor(id string, pieceCount int) string {
	return filepath.Join(s.dir, bucketDir(pieceCount), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, r *domain.Run) error {
	if r == nil || r.ID == "" {
		return errors.New("invalid run: missing ID")
	}
	target := s.pathFor(r.ID, len(r.Letters))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Run, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, err
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(s.dir, e.Name(), strings.TrimSpace(id)+".json")
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var out domain.Run
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

func (s *FS) List(ctx context.Context) ([]domain.RunMeta, error) {
	var out []domain.RunMeta
	buckets, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	for _, bucket := range buckets {
		if !bucket.IsDir() {
			continue
		}
		files, err := os.ReadDir(filepath.Join(s.dir, bucket.Name()))
		if err != nil {
			continue
		}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, bucket.Name(), f.Name()))
			if err != nil {
				continue
			}
			var run domain.Run
			if err := json.Unmarshal(data, &run); err != nil || run.ID == "" {
				continue
			}
			out = append(out, domain.RunMeta{
				ID:        run.ID,
				PieceCnt:  len(run.Letters),
				Found:     run.Found,
				CreatedAt: run.CreatedAt,
			})
		}
	}
	return out, nil
}
