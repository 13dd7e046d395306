package history

import (
	"context"

	"dlx.dev/pentomino/internal/domain"
)

// Noop is a ports.History that does nothing; used when neither
// --history-dir nor the config file's historyDir is set, so persistence
// stays genuinely opt-in.
type Noop struct{}

func (Noop) Save(ctx context.Context, r *domain.Run) error { return nil }

func (Noop) Load(ctx context.Context, id string) (*domain.Run, error) {
	return nil, nil
}

func (Noop) List(ctx context.Context) ([]domain.RunMeta, error) { return nil, nil }
