package output

import (
	"context"

	"newsletter-agent/internal/domain/entity"
)

type NewsSourcePort interface {
	Name() string
	Fetch(ctx context.Context, topic entity.Topic) (entity.NewsBatch, error)
}
