package reporter

import (
	"context"
	"fmt"

	"newsletter-agent/internal/application/port/input"
	"newsletter-agent/internal/application/port/output"
	"newsletter-agent/internal/domain/entity"
)

var _ input.Stage = (*UseCase)(nil)

type UseCase struct {
	news   output.NewsSourcePort
	logger output.LoggerPort
}

func New(news output.NewsSourcePort, logger output.LoggerPort) *UseCase {
	return &UseCase{
		news:   news,
		logger: logger.WithField("stage", "reporter"),
	}
}

// Report fetches a batch for topic and renders it one item per line.
func (uc *UseCase) Report(ctx context.Context, topic entity.Topic) (entity.RawNewsText, error) {
	if err := topic.Validate(); err != nil {
		return "", err
	}

	batch, err := uc.news.Fetch(ctx, topic)
	if err != nil {
		return "", fmt.Errorf("fetch news from %s: %w", uc.news.Name(), err)
	}

	uc.logger.Info("Fetched news",
		"topic", topic.String(),
		"source", uc.news.Name(),
		"items", batch.Lines(),
	)

	return batch.Render(), nil
}

func (uc *UseCase) Transform(ctx context.Context, in string) (string, error) {
	raw, err := uc.Report(ctx, entity.Topic(in))
	return string(raw), err
}
