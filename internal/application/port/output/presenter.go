package output

import (
	"context"

	"newsletter-agent/internal/domain/entity"
)

// PresenterPort receives the pipeline's intermediate and final artifacts.
type PresenterPort interface {
	ShowTopic(ctx context.Context, topic entity.Topic)
	ShowRawNews(ctx context.Context, raw entity.RawNewsText)
	ShowNewsletter(ctx context.Context, intro entity.NewsletterIntro)
	ShowError(ctx context.Context, err error)
}
