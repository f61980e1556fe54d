package input

import (
	"context"

	"newsletter-agent/internal/domain/entity"
)

type RunResult struct {
	Topic   entity.Topic
	RawNews entity.RawNewsText
	Intro   entity.NewsletterIntro
}

type PipelineRunner interface {
	Run(ctx context.Context, topic entity.Topic) (*RunResult, error)
}
