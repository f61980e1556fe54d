package pipeline

import (
	"context"
	"time"

	"newsletter-agent/internal/application/port/input"
	"newsletter-agent/internal/application/port/output"
	"newsletter-agent/internal/domain/entity"
)

var _ input.PipelineRunner = (*UseCase)(nil)

// UseCase runs the reporter and then the editorial stage for one topic.
type UseCase struct {
	reporter  input.Stage
	editorial input.Stage
	presenter output.PresenterPort
	logger    output.LoggerPort
}

func New(
	reporter input.Stage,
	editorial input.Stage,
	presenter output.PresenterPort,
	logger output.LoggerPort,
) *UseCase {
	if presenter == nil {
		presenter = nopPresenter{}
	}
	return &UseCase{
		reporter:  reporter,
		editorial: editorial,
		presenter: presenter,
		logger:    logger,
	}
}

func (uc *UseCase) Run(ctx context.Context, topic entity.Topic) (*input.RunResult, error) {
	if err := topic.Validate(); err != nil {
		return nil, err
	}

	log := uc.logger.WithField("topic", topic.String())
	start := time.Now()
	uc.presenter.ShowTopic(ctx, topic)

	raw, err := uc.reporter.Transform(ctx, string(topic))
	if err != nil {
		log.Error("Reporter stage failed", "error", err)
		return nil, err
	}
	uc.presenter.ShowRawNews(ctx, entity.RawNewsText(raw))

	intro, err := uc.editorial.Transform(ctx, raw)
	if err != nil {
		log.Error("Editorial stage failed", "error", err)
		return nil, err
	}
	uc.presenter.ShowNewsletter(ctx, entity.NewsletterIntro(intro))

	log.Info("Pipeline completed", "duration", time.Since(start))

	return &input.RunResult{
		Topic:   topic,
		RawNews: entity.RawNewsText(raw),
		Intro:   entity.NewsletterIntro(intro),
	}, nil
}

type nopPresenter struct{}

func (nopPresenter) ShowTopic(context.Context, entity.Topic)                {}
func (nopPresenter) ShowRawNews(context.Context, entity.RawNewsText)        {}
func (nopPresenter) ShowNewsletter(context.Context, entity.NewsletterIntro) {}
func (nopPresenter) ShowError(context.Context, error)                       {}
