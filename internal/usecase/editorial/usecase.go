package editorial

import (
	"context"
	"errors"
	"time"

	"newsletter-agent/internal/application/port/input"
	"newsletter-agent/internal/application/port/output"
	"newsletter-agent/internal/domain/entity"
	"newsletter-agent/internal/infrastructure/prompts"
)

var _ input.Stage = (*UseCase)(nil)

type Config struct {
	// Model is reported in errors and logs; the LLM adapter owns the actual selection.
	Model       string
	Prompt      string
	Temperature float32
	// Timeout bounds a single chat call; zero leaves only the caller's deadline.
	Timeout time.Duration
}

type UseCase struct {
	llm         output.LLMPort
	logger      output.LoggerPort
	prompt      *prompts.EditorialTemplate
	model       string
	temperature float32
	timeout     time.Duration
}

func New(llm output.LLMPort, logger output.LoggerPort, cfg Config) (*UseCase, error) {
	base := cfg.Prompt
	if base == "" {
		base = prompts.EditorialPrompt
	}

	tmpl, err := prompts.ParseEditorialTemplate(base)
	if err != nil {
		return nil, err
	}

	return &UseCase{
		llm:         llm,
		logger:      logger.WithField("stage", "editorial"),
		prompt:      tmpl,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}, nil
}

// Edit asks the model for a newsletter intro and returns its text unmodified.
// Every failure of the model call comes back as *entity.ExternalServiceError.
func (uc *UseCase) Edit(ctx context.Context, raw entity.RawNewsText) (entity.NewsletterIntro, error) {
	prompt, err := uc.prompt.Render(raw)
	if err != nil {
		return "", err
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	start := time.Now()
	uc.logger.Debug("Requesting newsletter intro", "model", uc.model, "promptLength", len(prompt))

	resp, err := uc.llm.Chat(ctx, output.ChatRequest{
		Messages:    []entity.Message{entity.UserMessage(prompt)},
		Temperature: uc.temperature,
	})
	if err == nil && resp == nil {
		err = errors.New("empty response")
	}
	if err != nil {
		uc.logger.Error("Chat failed", "model", uc.model, "error", err, "duration", time.Since(start))
		return "", entity.NewExternalServiceError(uc.model, err)
	}

	uc.logger.Info("Newsletter intro received",
		"model", uc.model,
		"length", len(resp.Message.Content),
		"duration", time.Since(start),
	)

	return entity.NewsletterIntro(resp.Message.Content), nil
}

func (uc *UseCase) Transform(ctx context.Context, in string) (string, error) {
	intro, err := uc.Edit(ctx, entity.RawNewsText(in))
	return string(intro), err
}
