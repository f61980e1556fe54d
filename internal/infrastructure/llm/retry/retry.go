package retry

import (
	"context"
	"errors"
	"time"

	"newsletter-agent/internal/application/port/output"
)

var _ output.LLMPort = (*llmWrapper)(nil)

// Config controls error-only retries around a chat call.
type Config struct {
	MaxAttempts int
	Backoff     time.Duration
	ShouldRetry func(error) bool
	Logger      output.LoggerPort
}

// WrapLLM returns llm unchanged when fewer than two attempts are configured.
func WrapLLM(llm output.LLMPort, cfg Config) output.LLMPort {
	if llm == nil || normalizedAttempts(cfg.MaxAttempts) == 1 {
		return llm
	}
	return &llmWrapper{
		next: llm,
		cfg:  cfg,
	}
}

type llmWrapper struct {
	next output.LLMPort
	cfg  Config
}

func (w *llmWrapper) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	attempts := normalizedAttempts(w.cfg.MaxAttempts)
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		resp, err := w.next.Chat(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if attempt == attempts || !shouldRetry(ctx, w.cfg, err) {
			break
		}
		if w.cfg.Logger != nil {
			w.cfg.Logger.Warn("Chat failed, retrying", "attempt", attempt, "maxAttempts", attempts, "error", err)
		}
		if err := sleep(ctx, w.cfg.Backoff); err != nil {
			return nil, lastErr
		}
	}
	return nil, lastErr
}

func normalizedAttempts(maxAttempts int) int {
	if maxAttempts < 1 {
		return 1
	}
	return maxAttempts
}

func shouldRetry(ctx context.Context, cfg Config, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	if cfg.ShouldRetry == nil {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	return cfg.ShouldRetry(err)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
