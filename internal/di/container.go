package di

import (
	"fmt"
	"io"

	"newsletter-agent/internal/application/port/input"
	"newsletter-agent/internal/application/port/output"
	"newsletter-agent/internal/infrastructure/llm/ollama"
	"newsletter-agent/internal/infrastructure/llm/openaicompat"
	"newsletter-agent/internal/infrastructure/llm/retry"
	"newsletter-agent/internal/infrastructure/logger"
	"newsletter-agent/internal/infrastructure/news/synthetic"
	"newsletter-agent/internal/infrastructure/userinteraction"
	"newsletter-agent/internal/usecase/editorial"
	"newsletter-agent/internal/usecase/pipeline"
	"newsletter-agent/internal/usecase/reporter"
)

type Container struct {
	LLM       output.LLMPort
	News      output.NewsSourcePort
	Logger    output.LoggerPort
	Presenter output.PresenterPort
	Pipeline  input.PipelineRunner
}

// Options carries collaborators that override what Config would build.
type Options struct {
	Logger output.LoggerPort
	LLM    output.LLMPort
	Output io.Writer
	Picker synthetic.Picker
	// LogName names the log file when Config.LogDir is set.
	LogName string
}

func NewContainer(cfg Config, opts Options) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log := opts.Logger
	if log == nil {
		adapter, err := logger.NewLoggerAdapter(logger.Config{
			Level: cfg.LogLevel,
			Dir:   cfg.LogDir,
			Name:  opts.LogName,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		log = adapter
	}

	llm := opts.LLM
	if llm == nil {
		var err error
		llm, err = newLLM(cfg, log)
		if err != nil {
			log.Close()
			return nil, fmt.Errorf("failed to create llm: %w", err)
		}
	}
	llm = retry.WrapLLM(llm, retry.Config{
		MaxAttempts: cfg.LLMMaxAttempts,
		Backoff:     cfg.LLMRetryDelay,
		Logger:      log,
	})

	news := synthetic.New(synthetic.Config{
		Count:  cfg.NewsCount,
		Seed:   cfg.NewsSeed,
		Picker: opts.Picker,
	})

	ed, err := editorial.New(llm, log, editorial.Config{
		Model:       cfg.LLMModel,
		Prompt:      cfg.EditorialPrompt,
		Temperature: cfg.LLMTemperature,
		Timeout:     cfg.LLMTimeout,
	})
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to create editorial stage: %w", err)
	}

	presenter := userinteraction.NewConsolePresenter(opts.Output)

	return &Container{
		LLM:       llm,
		News:      news,
		Logger:    log,
		Presenter: presenter,
		Pipeline:  pipeline.New(reporter.New(news, log), ed, presenter, log),
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func newLLM(cfg Config, log output.LoggerPort) (output.LLMPort, error) {
	switch cfg.LLMProvider {
	case ProviderOllama:
		return ollama.New(ollama.Config{
			Model:     cfg.LLMModel,
			ServerURL: cfg.LLMBaseURL,
			Logger:    log,
		})
	case ProviderOpenAI, ProviderOpenRouter:
		return openaicompat.New(openaicompat.Config{
			APIKey:  cfg.LLMAPIKey,
			Model:   cfg.LLMModel,
			BaseURL: cfg.LLMBaseURL,
			LogHTTP: cfg.LLMLogHTTP,
			Logger:  log,
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.LLMProvider)
	}
}
