package di

import (
	"fmt"
	"strings"
	"time"

	"newsletter-agent/internal/application/port/output"
	"newsletter-agent/internal/domain/entity"
	"newsletter-agent/internal/infrastructure/llm/ollama"
	"newsletter-agent/internal/infrastructure/llm/openaicompat"
)

const (
	ProviderOllama     = "ollama"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"

	DefaultTopic           = "AI Stock Trends"
	defaultPipelineTimeout = 5 * time.Minute
	defaultRetryBackoff    = time.Second
)

type Config struct {
	LLMProvider    string
	LLMModel       string
	LLMBaseURL     string
	LLMAPIKey      string
	LLMTemperature float32
	LLMTimeout     time.Duration
	LLMMaxAttempts int
	LLMRetryDelay  time.Duration
	LLMLogHTTP     bool

	NewsCount int
	NewsSeed  uint64

	EditorialPrompt string

	LogLevel string
	LogDir   string

	DefaultTopic    string
	PipelineTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		LLMProvider:     ProviderOllama,
		LLMModel:        ollama.DefaultModel,
		LLMBaseURL:      ollama.DefaultServerURL,
		LLMMaxAttempts:  1,
		LLMRetryDelay:   defaultRetryBackoff,
		NewsCount:       entity.DefaultNewsCount,
		LogLevel:        "info",
		DefaultTopic:    DefaultTopic,
		PipelineTimeout: defaultPipelineTimeout,
	}
}

// ConfigFromEnv reads the LLM_*, NEWS_*, LOG_* and pipeline keys over DefaultConfig.
func ConfigFromEnv(env output.ConfigPort) (Config, error) {
	cfg := DefaultConfig()
	var err error

	cfg.LLMProvider = strings.ToLower(env.GetWithDefault("LLM_PROVIDER", cfg.LLMProvider))
	cfg.LLMModel = env.GetWithDefault("LLM_MODEL", cfg.LLMModel)
	cfg.LLMBaseURL = env.GetWithDefault("LLM_BASE_URL", defaultBaseURL(cfg.LLMProvider))
	cfg.LLMAPIKey = env.Get("LLM_API_KEY")
	cfg.EditorialPrompt = env.Get("EDITORIAL_PROMPT")
	cfg.LogLevel = env.GetWithDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogDir = env.Get("LOG_DIR")
	cfg.DefaultTopic = env.GetWithDefault("DEFAULT_TOPIC", cfg.DefaultTopic)

	temperature, err := env.GetFloat("LLM_TEMPERATURE", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.LLMTemperature = float32(temperature)

	if cfg.LLMTimeout, err = env.GetDuration("LLM_TIMEOUT", cfg.LLMTimeout); err != nil {
		return Config{}, err
	}
	if cfg.LLMMaxAttempts, err = env.GetInt("LLM_MAX_ATTEMPTS", cfg.LLMMaxAttempts); err != nil {
		return Config{}, err
	}
	if cfg.LLMRetryDelay, err = env.GetDuration("LLM_RETRY_BACKOFF", cfg.LLMRetryDelay); err != nil {
		return Config{}, err
	}
	if cfg.LLMLogHTTP, err = env.GetBool("LLM_LOG_HTTP", cfg.LLMLogHTTP); err != nil {
		return Config{}, err
	}
	if cfg.NewsCount, err = env.GetInt("NEWS_COUNT", cfg.NewsCount); err != nil {
		return Config{}, err
	}
	seed, err := env.GetInt("NEWS_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	if seed < 0 {
		return Config{}, fmt.Errorf("parse NEWS_SEED: value must be >= 0")
	}
	cfg.NewsSeed = uint64(seed)
	if cfg.PipelineTimeout, err = env.GetDuration("PIPELINE_TIMEOUT", cfg.PipelineTimeout); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.LLMProvider {
	case ProviderOllama:
	case ProviderOpenAI, ProviderOpenRouter:
		if c.LLMAPIKey == "" {
			return fmt.Errorf("LLM_API_KEY is required for provider %s", c.LLMProvider)
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLMProvider)
	}

	if c.LLMModel == "" {
		return fmt.Errorf("LLM_MODEL must not be empty")
	}
	if c.LLMTimeout < 0 {
		return fmt.Errorf("LLM_TIMEOUT must be >= 0")
	}
	if c.LLMMaxAttempts < 1 {
		return fmt.Errorf("LLM_MAX_ATTEMPTS must be >= 1")
	}
	if c.NewsCount < 1 {
		return fmt.Errorf("NEWS_COUNT must be >= 1")
	}
	if c.PipelineTimeout <= 0 {
		return fmt.Errorf("PIPELINE_TIMEOUT must be > 0")
	}
	return nil
}

func defaultBaseURL(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return openaicompat.OpenAIBaseURL
	case ProviderOpenRouter:
		return openaicompat.OpenRouterBaseURL
	default:
		return ollama.DefaultServerURL
	}
}
