package ollama

import (
	"context"
	"fmt"

	"newsletter-agent/internal/application/port/output"
	"newsletter-agent/internal/domain/entity"

	"github.com/tmc/langchaingo/llms"
	lcollama "github.com/tmc/langchaingo/llms/ollama"
)

var _ output.LLMPort = (*Adapter)(nil)

const (
	DefaultServerURL = "http://localhost:11434"
	DefaultModel     = "codellama:7b-instruct"
)

type Config struct {
	Model     string
	ServerURL string
	Logger    output.LoggerPort
}

func DefaultConfig() Config {
	return Config{
		Model:     DefaultModel,
		ServerURL: DefaultServerURL,
	}
}

type Adapter struct {
	model  llms.Model
	name   string
	logger output.LoggerPort
}

func New(cfg Config) (*Adapter, error) {
	opts := []lcollama.Option{lcollama.WithModel(cfg.Model)}
	if cfg.ServerURL != "" {
		opts = append(opts, lcollama.WithServerURL(cfg.ServerURL))
	}

	client, err := lcollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}

	return NewWithModel(client, cfg.Model, cfg.Logger), nil
}

// NewWithModel wraps any langchaingo model, which keeps tests off the network.
func NewWithModel(model llms.Model, name string, logger output.LoggerPort) *Adapter {
	return &Adapter{
		model:  model,
		name:   name,
		logger: logger,
	}
}

func (a *Adapter) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	var callOpts []llms.CallOption
	if req.Temperature > 0 {
		callOpts = append(callOpts, llms.WithTemperature(float64(req.Temperature)))
	}

	if a.logger != nil {
		a.logger.Debug("Sending chat to ollama", "model", a.name, "messagesCount", len(req.Messages))
	}

	resp, err := a.model.GenerateContent(ctx, convertMessages(req.Messages), callOpts...)
	if err != nil {
		return nil, fmt.Errorf("ollama chat failed: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return nil, fmt.Errorf("no choices in response")
	}

	choice := resp.Choices[0]
	if a.logger != nil {
		a.logger.Debug("Ollama response received", "model", a.name, "stopReason", choice.StopReason, "contentLength", len(choice.Content))
	}

	return &output.ChatResponse{
		Message: entity.Message{
			Role:    entity.RoleAssistant,
			Content: choice.Content,
		},
	}, nil
}

func convertMessages(messages []entity.Message) []llms.MessageContent {
	result := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		result = append(result, llms.TextParts(convertRole(msg.Role), msg.Content))
	}
	return result
}

func convertRole(role entity.MessageRole) llms.ChatMessageType {
	switch role {
	case entity.RoleSystem:
		return llms.ChatMessageTypeSystem
	case entity.RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}
