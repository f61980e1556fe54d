package ollama

import (
	"context"
	"errors"
	"testing"

	"newsletter-agent/internal/application/port/output"
	"newsletter-agent/internal/domain/entity"
	"newsletter-agent/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	resp     *llms.ContentResponse
	err      error
	messages []llms.MessageContent
	opts     llms.CallOptions
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	for _, opt := range options {
		opt(&f.opts)
	}
	return f.resp, f.err
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestAdapterChat_ReturnsFirstChoice(t *testing.T) {
	model := &fakeModel{resp: &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: "Welcome to this week's roundup!", StopReason: "stop"}},
	}}
	adapter := NewWithModel(model, DefaultModel, logger.NewNop())

	resp, err := adapter.Chat(context.Background(), output.ChatRequest{
		Messages:    []entity.Message{entity.UserMessage("write an intro")},
		Temperature: 0.5,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAssistant, resp.Message.Role)
	assert.Equal(t, "Welcome to this week's roundup!", resp.Message.Content)

	require.Len(t, model.messages, 1)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.messages[0].Role)
	require.Len(t, model.messages[0].Parts, 1)
	assert.Equal(t, llms.TextContent{Text: "write an intro"}, model.messages[0].Parts[0])
	assert.InDelta(t, 0.5, model.opts.Temperature, 1e-6)
}

func TestAdapterChat_ZeroTemperatureLeavesDefault(t *testing.T) {
	model := &fakeModel{resp: &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: "ok"}},
	}}

	_, err := NewWithModel(model, DefaultModel, nil).Chat(context.Background(), output.ChatRequest{
		Messages: []entity.Message{entity.UserMessage("p")},
	})
	require.NoError(t, err)

	assert.Zero(t, model.opts.Temperature)
}

func TestAdapterChat_Error(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:11434: connect: connection refused")
	model := &fakeModel{err: cause}

	_, err := NewWithModel(model, DefaultModel, nil).Chat(context.Background(), output.ChatRequest{
		Messages: []entity.Message{entity.UserMessage("p")},
	})

	assert.ErrorIs(t, err, cause)
	assert.ErrorContains(t, err, "ollama chat failed")
}

func TestAdapterChat_EmptyResponse(t *testing.T) {
	for _, resp := range []*llms.ContentResponse{nil, {}, {Choices: []*llms.ContentChoice{nil}}} {
		model := &fakeModel{resp: resp}

		_, err := NewWithModel(model, DefaultModel, nil).Chat(context.Background(), output.ChatRequest{
			Messages: []entity.Message{entity.UserMessage("p")},
		})

		assert.ErrorContains(t, err, "no choices")
	}
}

func TestConvertRole(t *testing.T) {
	assert.Equal(t, llms.ChatMessageTypeSystem, convertRole(entity.RoleSystem))
	assert.Equal(t, llms.ChatMessageTypeHuman, convertRole(entity.RoleUser))
	assert.Equal(t, llms.ChatMessageTypeAI, convertRole(entity.RoleAssistant))
}

func TestNew_BuildsClient(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ServerURL = "http://127.0.0.1:1"

	adapter, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, adapter.name)
}
