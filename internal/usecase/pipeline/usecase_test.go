package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"newsletter-agent/internal/application/port/input"
	"newsletter-agent/internal/application/port/output"
	"newsletter-agent/internal/domain/entity"
	"newsletter-agent/internal/infrastructure/logger"
	"newsletter-agent/internal/infrastructure/news/synthetic"
	"newsletter-agent/internal/usecase/editorial"
	"newsletter-agent/internal/usecase/reporter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPicker int

func (p fixedPicker) IntN(n int) int {
	return int(p) % n
}

type stubLLM struct {
	content string
	err     error
	prompts []string
}

func (s *stubLLM) Chat(_ context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	for _, m := range req.Messages {
		s.prompts = append(s.prompts, m.Content)
	}
	if s.err != nil {
		return nil, s.err
	}
	return &output.ChatResponse{Message: entity.Message{Role: entity.RoleAssistant, Content: s.content}}, nil
}

type recordingPresenter struct {
	events []string
}

func (p *recordingPresenter) ShowTopic(_ context.Context, topic entity.Topic) {
	p.events = append(p.events, "topic:"+string(topic))
}

func (p *recordingPresenter) ShowRawNews(_ context.Context, raw entity.RawNewsText) {
	p.events = append(p.events, "raw:"+string(raw))
}

func (p *recordingPresenter) ShowNewsletter(_ context.Context, intro entity.NewsletterIntro) {
	p.events = append(p.events, "intro:"+string(intro))
}

func (p *recordingPresenter) ShowError(_ context.Context, err error) {
	p.events = append(p.events, "error:"+err.Error())
}

func newPipeline(t *testing.T, llm output.LLMPort, presenter output.PresenterPort) *UseCase {
	t.Helper()
	log := logger.NewNop()
	src := synthetic.New(synthetic.Config{Picker: fixedPicker(2)})
	ed, err := editorial.New(llm, log, editorial.Config{Model: "codellama:7b-instruct"})
	require.NoError(t, err)
	return New(reporter.New(src, log), ed, presenter, log)
}

const aiStockTrendsRaw = "AI Stock Trends news update #1: AI breakthrough\n" +
	"AI Stock Trends news update #2: AI breakthrough\n" +
	"AI Stock Trends news update #3: AI breakthrough"

func TestRun_FixedSourceRawNews(t *testing.T) {
	llm := &stubLLM{content: "intro"}
	p := newPipeline(t, llm, nil)

	result, err := p.Run(context.Background(), "AI Stock Trends")
	require.NoError(t, err)

	assert.Equal(t, entity.Topic("AI Stock Trends"), result.Topic)
	assert.Equal(t, entity.RawNewsText(aiStockTrendsRaw), result.RawNews)
	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], aiStockTrendsRaw)
}

func TestRun_ReturnsModelTextUnaltered(t *testing.T) {
	presenter := &recordingPresenter{}
	p := newPipeline(t, &stubLLM{content: "Welcome to this week's roundup!"}, presenter)

	result, err := p.Run(context.Background(), "AI Stock Trends")
	require.NoError(t, err)

	assert.Equal(t, entity.NewsletterIntro("Welcome to this week's roundup!"), result.Intro)
	assert.Equal(t, []string{
		"topic:AI Stock Trends",
		"raw:" + aiStockTrendsRaw,
		"intro:Welcome to this week's roundup!",
	}, presenter.events)
}

func TestRun_ConnectionFailurePropagates(t *testing.T) {
	presenter := &recordingPresenter{}
	cause := fmt.Errorf("ollama chat failed: %w", errors.New("connect: connection refused"))
	p := newPipeline(t, &stubLLM{err: cause}, presenter)

	result, err := p.Run(context.Background(), "AI Stock Trends")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, entity.ErrExternalService)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, []string{"topic:AI Stock Trends", "raw:" + aiStockTrendsRaw}, presenter.events)
}

func TestRun_InvalidTopicRunsNothing(t *testing.T) {
	presenter := &recordingPresenter{}
	llm := &stubLLM{content: "intro"}
	p := newPipeline(t, llm, presenter)

	for _, topic := range []entity.Topic{"", "   "} {
		_, err := p.Run(context.Background(), topic)
		assert.ErrorIs(t, err, entity.ErrInvalidTopic)
	}
	assert.Empty(t, presenter.events)
	assert.Empty(t, llm.prompts)
}

func TestRun_StagesRunInOrder(t *testing.T) {
	var calls []string
	reporterStage := input.StageFunc(func(_ context.Context, in string) (string, error) {
		calls = append(calls, "reporter:"+in)
		return "raw", nil
	})
	editorialStage := input.StageFunc(func(_ context.Context, in string) (string, error) {
		calls = append(calls, "editorial:"+in)
		return "done", nil
	})

	result, err := New(reporterStage, editorialStage, nil, logger.NewNop()).Run(context.Background(), "Go")
	require.NoError(t, err)

	assert.Equal(t, []string{"reporter:Go", "editorial:raw"}, calls)
	assert.Equal(t, entity.NewsletterIntro("done"), result.Intro)
}

func TestRun_ReporterFailureSkipsEditorial(t *testing.T) {
	cause := errors.New("no news")
	editorialCalled := false
	reporterStage := input.StageFunc(func(context.Context, string) (string, error) {
		return "", cause
	})
	editorialStage := input.StageFunc(func(context.Context, string) (string, error) {
		editorialCalled = true
		return "", nil
	})

	_, err := New(reporterStage, editorialStage, nil, logger.NewNop()).Run(context.Background(), "Go")

	assert.ErrorIs(t, err, cause)
	assert.False(t, editorialCalled)
}

func TestRun_RepeatedRunsAreIndependent(t *testing.T) {
	llm := &stubLLM{content: "intro"}
	p := newPipeline(t, llm, nil)

	first, err := p.Run(context.Background(), "AI Stock Trends")
	require.NoError(t, err)
	second, err := p.Run(context.Background(), "Go")
	require.NoError(t, err)

	assert.Equal(t, entity.Topic("AI Stock Trends"), first.Topic)
	assert.Equal(t, entity.Topic("Go"), second.Topic)
	assert.NotEqual(t, first.RawNews, second.RawNews)
	assert.Len(t, llm.prompts, 2)
}
