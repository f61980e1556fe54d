package synthetic

import (
	"context"
	"iter"
	"math/rand/v2"
	"slices"
	"sync"

	"newsletter-agent/internal/application/port/output"
	"newsletter-agent/internal/domain/entity"
)

var _ output.NewsSourcePort = (*Source)(nil)

// Picker chooses an index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

type Config struct {
	Count int
	// Seed fixes the generator; zero draws a random seed.
	Seed uint64
	// Picker overrides the seeded generator when set.
	Picker Picker
}

func DefaultConfig() Config {
	return Config{Count: entity.DefaultNewsCount}
}

type Source struct {
	mu        sync.Mutex
	picker    Picker
	count     int
	headlines []string
}

func New(cfg Config) *Source {
	count := cfg.Count
	if count <= 0 {
		count = entity.DefaultNewsCount
	}

	picker := cfg.Picker
	if picker == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		picker = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	return &Source{
		picker:    picker,
		count:     count,
		headlines: slices.Clone(entity.Headlines),
	}
}

func (s *Source) Name() string {
	return "synthetic"
}

// Stream yields Count items lazily. Each range over the result starts a fresh sequence.
func (s *Source) Stream(topic entity.Topic) iter.Seq[entity.NewsItem] {
	return func(yield func(entity.NewsItem) bool) {
		for i := 1; i <= s.count; i++ {
			item := entity.NewsItem{
				Topic:    topic,
				Index:    i,
				Headline: s.pick(),
			}
			if !yield(item) {
				return
			}
		}
	}
}

func (s *Source) Fetch(ctx context.Context, topic entity.Topic) (entity.NewsBatch, error) {
	if err := topic.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return entity.NewsBatch(slices.Collect(s.Stream(topic))), nil
}

func (s *Source) pick() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.headlines[s.picker.IntN(len(s.headlines))]
}
