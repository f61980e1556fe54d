package input

import "context"

// Stage is a single transform step of the pipeline.
type Stage interface {
	Transform(ctx context.Context, in string) (string, error)
}

type StageFunc func(ctx context.Context, in string) (string, error)

func (f StageFunc) Transform(ctx context.Context, in string) (string, error) {
	return f(ctx, in)
}
