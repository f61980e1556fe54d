package entity

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTopic    = errors.New("invalid topic: must be non-empty")
	ErrExternalService = errors.New("external service error")
)

// ExternalServiceError wraps any failure of the language model call.
type ExternalServiceError struct {
	Model string
	Err   error
}

func NewExternalServiceError(model string, err error) *ExternalServiceError {
	return &ExternalServiceError{Model: model, Err: err}
}

func (e *ExternalServiceError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("%s: %v", ErrExternalService, e.Err)
	}
	return fmt.Sprintf("%s (model %s): %v", ErrExternalService, e.Model, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

func (e *ExternalServiceError) Is(target error) bool {
	return target == ErrExternalService
}
