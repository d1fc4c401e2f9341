package embedder

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrEmptyText           = errors.New("text cannot be empty")
	ErrMissingCredential   = errors.New("no embedding credential configured")
	ErrUnsupportedProvider = errors.New("unsupported embedding provider")
	ErrProviderFailed      = errors.New("embedding provider failed")
	ErrRetriesExhausted    = errors.New("embedding retries exhausted")
)

// Embedder converts text into a vector embedding.
type Embedder interface {
	// Embed converts text into a vector embedding.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Provider returns the provider name.
	Provider() string

	// Model returns the model name.
	Model() string

	// Close releases any resources held by the embedder.
	Close() error
}

// TransientError marks a provider failure worth retrying: rate limiting,
// service unavailability, transport errors. Failures not wrapped in
// TransientError propagate immediately without a retry.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return e.Err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is (or wraps) a TransientError.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
