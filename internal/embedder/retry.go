package embedder

import "time"

// Retry configuration
const (
	// MaxRetries is the default number of retry attempts after the initial
	// call, i.e. MaxRetries+1 total attempts.
	MaxRetries = 3

	// SoftTextLimit is the text length above which a warning is emitted
	// before the call. Long inputs still proceed.
	SoftTextLimit = 5000
)

// RetryPolicy configures bounded retry with an explicit backoff schedule.
type RetryPolicy struct {
	MaxRetries int             // Retry attempts after the initial call
	Delays     []time.Duration // Backoff schedule, capped at the last entry
}

// DefaultRetryPolicy returns the standard policy: 3 retries with delays of
// 1s, 2s, 4s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: MaxRetries,
		Delays:     []time.Duration{time.Second, 2 * time.Second, 4 * time.Second},
	}
}

// Delay returns the backoff delay before retry number attempt (0-based).
// When more retries are configured than delays are listed, the last delay
// repeats.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if len(p.Delays) == 0 {
		return 0
	}
	if attempt >= len(p.Delays) {
		return p.Delays[len(p.Delays)-1]
	}
	return p.Delays[attempt]
}
