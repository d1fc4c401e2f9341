package embedder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// ClientConfig configures the retry, caching, and rate-limiting behavior
// layered on top of a provider.
type ClientConfig struct {
	Retry     RetryPolicy
	CacheSize int // 0 disables the in-memory cache

	// RequestsPerSecond paces calls to the remote service. 0 disables
	// client-side rate limiting.
	RequestsPerSecond float64
	Burst             int
}

// Client wraps a provider with bounded retry, exponential backoff, content
// caching, and optional request pacing. All failures are returned as errors;
// nothing escapes the Client's boundary.
type Client struct {
	provider Embedder
	policy   RetryPolicy
	cache    *Cache
	limiter  *rate.Limiter
	log      *slog.Logger

	// sleep is swapped out in tests to observe backoff without waiting.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient wraps provider according to cfg. A nil logger discards output.
func NewClient(provider Embedder, cfg ClientConfig, log *slog.Logger) *Client {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if cfg.Retry.MaxRetries == 0 && len(cfg.Retry.Delays) == 0 {
		cfg.Retry = DefaultRetryPolicy()
	}

	c := &Client{
		provider: provider,
		policy:   cfg.Retry,
		log:      log,
		sleep:    sleepCtx,
	}
	if cfg.CacheSize > 0 {
		c.cache = NewCache(cfg.CacheSize)
	}
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	return c
}

// Embed generates an embedding for text, retrying transient provider
// failures per the configured policy. Non-transient failures return
// immediately; exhausted retries return an error wrapping
// ErrRetriesExhausted and the last underlying failure.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	if len(text) > SoftTextLimit {
		c.log.Warn("embedding text exceeds soft length limit",
			"chars", len(text),
			"limit", SoftTextLimit)
	}

	key := ComputeHash(text)
	if c.cache != nil {
		if vec, ok := c.cache.Get(key); ok {
			return vec, nil
		}
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		vec, err := c.provider.Embed(ctx, text)
		if err == nil {
			if c.cache != nil {
				c.cache.Set(key, vec)
			}
			return vec, nil
		}
		lastErr = err

		if !IsTransient(err) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if attempt >= c.policy.MaxRetries {
			return nil, fmt.Errorf("%w after %d retries: %v",
				ErrRetriesExhausted, c.policy.MaxRetries, lastErr)
		}

		delay := c.policy.Delay(attempt)
		c.log.Warn("embedding call failed, retrying",
			"attempt", attempt+1,
			"retries", c.policy.MaxRetries,
			"delay", delay,
			"error", err)
		if err := c.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

// Provider returns the wrapped provider's name.
func (c *Client) Provider() string {
	return c.provider.Provider()
}

// Model returns the wrapped provider's model name.
func (c *Client) Model() string {
	return c.provider.Model()
}

// Close releases the wrapped provider's resources.
func (c *Client) Close() error {
	return c.provider.Close()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
