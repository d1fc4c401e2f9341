package embedder

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// EnvProvider selects the embedding provider by name, overriding
// auto-detection.
const EnvProvider = "ROUTEDEX_EMBEDDING_PROVIDER"

// Config holds the full embedding client configuration.
type Config struct {
	Provider string // "openai" or "ollama"; empty means openai
	APIKey   string
	Model    string
	BaseURL  string // Optional endpoint override

	CacheSize         int
	RequestsPerSecond float64
	Burst             int
}

// New builds a retrying Client around the configured provider.
func New(cfg Config, log *slog.Logger) (*Client, error) {
	var (
		provider Embedder
		err      error
	)

	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenAI, "":
		provider, err = NewOpenAIProvider(OpenAIConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
	case ProviderOllama:
		provider, err = NewOllamaProvider(OllamaConfig{
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
		})
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return NewClient(provider, ClientConfig{
		Retry:             DefaultRetryPolicy(),
		CacheSize:         cfg.CacheSize,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
	}, log), nil
}

// DetectProvider returns the provider that would be used based on the
// current environment.
func DetectProvider() string {
	if p := os.Getenv(EnvProvider); p != "" {
		return strings.ToLower(p)
	}
	if os.Getenv(EnvOpenAIAPIKey) != "" {
		return ProviderOpenAI
	}
	return ProviderOllama
}
