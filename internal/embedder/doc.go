// Package embedder generates vector embeddings for route metadata text.
//
// The package supports multiple providers (OpenAI, Ollama) behind a single
// Embedder interface, and wraps them in a Client that adds retry with
// exponential backoff, in-memory caching, and optional rate limiting.
//
// # Basic Usage
//
//	client, err := embedder.New(embedder.Config{
//	    Provider: embedder.ProviderOpenAI,
//	    APIKey:   apiKey,
//	    Model:    "text-embedding-3-small",
//	}, log)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	vector, err := client.Embed(ctx, text)
//
// # Failure Model
//
// Provider failures are split into two classes. Transient failures (rate
// limiting, 5xx responses, transport errors) are wrapped in TransientError
// and retried up to MaxRetries times with delays of 1s, 2s, 4s; each retry
// logs a warning carrying the attempt number and the delay. Everything else
// (malformed input, authentication failure) propagates immediately without
// a retry.
//
// After retries are exhausted the Client returns a terminal error wrapping
// ErrRetriesExhausted together with the last underlying failure. Errors are
// always returned, never panicked.
//
// # Provider Selection
//
// DetectProvider picks a provider from the environment:
//
//  1. If ROUTEDEX_EMBEDDING_PROVIDER is set → use the named provider
//  2. Else if OPENAI_API_KEY is set → use OpenAI
//  3. Else → fall back to a local Ollama instance
package embedder
