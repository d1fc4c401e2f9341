package embedder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIClient(t *testing.T) {
	client, err := New(Config{
		Provider: ProviderOpenAI,
		APIKey:   "sk-test",
		Model:    "text-embedding-3-small",
	}, nil)
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, ProviderOpenAI, client.Provider())
	assert.Equal(t, "text-embedding-3-small", client.Model())
}

func TestNewDefaultsToOpenAI(t *testing.T) {
	client, err := New(Config{APIKey: "sk-test"}, nil)
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, ProviderOpenAI, client.Provider())
}

func TestNewOllamaClient(t *testing.T) {
	client, err := New(Config{Provider: ProviderOllama}, nil)
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, ProviderOllama, client.Provider())
	assert.Equal(t, DefaultOllamaModel, client.Model())
}

func TestNewUnsupportedProvider(t *testing.T) {
	_, err := New(Config{Provider: "carrier-pigeon"}, nil)
	assert.ErrorIs(t, err, ErrUnsupportedProvider)
}

func TestNewOpenAIMissingCredential(t *testing.T) {
	t.Setenv(EnvOpenAIAPIKey, "")

	_, err := New(Config{Provider: ProviderOpenAI}, nil)
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestDetectProvider(t *testing.T) {
	t.Run("explicit override wins", func(t *testing.T) {
		t.Setenv(EnvProvider, "OLLAMA")
		t.Setenv(EnvOpenAIAPIKey, "sk-test")
		assert.Equal(t, ProviderOllama, DetectProvider())
	})

	t.Run("api key selects openai", func(t *testing.T) {
		t.Setenv(EnvProvider, "")
		t.Setenv(EnvOpenAIAPIKey, "sk-test")
		assert.Equal(t, ProviderOpenAI, DetectProvider())
	})

	t.Run("fallback is ollama", func(t *testing.T) {
		t.Setenv(EnvProvider, "")
		t.Setenv(EnvOpenAIAPIKey, "")
		assert.Equal(t, ProviderOllama, DetectProvider())
	})
}
