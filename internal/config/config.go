// Package config resolves routedex configuration from flags, environment
// variables, an optional YAML config file, and built-in defaults, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/routelab/routedex/internal/embedder"
	"github.com/routelab/routedex/internal/metadata"
)

// EnvPrefix is the prefix for environment overrides, e.g. ROUTEDEX_MODEL.
const EnvPrefix = "ROUTEDEX"

// Config is the fully-resolved runtime configuration.
type Config struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	Model        string `mapstructure:"model"`
	BaseURL      string `mapstructure:"base_url"`
	MetadataPath string `mapstructure:"metadata_path"`
	IndexPath    string `mapstructure:"index_path"`
	Force        bool   `mapstructure:"force"`
	Watch        bool   `mapstructure:"watch"`
	Concurrency  int    `mapstructure:"concurrency"`
	CacheSize    int    `mapstructure:"cache_size"`

	Verbose bool `mapstructure:"verbose"`
	Quiet   bool `mapstructure:"quiet"`
	LogJSON bool `mapstructure:"log_json"`

	// Provider request throttling; zero means unlimited.
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// Load resolves configuration. Precedence, highest first:
//
//  1. CLI flags bound via the given FlagSet
//  2. Environment variables (ROUTEDEX_MODEL, ROUTEDEX_METADATA_PATH, ...)
//  3. The YAML config file, when one exists
//  4. Built-in defaults
//
// configFile may be empty, in which case routedex.yaml is looked up in the
// current directory. OPENAI_API_KEY is honored as a fallback credential when
// neither flag, ROUTEDEX_API_KEY, nor the file provide one.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("routedex")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing default file is fine; an explicit one must exist.
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		// Flag names are dashed (metadata-path) but config keys use
		// underscores, so bind each flag under its normalized key.
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("binding flags: %w", bindErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	applyFallbacks(&cfg)
	return &cfg, nil
}

// setDefaults registers every config key. Registration also makes the keys
// visible to AutomaticEnv, so each one stays overridable via ROUTEDEX_*.
func setDefaults(v *viper.Viper) {
	v.SetDefault("provider", "")
	v.SetDefault("api_key", "")
	v.SetDefault("model", "")
	v.SetDefault("base_url", "")
	v.SetDefault("metadata_path", "metadata")
	v.SetDefault("index_path", "")
	v.SetDefault("force", false)
	v.SetDefault("watch", false)
	v.SetDefault("concurrency", 1)
	v.SetDefault("cache_size", 10000)
	v.SetDefault("requests_per_second", 0)
	v.SetDefault("burst", 0)
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)
	v.SetDefault("log_json", false)
}

func applyFallbacks(cfg *Config) {
	if cfg.Provider == "" {
		cfg.Provider = embedder.DetectProvider()
	}
	if cfg.Model == "" {
		switch cfg.Provider {
		case embedder.ProviderOllama:
			cfg.Model = embedder.DefaultOllamaModel
		default:
			cfg.Model = embedder.DefaultOpenAIModel
		}
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(embedder.EnvOpenAIAPIKey)
	}
	if cfg.IndexPath == "" {
		cfg.IndexPath = filepath.Join(cfg.MetadataPath, "embeddings.json")
	}
}

// Validate checks the resolved configuration and returns the first problem
// found. Validation failures are operator errors and abort startup.
func (c *Config) Validate() error {
	if c.Verbose && c.Quiet {
		return errors.New("verbose and quiet are mutually exclusive")
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}

	switch c.Provider {
	case embedder.ProviderOpenAI:
		if c.APIKey == "" {
			return fmt.Errorf("OpenAI API key not set; export %s or set api_key", embedder.EnvOpenAIAPIKey)
		}
		if !strings.HasPrefix(c.APIKey, "sk-") {
			return errors.New(`OpenAI API key looks invalid: expected "sk-" prefix`)
		}
	case embedder.ProviderOllama:
		// Local provider, no credential.
	default:
		return fmt.Errorf("%w: %q", embedder.ErrUnsupportedProvider, c.Provider)
	}

	if c.Model == "" {
		return errors.New("embedding model not set")
	}

	info, err := os.Stat(c.MetadataPath)
	if err != nil {
		return fmt.Errorf("metadata path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("metadata path %s is not a directory", c.MetadataPath)
	}
	if !c.Watch {
		docs, err := metadata.List(c.MetadataPath)
		if err != nil {
			return fmt.Errorf("metadata path: %w", err)
		}
		if len(docs) == 0 {
			return fmt.Errorf("no route metadata documents found in %s", c.MetadataPath)
		}
	}

	return nil
}
