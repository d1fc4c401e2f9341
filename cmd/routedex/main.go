// Command routedex builds and incrementally refreshes a vector-embedding
// index over route metadata documents.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/routelab/routedex/internal/config"
	"github.com/routelab/routedex/internal/embedder"
	"github.com/routelab/routedex/internal/logger"
	"github.com/routelab/routedex/internal/pipeline"
)

var version = "dev"

const longDesc = `Routedex scans a directory of route metadata documents, embeds each
changed document with an embedding provider, and maintains two JSON
artifacts alongside the metadata: embeddings.json (route -> vector)
and hashes.json (route -> content fingerprint).

Unchanged documents are skipped, so repeated runs only pay for what
actually changed. Use --force to rebuild the whole index.

Examples:
  routedex --metadata-path ./metadata
  routedex --force
  routedex --watch
  routedex --provider ollama --model nomic-embed-text`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "routedex",
		Short:         "Incremental embedding index for route metadata",
		Long:          longDesc,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, configFile)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (default routedex.yaml)")
	cmd.Flags().String("metadata-path", "metadata", "directory containing route metadata documents")
	cmd.Flags().String("index-path", "", "embedding index file (default <metadata-path>/embeddings.json)")
	cmd.Flags().String("provider", "", "embedding provider: openai or ollama (default autodetected)")
	cmd.Flags().String("model", "", "embedding model name")
	cmd.Flags().String("api-key", "", "provider API key (default $OPENAI_API_KEY)")
	cmd.Flags().String("base-url", "", "provider API base URL override")
	cmd.Flags().BoolP("force", "f", false, "re-embed every document, ignoring stored fingerprints")
	cmd.Flags().BoolP("watch", "w", false, "keep running and re-index on metadata changes")
	cmd.Flags().Int("concurrency", 1, "number of documents embedded in parallel")
	cmd.Flags().BoolP("verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolP("quiet", "q", false, "only log errors")
	cmd.Flags().Bool("log-json", false, "emit logs as JSON")

	return cmd
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logger.New(
		logger.WithDebug(cfg.Verbose),
		logger.WithQuiet(cfg.Quiet),
		logger.WithJSON(cfg.LogJSON),
	)
}

func run(cmd *cobra.Command, configFile string) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger(cfg)

	emb, err := embedder.New(embedder.Config{
		Provider:  cfg.Provider,
		APIKey:    cfg.APIKey,
		Model:     cfg.Model,
		BaseURL:   cfg.BaseURL,
		CacheSize: cfg.CacheSize,

		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
	}, log)
	if err != nil {
		return err
	}
	defer emb.Close()

	log.Info("starting routedex",
		"provider", emb.Provider(),
		"model", emb.Model(),
		"metadata_path", cfg.MetadataPath,
		"index_path", cfg.IndexPath)

	p := pipeline.New(emb, pipeline.Config{
		MetadataPath: cfg.MetadataPath,
		IndexPath:    cfg.IndexPath,
		Force:        cfg.Force,
		Concurrency:  cfg.Concurrency,
	}, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Watch {
		// Blocks until interrupted. Per-run summaries go to the log.
		if err := p.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}

	result, err := p.Run(ctx)
	if err != nil {
		return err
	}

	// Per-document failures are reported in the summary but do not fail
	// the command: the rest of the batch was indexed.
	fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
	return nil
}
