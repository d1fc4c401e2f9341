package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/routelab/routedex/internal/index"
	"github.com/routelab/routedex/internal/metadata"
)

// Embedder is the pipeline's view of the embedding client.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Config contains configuration for a pipeline run.
type Config struct {
	MetadataPath string
	IndexPath    string // Defaults to <MetadataPath>/embeddings.json
	Force        bool   // Re-embed everything, ignoring fingerprint matches
	Concurrency  int    // Worker count; <= 1 means sequential
}

// ItemError records one per-item failure.
type ItemError struct {
	Item string // Route when known, file name otherwise
	Err  string
}

// Result aggregates the outcomes of one run.
type Result struct {
	Processed int
	Succeeded int
	Skipped   int
	Failed    int
	Errors    []ItemError
	Duration  time.Duration
}

// Summary renders the end-of-run report.
func (r *Result) Summary() string {
	var b strings.Builder
	b.WriteString("Summary:\n")
	fmt.Fprintf(&b, "  Processed: %d\n", r.Processed)
	fmt.Fprintf(&b, "  Succeeded: %d\n", r.Succeeded)
	fmt.Fprintf(&b, "  Skipped (unchanged): %d\n", r.Skipped)
	fmt.Fprintf(&b, "  Failed: %d\n", r.Failed)
	if len(r.Errors) > 0 {
		b.WriteString("\nErrors:\n")
		for _, e := range r.Errors {
			fmt.Fprintf(&b, "  %s: %s\n", e.Item, e.Err)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

type itemStatus int

const (
	itemSucceeded itemStatus = iota
	itemSkipped
	itemFailed
)

// Pipeline coordinates the embedding flow over one metadata directory.
type Pipeline struct {
	emb Embedder
	cfg Config
	log *slog.Logger

	// now is swapped out in tests for stable timestamps.
	now func() time.Time
}

// New creates a Pipeline. A nil logger discards output.
func New(emb Embedder, cfg Config, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.IndexPath == "" {
		cfg.IndexPath = filepath.Join(cfg.MetadataPath, "embeddings.json")
	}
	return &Pipeline{
		emb: emb,
		cfg: cfg,
		log: log,
		now: time.Now,
	}
}

// Run processes every metadata document and persists both indices at the
// end, regardless of per-item failures. The returned error is non-nil only
// for failures that prevent or interrupt the run as a whole (unreadable
// metadata directory, cancellation, failed persistence), never for
// individual document failures.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := p.now()

	changes := index.LoadChangeIndex(index.ChangePath(p.cfg.IndexPath), p.cfg.Force, p.log)
	store := index.LoadEmbeddingStore(p.cfg.IndexPath, p.log)

	files, err := metadata.List(p.cfg.MetadataPath)
	if err != nil {
		return nil, err
	}

	p.log.Info("processing metadata documents",
		"count", len(files),
		"force", p.cfg.Force,
		"concurrency", p.cfg.Concurrency)

	result := &Result{Processed: len(files)}
	runErr := p.process(ctx, files, changes, store, result)

	// Persist both artifacts even after a partial run. Embeddings are saved
	// first so a crash between the two saves never leaves a route marked
	// unchanged without its vector on disk.
	if err := store.Save(); err != nil {
		return nil, fmt.Errorf("saving embedding store: %w", err)
	}
	if err := changes.Save(); err != nil {
		return nil, fmt.Errorf("saving change index: %w", err)
	}

	result.Duration = time.Since(start)
	p.log.Info("run complete",
		"processed", result.Processed,
		"succeeded", result.Succeeded,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"took", result.Duration)

	return result, runErr
}

// process fans the files out to Concurrency workers. A single mutex guards
// the shared indices and the result accumulator.
func (p *Pipeline) process(ctx context.Context, files []string,
	changes *index.ChangeIndex, store *index.EmbeddingStore, result *Result) error {

	var mu sync.Mutex
	filesCh := make(chan string)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(filesCh)
		for _, file := range files {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case filesCh <- file:
			}
		}
		return nil
	})

	for i := 0; i < p.cfg.Concurrency; i++ {
		g.Go(func() error {
			for file := range filesCh {
				status, itemErr := p.processItem(gctx, file, changes, store, &mu)

				mu.Lock()
				switch status {
				case itemSucceeded:
					result.Succeeded++
				case itemSkipped:
					result.Skipped++
				case itemFailed:
					result.Failed++
					result.Errors = append(result.Errors, itemErr)
				}
				mu.Unlock()

				if status == itemFailed {
					p.log.Error("document failed", "item", itemErr.Item, "error", itemErr.Err)
				}
				if gctx.Err() != nil {
					return gctx.Err()
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// processItem walks one document through the state machine. All failures are
// reported as item outcomes; nothing here aborts the batch.
func (p *Pipeline) processItem(ctx context.Context, path string,
	changes *index.ChangeIndex, store *index.EmbeddingStore, mu *sync.Mutex) (itemStatus, ItemError) {

	name := filepath.Base(path)

	doc, raw, err := metadata.Load(path)
	if err != nil {
		return itemFailed, ItemError{Item: name, Err: err.Error()}
	}
	if err := doc.Validate(); err != nil {
		return itemFailed, ItemError{Item: name, Err: err.Error()}
	}

	fingerprint := index.Fingerprint(raw)

	mu.Lock()
	unchanged := changes.Unchanged(doc.Route, fingerprint)
	mu.Unlock()
	if unchanged {
		p.log.Debug("skipping unchanged document", "route", doc.Route, "file", name)
		return itemSkipped, ItemError{}
	}

	text := metadata.Format(doc)

	embedStart := p.now()
	vector, err := p.emb.Embed(ctx, text)
	if err != nil {
		return itemFailed, ItemError{Item: doc.Route, Err: err.Error()}
	}

	mu.Lock()
	store.Upsert(doc.Route, vector, text)
	changes.Record(doc.Route, fingerprint, p.now())
	mu.Unlock()

	p.log.Debug("embedded route",
		"route", doc.Route,
		"dimension", len(vector),
		"took", time.Since(embedStart))

	return itemSucceeded, ItemError{}
}
