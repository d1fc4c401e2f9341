package pipeline

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/routelab/routedex/internal/metadata"
)

// debounceWindow coalesces bursts of filesystem events into one run. Editors
// commonly emit several events per save.
const debounceWindow = 500 * time.Millisecond

// Watch runs the pipeline once, then re-runs it whenever a metadata document
// changes. It blocks until ctx is cancelled. Failures inside a run are logged
// and watching continues; only watcher setup errors and cancellation end the
// loop.
func (p *Pipeline) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(p.cfg.MetadataPath); err != nil {
		return err
	}

	p.runLogged(ctx)
	p.log.Info("watching for metadata changes", "path", p.cfg.MetadataPath)

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			p.log.Debug("metadata change detected", "file", filepath.Base(event.Name), "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
			} else {
				timer.Reset(debounceWindow)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			p.runLogged(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			p.log.Warn("watcher error", "error", err)
		}
	}
}

func (p *Pipeline) runLogged(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := p.Run(ctx); err != nil && ctx.Err() == nil {
		p.log.Error("run failed", "error", err)
	}
}

// relevantEvent reports whether a filesystem event should trigger a re-run:
// writes, creates, removes, and renames of top-level JSON documents, ignoring
// the pipeline's own index artifacts and temp files.
func relevantEvent(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	if !strings.HasSuffix(name, ".json") {
		return false
	}
	return !metadata.IsIndexArtifact(name)
}
