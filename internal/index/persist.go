package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// loadRecords reads a persisted route-keyed map. A missing file yields empty
// state silently; an unreadable or corrupt file yields empty state with a
// warning. Loads are never fatal.
func loadRecords[T any](path string, log *slog.Logger) map[string]T {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn("index file unreadable, starting fresh", "path", path, "error", err)
		}
		return make(map[string]T)
	}

	var records map[string]T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Warn("index file corrupt, starting fresh", "path", path, "error", err)
		return make(map[string]T)
	}
	if records == nil {
		records = make(map[string]T)
	}
	return records
}

// saveRecords writes a route-keyed map atomically: the JSON is written to a
// temp file in the target directory and renamed over the destination, so a
// crash mid-write never leaves a truncated index behind.
func saveRecords[T any](path string, records map[string]T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}
