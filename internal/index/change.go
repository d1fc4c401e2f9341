package index

import (
	"log/slog"
	"path/filepath"
	"time"
)

// ChangeFileName is the name of the change-detection index file, written in
// the same directory as the embedding store.
const ChangeFileName = "hashes.json"

// ChangeRecord is the persisted change-detection state for one route.
type ChangeRecord struct {
	Hash        string    `json:"hash"`
	LastUpdated time.Time `json:"last_updated"`
}

// ChangeIndex tracks the last-seen fingerprint of every route so unchanged
// documents can be skipped. Single-writer: the pipeline owns the in-memory
// map for the duration of a run.
type ChangeIndex struct {
	path    string
	force   bool
	records map[string]ChangeRecord
}

// ChangePath returns the change index location for a given embedding store
// path: hashes.json beside it.
func ChangePath(storePath string) string {
	return filepath.Join(filepath.Dir(storePath), ChangeFileName)
}

// LoadChangeIndex reads the change index at path. Missing or corrupt state
// means starting fresh. When force is set, Unchanged always reports false and
// every document is re-embedded regardless of fingerprint match.
func LoadChangeIndex(path string, force bool, log *slog.Logger) *ChangeIndex {
	return &ChangeIndex{
		path:    path,
		force:   force,
		records: loadRecords[ChangeRecord](path, log),
	}
}

// Unchanged reports whether route already has a record with the given
// fingerprint. Always false under force.
func (c *ChangeIndex) Unchanged(route, fingerprint string) bool {
	if c.force {
		return false
	}
	rec, ok := c.records[route]
	return ok && rec.Hash == fingerprint
}

// Record upserts the change record for route. The timestamp is stored in UTC.
func (c *ChangeIndex) Record(route, fingerprint string, at time.Time) {
	c.records[route] = ChangeRecord{
		Hash:        fingerprint,
		LastUpdated: at.UTC(),
	}
}

// Get returns the stored record for route, if any.
func (c *ChangeIndex) Get(route string) (ChangeRecord, bool) {
	rec, ok := c.records[route]
	return rec, ok
}

// Len returns the number of tracked routes.
func (c *ChangeIndex) Len() int {
	return len(c.records)
}

// Save persists the full index, overwriting prior state.
func (c *ChangeIndex) Save() error {
	return saveRecords(c.path, c.records)
}
