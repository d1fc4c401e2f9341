package index

import "log/slog"

// EmbeddingRecord is the durable output artifact for one route: the vector
// returned by the embedding service and the exact text that produced it.
type EmbeddingRecord struct {
	Embedding []float32 `json:"embedding"`
	Text      string    `json:"text"`
}

// EmbeddingStore holds the route → embedding map, loaded at the start of a
// run and rewritten at the end. Re-embedding a route overwrites its record;
// vectors are never appended.
type EmbeddingStore struct {
	path    string
	records map[string]EmbeddingRecord
}

// LoadEmbeddingStore reads the store at path, with the same
// corrupt-state-is-empty-state policy as the change index.
func LoadEmbeddingStore(path string, log *slog.Logger) *EmbeddingStore {
	return &EmbeddingStore{
		path:    path,
		records: loadRecords[EmbeddingRecord](path, log),
	}
}

// Upsert stores the embedding for route, replacing any previous record.
func (s *EmbeddingStore) Upsert(route string, vector []float32, text string) {
	s.records[route] = EmbeddingRecord{
		Embedding: vector,
		Text:      text,
	}
}

// Get returns the stored record for route, if any.
func (s *EmbeddingStore) Get(route string) (EmbeddingRecord, bool) {
	rec, ok := s.records[route]
	return rec, ok
}

// Len returns the number of stored embeddings.
func (s *EmbeddingStore) Len() int {
	return len(s.records)
}

// Save persists the full store, overwriting prior state.
func (s *EmbeddingStore) Save() error {
	return saveRecords(s.path, s.records)
}
