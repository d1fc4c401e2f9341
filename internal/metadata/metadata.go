package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/routelab/routedex/pkg/types"
)

// List returns the metadata document paths in dir, sorted by file name.
// Only top-level *.json files are considered; the index files the pipeline
// writes alongside the documents are excluded.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading metadata directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		if IsIndexArtifact(name) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}

	sort.Strings(files)
	return files, nil
}

// Load reads and decodes a single metadata document. The raw file bytes are
// returned alongside the document so the caller can fingerprint exactly what
// was on disk.
func Load(path string) (*types.RouteDoc, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	var doc types.RouteDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, raw, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	return &doc, raw, nil
}

// IsIndexArtifact reports whether name is one of the pipeline's own output
// files. The default index location is inside the metadata directory, so a
// second run would otherwise try to embed its own output.
func IsIndexArtifact(name string) bool {
	return name == "embeddings.json" || name == "hashes.json"
}
