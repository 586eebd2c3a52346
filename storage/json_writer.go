package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"jaipur-auction-scraper/models"
)

// JSONWriter persists the final consolidated catalogue as a single
// pretty-printed JSON file, the primary output of a run.
type JSONWriter struct {
	path string
}

// NewJSONWriter returns a writer targeting the given path. Intermediate
// directories are created on the first write.
func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{path: path}
}

// Write replaces the catalogue file atomically: the new catalogue is
// written to a temp file first, then renamed over the old one, so
// readers (the API service) never see a half-written file.
func (j *JSONWriter) Write(listings []*models.Listing) error {
	if err := os.MkdirAll(filepath.Dir(j.path), 0755); err != nil {
		return fmt.Errorf("json: create output dir: %w", err)
	}

	data, err := json.MarshalIndent(listings, "", "  ")
	if err != nil {
		return fmt.Errorf("json: marshal catalogue: %w", err)
	}

	tmp := j.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("json: write temp file: %w", err)
	}
	if err := os.Rename(tmp, j.path); err != nil {
		return fmt.Errorf("json: replace catalogue: %w", err)
	}
	return nil
}

// Close satisfies CatalogueWriter; the JSON writer holds no resources.
func (j *JSONWriter) Close() error { return nil }

// ReadCatalogue loads a previously written catalogue file. Used by the
// API service and the insight path when Postgres is unavailable.
func ReadCatalogue(path string) ([]*models.Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("json: read catalogue %q: %w", path, err)
	}

	var listings []*models.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("json: decode catalogue %q: %w", path, err)
	}
	return listings, nil
}
