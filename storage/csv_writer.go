package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"jaipur-auction-scraper/models"
)

// CSVWriter dumps raw (unconsolidated) candidates to a CSV file, one
// file per run. It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created
// automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"source_portal", "title", "address", "price_text", "emd_text",
		"date_text", "locality_text", "source_url",
	}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// WriteRaw appends every raw candidate to the file.
func (c *CSVWriter) WriteRaw(candidates []models.RawCandidate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range candidates {
		row := []string{
			r.SourcePortal,
			r.Title,
			r.Address,
			r.PriceText,
			r.EMDText,
			r.DateText,
			r.LocalityText,
			r.SourceURL,
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
