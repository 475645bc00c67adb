package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// CSVWriter writes a rendered snapshot export to a .csv file.
// It is safe for concurrent use.
type CSVWriter struct {
	mu   sync.Mutex
	file *os.File
}

// NewCSVWriter creates (or truncates) the file at the given path.
// Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	return &CSVWriter{file: f}, nil
}

// Write stores the delimited export exactly as rendered, with a trailing
// newline. The byte format is the table engine's contract, not this
// package's: no re-quoting or re-escaping happens here.
func (c *CSVWriter) Write(data string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.file.WriteString(data); err != nil {
		return fmt.Errorf("csv: write export: %w", err)
	}
	if _, err := c.file.WriteString("\n"); err != nil {
		return fmt.Errorf("csv: write export: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (c *CSVWriter) Close() error {
	return c.file.Close()
}
