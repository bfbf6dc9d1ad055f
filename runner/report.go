package runner

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/smellscan/smellscan/logger"
)

// Report collects one CSV row per sample, successful or not, in the
// order the samples were processed. Failed samples carry an "[ERROR] ..."
// analysis value so a rerun can be targeted at them.
type Report struct {
	file   *os.File
	writer *csv.Writer
}

// NewReport creates the CSV file and writes its header row.
func NewReport(path string) (*Report, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create report directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report %s: %w", path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"file_path", "analysis"}); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	return &Report{file: file, writer: writer}, nil
}

// Add appends one row. Safe to call on a nil report, so callers without
// a configured CSV path don't need to guard every call.
func (r *Report) Add(path, analysis string) {
	if r == nil {
		return
	}
	if err := r.writer.Write([]string{path, analysis}); err != nil {
		logger.Errorf("Failed to write report row for %s: %v", path, err)
	}
}

// Close flushes and closes the CSV file.
func (r *Report) Close() error {
	if r == nil {
		return nil
	}
	r.writer.Flush()
	if err := r.writer.Error(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
