package runner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReportRowsAndClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report", "results.csv")

	report, err := NewReport(path)
	if err != nil {
		t.Fatalf("NewReport failed: %v", err)
	}
	report.Add("Sample1.java", "SMELL: yes")
	report.Add("Sample2.java", "[ERROR] API call failed: timeout")
	if err := report.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Errorf("Expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "file_path,analysis" {
		t.Errorf("Unexpected header: %s", lines[0])
	}
}

func TestReportCloseReportsFlushFailure(t *testing.T) {
	report, err := NewReport(filepath.Join(t.TempDir(), "results.csv"))
	if err != nil {
		t.Fatalf("NewReport failed: %v", err)
	}
	report.Add("Sample.java", "buffered row")

	// Pull the file out from under the writer so the final flush fails.
	if err := report.file.Close(); err != nil {
		t.Fatalf("Failed to close underlying file: %v", err)
	}

	if err := report.Close(); err == nil {
		t.Error("Expected Close to report the failed flush")
	}
}

func TestNilReportIsSafe(t *testing.T) {
	var report *Report
	report.Add("Sample.java", "ignored")
	if err := report.Close(); err != nil {
		t.Errorf("Expected nil report Close to succeed, got %v", err)
	}
}
