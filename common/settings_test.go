package common

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir changes the working directory for the duration of the test,
// matching the behavior of testing.T.Chdir (added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	})
}

func TestDefaultSettings(t *testing.T) {
	settings := WithDefaultSettings()

	if settings.Smell != "long-method" {
		t.Errorf("Expected long-method default smell, got %s", settings.Smell)
	}
	if settings.Provider != "openai" {
		t.Errorf("Expected openai default provider, got %s", settings.Provider)
	}
	if settings.FileExt != ".java" {
		t.Errorf("Expected .java default extension, got %s", settings.FileExt)
	}
	if settings.MaxTokens != 1500 {
		t.Errorf("Expected 1500 default max tokens, got %d", settings.MaxTokens)
	}
	if settings.Temperature != 1.0 {
		t.Errorf("Expected 1.0 default temperature, got %f", settings.Temperature)
	}
	if settings.RetryMax != 0 {
		t.Errorf("Expected retries off by default, got %d", settings.RetryMax)
	}
	if settings.RequestsPerMinute != 0 {
		t.Errorf("Expected pacing off by default, got %d", settings.RequestsPerMinute)
	}
}

func TestWithYamlFile(t *testing.T) {
	dir := t.TempDir()
	content := `smell: feature-envy
provider: huggingface
model: deepseek-ai/DeepSeek-R1-Distill-Qwen-32B
retry_max: 2
requests_per_minute: 30
`
	if err := os.WriteFile(filepath.Join(dir, "smellscan.yml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}
	chdir(t, dir)

	settings := WithYamlFile()

	if settings.Smell != "feature-envy" {
		t.Errorf("Expected feature-envy from the file, got %s", settings.Smell)
	}
	if settings.Provider != "huggingface" {
		t.Errorf("Expected huggingface from the file, got %s", settings.Provider)
	}
	if settings.Model != "deepseek-ai/DeepSeek-R1-Distill-Qwen-32B" {
		t.Errorf("Unexpected model: %s", settings.Model)
	}
	if settings.RetryMax != 2 {
		t.Errorf("Expected 2 retries from the file, got %d", settings.RetryMax)
	}
	if settings.RequestsPerMinute != 30 {
		t.Errorf("Expected 30 rpm from the file, got %d", settings.RequestsPerMinute)
	}
	// Values absent from the file keep their defaults.
	if settings.MaxTokens != 1500 {
		t.Errorf("Expected default max tokens, got %d", settings.MaxTokens)
	}
}

func TestWithYamlFileMissing(t *testing.T) {
	chdir(t, t.TempDir())

	settings := WithYamlFile()
	if settings != WithDefaultSettings() {
		t.Error("Expected defaults when no settings file exists")
	}
}

func TestWithYamlFileInvalid(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "smellscan.yml"), []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}
	chdir(t, dir)

	settings := WithYamlFile()
	if settings != WithDefaultSettings() {
		t.Error("Expected defaults when the settings file cannot be parsed")
	}
}
