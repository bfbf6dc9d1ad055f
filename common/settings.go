package common

import (
	"os"
	"path/filepath"

	"github.com/smellscan/smellscan/logger"
	"gopkg.in/yaml.v3"
)

// Settings holds the full configuration of one analysis run. A run is
// configured once before it starts and discarded when the process exits;
// nothing is persisted between runs.
type Settings struct {
	// Source is the directory of code samples to analyze.
	Source string `yaml:"source"`
	// Output is the directory the per-sample response files are written to.
	Output string `yaml:"output"`
	// CSVPath, when set, is the path of the CSV report covering every
	// sample of the run, including failed ones.
	CSVPath string `yaml:"csv"`

	// Smell is the identifier of the smell category to analyze for,
	// e.g. "long-method". See the smell package for valid values.
	Smell string `yaml:"smell"`

	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`

	// FileExt selects which files under Source are treated as samples.
	FileExt string `yaml:"file_ext"`

	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float32 `yaml:"temperature"`
	// APITimeout is the per-request timeout in seconds.
	APITimeout int `yaml:"api_timeout"`

	// RetryMax is the number of HTTP retries per request. The default of
	// zero means a single attempt; failed samples are left for a rerun.
	RetryMax int `yaml:"retry_max"`
	// RequestsPerMinute throttles endpoint calls. Zero disables pacing.
	RequestsPerMinute int `yaml:"requests_per_minute"`
}

func WithDefaultSettings() Settings {
	return Settings{
		Smell:       "long-method",
		Provider:    "openai",
		Model:       "gpt-5-mini",
		FileExt:     ".java",
		MaxTokens:   1500,
		Temperature: 1.0,
		APITimeout:  60,
	}
}

// WithYamlFile returns the default settings merged with the first
// smellscan.yml found in the current directory or its subdirectories.
func WithYamlFile() Settings {
	settings := WithDefaultSettings()

	var filePath string
	filenames := []string{"smellscan.yml", "smellscan.yaml"}

	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			filePath = name
			break
		}
	}

	if filePath == "" {
		filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if filePath != "" {
				return filepath.SkipDir
			}
			for _, name := range filenames {
				if !info.IsDir() && info.Name() == name {
					filePath = path
					return filepath.SkipDir
				}
			}
			return nil
		})
	}

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err == nil {
			if err := yaml.Unmarshal(data, &settings); err != nil {
				logger.Infof("Failed to parse YAML file %s: %v", filePath, err)
			} else {
				logger.Infof("Using settings from YAML file: %s", filePath)
			}
		}
	} else {
		logger.Debugf("No settings file found. Using default settings.")
	}
	return settings
}
