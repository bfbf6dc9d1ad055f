// Package runner drives one batch analysis run: every sample under the
// source directory is rendered into the selected smell prompt, sent to the
// configured model, and its response written to the output directory.
package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/smellscan/smellscan/common"
	"github.com/smellscan/smellscan/llm"
	"github.com/smellscan/smellscan/logger"
	"github.com/smellscan/smellscan/smell"
)

// OutputExt is the extension of the per-sample response files.
const OutputExt = ".txt"

// Summary reports the outcome of one run.
type Summary struct {
	RunID     string
	Total     int
	Processed int
	Failed    int
}

// Runner executes one analysis run. Samples are processed sequentially,
// one endpoint call at a time; a failing sample is reported and skipped,
// never aborting the run.
type Runner struct {
	settings common.Settings
	client   llm.LLM
	category smell.Smell
	limiter  *rate.Limiter
}

// New validates the settings and builds a runner around the given client.
func New(settings common.Settings, client llm.LLM) (*Runner, error) {
	if settings.Source == "" {
		return nil, fmt.Errorf("source directory is required")
	}
	if settings.Output == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if client == nil {
		return nil, fmt.Errorf("LLM client is required")
	}

	category, err := smell.Lookup(settings.Smell)
	if err != nil {
		return nil, err
	}

	var limiter *rate.Limiter
	if settings.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(settings.RequestsPerMinute)), 1)
	}

	return &Runner{
		settings: settings,
		client:   client,
		category: category,
		limiter:  limiter,
	}, nil
}

// Run processes every sample under the source directory and returns the
// run summary. The returned error is non-nil only when the run itself
// cannot proceed (unreadable source tree, unwritable output root or CSV);
// per-sample failures are reported and counted instead.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	summary := Summary{RunID: uuid.NewString()}

	samples, err := r.collectSamples()
	if err != nil {
		return summary, fmt.Errorf("failed to list samples in %s: %w", r.settings.Source, err)
	}
	summary.Total = len(samples)

	logger.Infof("Run %s: found %d %s files under %s",
		summary.RunID, len(samples), r.settings.FileExt, r.settings.Source)

	if err := os.MkdirAll(r.settings.Output, 0o755); err != nil {
		return summary, fmt.Errorf("failed to create output directory %s: %w", r.settings.Output, err)
	}

	var report *Report
	if r.settings.CSVPath != "" {
		report, err = NewReport(r.settings.CSVPath)
		if err != nil {
			return summary, err
		}
		defer func() {
			if err := report.Close(); err != nil {
				logger.Errorf("Failed to finalize report %s: %v", r.settings.CSVPath, err)
			}
		}()
	}

	for idx, rel := range samples {
		logger.Infof("[%d/%d] Analyzing %s", idx+1, len(samples), rel)

		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				return summary, err
			}
		}

		analysis, err := r.analyzeSample(rel)
		if err != nil {
			logger.Errorf("Sample %s failed: %v", rel, err)
			summary.Failed++
			report.Add(rel, fmt.Sprintf("[ERROR] %v", err))
			continue
		}

		summary.Processed++
		report.Add(rel, analysis)
	}

	logger.Infof("Run %s complete: %d processed, %d failed", summary.RunID, summary.Processed, summary.Failed)
	return summary, nil
}

// collectSamples returns the relative paths of all matching files under
// the source directory, in lexical order.
func (r *Runner) collectSamples() ([]string, error) {
	var samples []string
	err := filepath.WalkDir(r.settings.Source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), r.settings.FileExt) {
			return nil
		}
		rel, err := filepath.Rel(r.settings.Source, path)
		if err != nil {
			return err
		}
		samples = append(samples, rel)
		return nil
	})
	return samples, err
}

// analyzeSample reads one sample, prompts the model and writes the
// response file. The returned string is the raw response content.
func (r *Runner) analyzeSample(rel string) (string, error) {
	code, err := os.ReadFile(filepath.Join(r.settings.Source, rel))
	if err != nil {
		return "", fmt.Errorf("Could not read file: %w", err)
	}

	resp := r.client.Prompt(llm.Request{
		SystemPrompt: smell.SystemPrompt,
		UserPrompt:   r.category.Render(string(code)),
	})
	if resp.Error != nil {
		return "", fmt.Errorf("API call failed: %w", resp.Error)
	}

	outPath := filepath.Join(r.settings.Output, OutputName(rel))
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("Could not create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, []byte(resp.Content), 0o644); err != nil {
		return "", fmt.Errorf("Could not write output: %w", err)
	}

	return resp.Content, nil
}

// OutputName maps a sample's relative path to its response file name:
// the extension is replaced with .txt, subdirectories are preserved.
func OutputName(rel string) string {
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + OutputExt
}
