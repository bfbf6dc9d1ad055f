package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smellscan/smellscan/common"
	"github.com/smellscan/smellscan/llm"
	"github.com/smellscan/smellscan/logger"
	"github.com/smellscan/smellscan/runner"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a directory of code samples for one smell category",
	Long: `Read every matching file under the source directory, render it into
the prompt template of the selected smell category, submit the prompt to the
configured provider and save the raw response to the output directory.

The endpoint credential is read from the LLM_API_KEY environment variable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		settings := parseSettings(cmd)
		logger.Debugf("Using settings: %+v", settings)

		llmClient, err := llm.NewLLM(settings.Provider, settings.Model,
			llm.WithMaxTokens(settings.MaxTokens),
			llm.WithTemperature(settings.Temperature),
			llm.WithAPITimeout(settings.APITimeout),
			llm.WithRetryMax(settings.RetryMax),
		)
		if err != nil {
			return fmt.Errorf("failed to create client for provider: %w", err)
		}

		run, err := runner.New(settings, llmClient)
		if err != nil {
			return err
		}

		summary, err := run.Run(cmd.Context())
		if err != nil {
			return err
		}

		if summary.Failed > 0 {
			logger.Warnf("%d of %d samples failed; rerun to retry them", summary.Failed, summary.Total)
		}
		return nil
	},
}

// parseSettings merges the settings file with the command line flags.
// Flags win over the file, the file wins over defaults.
func parseSettings(cmd *cobra.Command) common.Settings {
	settings := common.WithYamlFile()

	if v, _ := cmd.Flags().GetString("source"); v != "" {
		settings.Source = v
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		settings.Output = v
	}
	if v, _ := cmd.Flags().GetString("csv"); v != "" {
		settings.CSVPath = v
	}
	if v, _ := cmd.Flags().GetString("smell"); v != "" {
		settings.Smell = v
	}
	if v, _ := cmd.Flags().GetString("provider"); v != "" {
		settings.Provider = v
	}
	if v, _ := cmd.Flags().GetString("model"); v != "" {
		settings.Model = v
	}
	if v, _ := cmd.Flags().GetString("ext"); v != "" {
		settings.FileExt = v
	}
	if cmd.Flags().Changed("rpm") {
		settings.RequestsPerMinute, _ = cmd.Flags().GetInt("rpm")
	}

	return settings
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("source", "s", "", "Directory of code samples to analyze")
	analyzeCmd.Flags().StringP("output", "o", "", "Directory the response files are written to")
	analyzeCmd.Flags().String("csv", "", "Optional path of the CSV report")
	analyzeCmd.Flags().String("smell", "", "Smell category to analyze for (see 'smellscan smells')")
	analyzeCmd.Flags().StringP("provider", "p", "", "LLM provider (openai, huggingface, anthropic)")
	analyzeCmd.Flags().StringP("model", "m", "", "Model identifier")
	analyzeCmd.Flags().String("ext", "", "File extension of the samples (default .java)")
	analyzeCmd.Flags().Int("rpm", 0, "Throttle endpoint calls to this many requests per minute (0 = unlimited)")
}
