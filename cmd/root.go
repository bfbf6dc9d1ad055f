package cmd

import (
	"github.com/smellscan/smellscan/logger"
	"github.com/spf13/cobra"
)

var (
	// Command line flags
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "smellscan",
	Short: "smellscan - batch code smell analysis with hosted LLMs",
	Long: `smellscan sends source code samples to a hosted language model, one
prompt per file, asking for symptoms of a chosen code smell category.
Responses are saved verbatim, one output file per input file, with an
optional CSV report covering the whole run.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger with the specified log level
		logger.Init(logLevel)
		logger.Debugf("Log level set to: %s", logLevel)
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior when no subcommands are provided
		cmd.Help()
	},
}

// Execute runs the root command and handles errors
func Execute() error {
	// Subcommands are added in their respective init() functions
	return rootCmd.Execute()
}

func init() {
	// Add persistent flags that will be available to all subcommands
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Set the logging level (debug, info, warn, error, dpanic, panic, fatal)")
}
