package cmd

import (
	"fmt"

	"github.com/smellscan/smellscan/smell"
	"github.com/spf13/cobra"
)

var smellsCmd = &cobra.Command{
	Use:   "smells",
	Short: "List the supported smell categories",
	Long:  `Display the smell categories accepted by the --smell flag of 'smellscan analyze'.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, s := range smell.All() {
			fmt.Fprintf(out, "%-22s %s\n", s.ID, s.Name)
			fmt.Fprintf(out, "%-22s %s\n", "", s.Definition)
		}
	},
}

func init() {
	rootCmd.AddCommand(smellsCmd)
}
