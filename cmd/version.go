package cmd

import (
	"fmt"

	"github.com/smellscan/smellscan/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the version of smellscan`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("smellscan v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
