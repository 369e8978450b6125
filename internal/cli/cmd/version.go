package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kodeforge/redfa"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version information for the redfa CLI tool.`,
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("redfa version %s\n", redfa.FullVersion())
	fmt.Printf("Regex-to-minimal-DFA compiler\n")
}
