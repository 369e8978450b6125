package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kodeforge/redfa"
	"github.com/kodeforge/redfa/internal/cli/output"
)

// testCmd represents the test command.
var testCmd = &cobra.Command{
	Use:   "test <pattern> <string>...",
	Short: "Compile a pattern and test it against one or more strings",
	Example: `  # Test a single string
  redfa test "a*" aaa

  # Test several strings at once
  redfa test --variant=a "(c+C)(\+\+)\+*" "c+++++" "C++" "x"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	formatter := output.NewFormatter(outputFormat, noColor)

	dfa, err := redfa.CompileWithOptions(pattern, optionsFromFlags())
	if err != nil {
		formatter.PrintError("%v", err)
		os.Exit(1)
	}

	allAccepted := true
	for _, s := range args[1:] {
		if dfa.Accept(s) {
			formatter.PrintAccepted(s)
		} else {
			formatter.PrintRejected(s)
			allAccepted = false
		}
	}

	if !allAccepted {
		os.Exit(1)
	}
	return nil
}
