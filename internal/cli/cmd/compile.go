package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kodeforge/redfa"
	"github.com/kodeforge/redfa/internal/cli/output"
)

var compileCmd = &cobra.Command{
	Use:   "compile <pattern>",
	Short: "Compile a pattern and report the automaton size at each stage",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	opts := optionsFromFlags()
	formatter := output.NewFormatter(outputFormat, noColor)

	_, report, err := redfa.Inspect(pattern, opts)
	if err != nil {
		formatter.PrintError("%v", err)
		os.Exit(1)
	}

	return formatter.FormatCompileResult(&output.CompileResult{
		Pattern: pattern,
		Variant: opts.Variant.String(),
		Report:  report,
	})
}
