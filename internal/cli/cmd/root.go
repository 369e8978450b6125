package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kodeforge/redfa"
	"github.com/kodeforge/redfa/internal/cli/output"
)

var (
	// Global flags
	outputFormat string
	variantFlag  string
	noMinimize   bool
	noColor      bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "redfa",
	Short: "Compile printable-ASCII regular expressions to minimal DFAs",
	Long: `redfa compiles a regular expression into a deterministic finite
automaton and tests input strings against it.

Run with no subcommand for an interactive loop: the first line is the
regex, and every line after that is tested against the compiled pattern
until you type quit. quit (or end of input) on the regex prompt ends the
program.`,
	Version: redfa.FullVersion(),
	RunE:    runREPL,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text|json)")
	rootCmd.PersistentFlags().StringVarP(&variantFlag, "variant", "g", "b", "Grammar variant (a|b)")
	rootCmd.PersistentFlags().BoolVar(&noMinimize, "no-minimize", false, "Skip Hopcroft minimization")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable color output")
}

func optionsFromFlags() *redfa.Options {
	opts := redfa.DefaultOptions()
	if strings.EqualFold(variantFlag, "a") {
		opts.Variant = redfa.VariantA
	} else {
		opts.Variant = redfa.VariantB
	}
	opts.Minimize = !noMinimize
	return opts
}

func runREPL(cmd *cobra.Command, args []string) error {
	formatter := output.NewFormatter(outputFormat, noColor)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("regex> ")
		if !scanner.Scan() {
			return nil
		}
		line := scanner.Text()
		if line == "quit" {
			return nil
		}

		dfa, err := redfa.CompileWithOptions(line, optionsFromFlags())
		if err != nil {
			formatter.PrintError("%v", err)
			continue
		}

		for {
			fmt.Print("string> ")
			if !scanner.Scan() {
				return nil
			}
			test := scanner.Text()
			if test == "quit" {
				break
			}
			if dfa.Accept(test) {
				formatter.PrintAccepted(test)
			} else {
				formatter.PrintRejected(test)
			}
		}
	}
}
