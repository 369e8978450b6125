// Command redfa compiles a regular expression into a minimal DFA and
// tests strings against it, interactively or from the command line.
package main

import (
	"os"

	"github.com/kodeforge/redfa/internal/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
