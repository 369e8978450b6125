// Package output formats CLI results: compiled-pattern reports, per-string
// verdicts, and diagnostics, colored when the terminal supports it.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/kodeforge/redfa"
)

// Formatter writes CLI output to stdout/stderr, honoring a text-vs-JSON
// format switch and a no-color override.
type Formatter struct {
	writer  io.Writer
	format  string
	noColor bool
}

// NewFormatter creates a formatter. format is "text" or "json"; any other
// value falls back to "text". If noColor is true, ANSI color codes are
// suppressed regardless of terminal detection.
func NewFormatter(format string, noColor bool) *Formatter {
	if noColor {
		color.NoColor = true
	}
	return &Formatter{writer: os.Stdout, format: format, noColor: noColor}
}

// CompileResult is what the `compile` command reports for one pattern.
type CompileResult struct {
	Pattern string
	Variant string
	Report  *redfa.Report
}

// FormatCompileResult prints a compiled pattern's stage-by-stage sizes.
func (f *Formatter) FormatCompileResult(result *CompileResult) error {
	if f.format == "json" {
		enc := json.NewEncoder(f.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(f.writer, "pattern:    %s\n", f.colorize(result.Pattern, color.FgCyan))
	fmt.Fprintf(f.writer, "variant:    %s\n", result.Variant)
	fmt.Fprintf(f.writer, "nfa states: %d\n", result.Report.NFAStates)
	fmt.Fprintf(f.writer, "dfa states: %d (subset construction)\n", result.Report.SubsetDFAStates)
	fmt.Fprintf(f.writer, "minimized:  %d (%.1f%% reduction)\n", result.Report.MinimizedStates, result.Report.ReductionPercent)
	return nil
}

// PrintAccepted prints the verdict for one test string, green when color
// is enabled.
func (f *Formatter) PrintAccepted(s string) {
	fmt.Fprintf(f.writer, "%-24q %s\n", s, f.colorize("accepted", color.FgGreen))
}

// PrintRejected prints the verdict for one test string, red when color is
// enabled.
func (f *Formatter) PrintRejected(s string) {
	fmt.Fprintf(f.writer, "%-24q %s\n", s, f.colorize("not accepted", color.FgRed))
}

func (f *Formatter) colorize(text string, attr color.Attribute) string {
	if f.noColor {
		return text
	}
	return color.New(attr).Sprint(text)
}

// PrintError prints a diagnostic to stderr.
func (f *Formatter) PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "%s %s\n", f.colorize("error:", color.FgRed), msg)
}

// PrintInfo prints an informational line to stdout.
func (f *Formatter) PrintInfo(format string, args ...interface{}) {
	fmt.Fprintf(f.writer, format+"\n", args...)
}
