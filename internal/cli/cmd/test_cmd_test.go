package cmd

import (
	"strings"
	"testing"
)

func TestRunTestAllAccepted(t *testing.T) {
	oldFormat, oldVariant, oldColor := outputFormat, variantFlag, noColor
	defer func() { outputFormat, variantFlag, noColor = oldFormat, oldVariant, oldColor }()

	outputFormat = "text"
	variantFlag = "b"
	noColor = true

	out := withCapturedStdout(t, func() {
		if err := runTest(testCmd, []string{"a*", "", "a", "aaaa"}); err != nil {
			t.Fatalf("runTest returned error: %v", err)
		}
	})

	for _, want := range []string{"\"\"", "\"a\"", "\"aaaa\"", "accepted"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}
