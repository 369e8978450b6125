package parser

import (
	"testing"

	"github.com/kodeforge/redfa/internal/acceptor"
)

func mustParse(t *testing.T, v Variant, pattern string) bool {
	t.Helper()
	_, err := New(v).Parse(pattern)
	return err == nil
}

func accepts(t *testing.T, v Variant, pattern, input string) bool {
	t.Helper()
	n, err := New(v).Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) under variant %s failed: %v", pattern, v, err)
	}
	return acceptor.NFAAccept(n, input)
}

func TestVariantAStar(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"a", true},
		{"aa", true},
		{"aaaaaa", true},
		{"b", false},
		{"ab", false},
	}
	for _, c := range cases {
		got := accepts(t, VariantA, "a*", c.input)
		if got != c.want {
			t.Errorf("VariantA a* accept(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestVariantBAlternation(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"ab", true},
		{"cd", true},
		{"abcd", false},
		{"a", false},
		{"", false},
	}
	for _, c := range cases {
		got := accepts(t, VariantB, "ab|cd", c.input)
		if got != c.want {
			t.Errorf("VariantB ab|cd accept(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestVariantAPlusAlternation(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"ab", true},
		{"cd", true},
		{"abcd", false},
		{"a", false},
		{"bc", false},
		{"", false},
	}
	for _, c := range cases {
		got := accepts(t, VariantA, "ab+cd", c.input)
		if got != c.want {
			t.Errorf("VariantA ab+cd accept(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestEscapedMetacharacter(t *testing.T) {
	// `(c+C)(\+\+)\+*` in Variant A: literal "++" followed by zero or more "+".
	cases := []struct {
		input string
		want  bool
	}{
		{"c++", true},
		{"C++", true},
		{"c+++", true},
		{"c++++", true},
		{"c+", false},
		{"c", false},
		{"C#", false},
		{"", false},
	}
	for _, c := range cases {
		got := accepts(t, VariantA, `(c+C)(\+\+)\+*`, c.input)
		if got != c.want {
			t.Errorf(`accept(%q) = %v, want %v`, c.input, got, c.want)
		}
	}
}

func TestNestedGroupAndClosure(t *testing.T) {
	// `a(b+c)*d` in Variant A.
	cases := []struct {
		input string
		want  bool
	}{
		{"ad", true},
		{"abd", true},
		{"acd", true},
		{"abbccd", true},
		{"a", false},
		{"d", false},
		{"abc", false},
	}
	for _, c := range cases {
		got := accepts(t, VariantA, "a(b+c)*d", c.input)
		if got != c.want {
			t.Errorf("accept(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestUnbalancedParenthesis(t *testing.T) {
	_, err := New(VariantA).Parse("(ab")
	if err == nil {
		t.Fatal("expected a parse error for an unbalanced parenthesis")
	}
}

func TestDanglingEscape(t *testing.T) {
	_, err := New(VariantA).Parse(`a\`)
	if err == nil {
		t.Fatal("expected a parse error for a dangling escape")
	}
}

func TestBadEscape(t *testing.T) {
	_, err := New(VariantA).Parse(`\z`)
	if err == nil {
		t.Fatal("expected a parse error for an escape of a non-special character")
	}
}

func TestUnexpectedMetacharacter(t *testing.T) {
	_, err := New(VariantA).Parse("a*b)c")
	if err == nil {
		t.Fatal("expected a parse error for a stray close parenthesis")
	}
}

func TestVariantBIgnoresUnescapedSpace(t *testing.T) {
	if !accepts(t, VariantB, "a b", "ab") {
		t.Error("VariantB should treat unescaped space as insignificant")
	}
}

func TestVariantBEscapedSpaceIsLiteral(t *testing.T) {
	if !accepts(t, VariantB, `a\sb`, "a b") {
		t.Error(`VariantB \s should match a literal space`)
	}
	if accepts(t, VariantB, `a\sb`, "ab") {
		t.Error(`VariantB \s should not match the empty string in its place`)
	}
}

func TestVariantSelectsAlphabet(t *testing.T) {
	if !VariantA.Alphabet().Contains(' ') {
		t.Error("VariantA's alphabet should include space")
	}
	if VariantB.Alphabet().Contains(' ') {
		t.Error("VariantB's alphabet should exclude space (it's ignorable syntax)")
	}
}

func TestParserReusableConcurrently(t *testing.T) {
	p := New(VariantA)
	done := make(chan error, 2)
	go func() {
		_, err := p.Parse("a*")
		done <- err
	}()
	go func() {
		_, err := p.Parse("(a+b)*")
		done <- err
	}()
	for i := 0; i < 2; i++ {
		if err := <-done; err != nil {
			t.Errorf("concurrent Parse failed: %v", err)
		}
	}
}
