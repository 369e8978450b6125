package subset

import (
	"testing"

	"github.com/kodeforge/redfa/internal/acceptor"
	"github.com/kodeforge/redfa/internal/automaton"
	"github.com/kodeforge/redfa/internal/parser"
)

// compileToDFA parses pattern and runs subset construction, returning both
// the source NFA and the resulting DFA so callers can check agreement.
func compileToDFA(t *testing.T, pattern string) (*automaton.NFA, *automaton.DFA) {
	t.Helper()
	p := parser.New(parser.VariantA)
	n, err := p.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", pattern, err)
	}
	d := Construct(n, parser.VariantA.Alphabet())
	return n, d
}

func TestConstructAgreesWithNFA(t *testing.T) {
	cases := []struct {
		pattern string
		inputs  []string
	}{
		{"a*", []string{"", "a", "aa", "aaaaaa", "b", "ab"}},
		{"(a+b)*", []string{"", "a", "b", "ab", "ba", "ababba", "c", "aabc"}},
		{"a(b+c)*d", []string{"ad", "abd", "acd", "abbccd", "a", "d", "abc"}},
	}
	for _, c := range cases {
		n, d := compileToDFA(t, c.pattern)
		for _, in := range c.inputs {
			want := acceptor.NFAAccept(n, in)
			got := acceptor.Accept(d, in)
			if got != want {
				t.Errorf("pattern %q: DFA.Accept(%q) = %v, want %v (NFA)", c.pattern, in, got, want)
			}
		}
	}
}

func TestConstructHasDeterministicStart(t *testing.T) {
	_, d := compileToDFA(t, "ab")
	if d.Start != 0 {
		t.Errorf("expected start state 0, got %d", d.Start)
	}
}

func TestConstructNoEmptySubsetMaterialized(t *testing.T) {
	// "a" rejects any input starting with a symbol other than 'a'; the DFA
	// should use the implicit trap rather than a materialized dead state.
	_, d := compileToDFA(t, "a")
	if _, ok := d.Next(d.Start, 'b'); ok {
		t.Error("expected no explicit transition on a rejecting symbol")
	}
}

func TestKeyIsOrderIndependent(t *testing.T) {
	a := map[automaton.StateID]struct{}{2: {}, 0: {}, 1: {}}
	b := map[automaton.StateID]struct{}{1: {}, 2: {}, 0: {}}
	if key(a) != key(b) {
		t.Errorf("key should be independent of map iteration order: %q vs %q", key(a), key(b))
	}
}
