package redfa

import (
	"github.com/kodeforge/redfa/internal/acceptor"
	"github.com/kodeforge/redfa/internal/automaton"
)

// DFA is a compiled, deterministic finite automaton. Once built by
// Compile, it is immutable and safe to share across goroutines.
type DFA struct {
	automaton *automaton.DFA
	source    string
}

// Accept reports whether input belongs to the language the DFA
// recognizes.
func (d *DFA) Accept(input string) bool {
	return acceptor.Accept(d.automaton, input)
}

// States returns the number of states in the compiled DFA.
func (d *DFA) States() int {
	return d.automaton.NumStates()
}

// Pattern returns the regex source this DFA was compiled from.
func (d *DFA) Pattern() string {
	return d.source
}

// String renders a short debugging summary.
func (d *DFA) String() string {
	return d.automaton.String()
}
