// Package metrics reports structural statistics about a compiled
// automaton: how many states each pipeline stage produced and how much
// minimization shrank the result. It has no bearing on whether a pattern
// is accepted; it exists to make the compilation pipeline observable.
package metrics

import "github.com/kodeforge/redfa/internal/automaton"

// Options configures which figures Compute includes in a Report.
type Options struct {
	// IncludeAlphabetSize adds the alphabet's size to the report.
	IncludeAlphabetSize bool
}

// Report holds per-stage state counts for one compiled pattern.
type Report struct {
	NFAStates        int
	SubsetDFAStates  int
	MinimizedStates  int
	AlphabetSize     int
	ReductionPercent float64
}

// Compute builds a Report from the three automata produced while
// compiling a pattern: the Thompson NFA, the subset-construction DFA, and
// the minimized DFA.
func Compute(nfa *automaton.NFA, subsetDFA, minDFA *automaton.DFA, opts *Options) *Report {
	if opts == nil {
		opts = &Options{IncludeAlphabetSize: true}
	}

	r := &Report{
		NFAStates:       len(nfa.States),
		SubsetDFAStates: subsetDFA.NumStates(),
		MinimizedStates: minDFA.NumStates(),
	}
	if opts.IncludeAlphabetSize {
		r.AlphabetSize = subsetDFA.Alphabet.Size()
	}
	if r.SubsetDFAStates > 0 {
		r.ReductionPercent = 100 * float64(r.SubsetDFAStates-r.MinimizedStates) / float64(r.SubsetDFAStates)
	}
	return r
}
