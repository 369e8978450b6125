package redfa

import (
	"fmt"

	"github.com/kodeforge/redfa/internal/metrics"
	"github.com/kodeforge/redfa/internal/minimize"
	"github.com/kodeforge/redfa/internal/parser"
	"github.com/kodeforge/redfa/internal/subset"
)

// Compile parses pattern under the default options (Variant B, minimized)
// and returns the resulting DFA.
func Compile(pattern string) (*DFA, error) {
	return CompileWithOptions(pattern, DefaultOptions())
}

// CompileWithOptions runs the full pipeline -- parse, subset-construct,
// and optionally minimize -- and returns the resulting DFA, or a
// *ParseError if pattern does not belong to the chosen grammar.
func CompileWithOptions(pattern string, opts *Options) (*DFA, error) {
	dfa, _, err := compile(pattern, opts, false)
	return dfa, err
}

// MustCompile is like Compile but panics on error. Useful for static
// patterns known at init time.
func MustCompile(pattern string) *DFA {
	d, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return d
}

// Inspect compiles pattern like CompileWithOptions but also returns a
// Report describing the automaton's size at each pipeline stage.
func Inspect(pattern string, opts *Options) (*DFA, *Report, error) {
	return compile(pattern, opts, true)
}

func compile(pattern string, opts *Options, withReport bool) (*DFA, *Report, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.MaxPatternLength > 0 && len(pattern) > opts.MaxPatternLength {
		return nil, nil, fmt.Errorf("%w: %d > %d", ErrPatternTooLong, len(pattern), opts.MaxPatternLength)
	}

	p := parser.New(parser.Variant(opts.Variant))
	nfa, err := p.Parse(pattern)
	if err != nil {
		return nil, nil, fromInternal(err)
	}

	alphabet := parser.Variant(opts.Variant).Alphabet()
	subsetDFA := subset.Construct(nfa, alphabet)

	finalDFA := subsetDFA
	if opts.Minimize {
		finalDFA = minimize.Minimize(subsetDFA)
	}

	dfa := &DFA{automaton: finalDFA, source: pattern}
	if !withReport {
		return dfa, nil, nil
	}

	rep := metrics.Compute(nfa, subsetDFA, finalDFA, nil)
	return dfa, &Report{
		NFAStates:        rep.NFAStates,
		SubsetDFAStates:  rep.SubsetDFAStates,
		MinimizedStates:  rep.MinimizedStates,
		AlphabetSize:     rep.AlphabetSize,
		ReductionPercent: rep.ReductionPercent,
	}, nil
}
