/*
Package redfa compiles printable-ASCII regular expressions into minimal
deterministic finite automata.

# Overview

redfa implements the classic pipeline from formal language theory end to
end: a hand-written recursive-descent parser builds a Thompson NFA
directly from the regex source, subset construction turns that NFA into an
equivalent DFA, and Hopcroft-style partition refinement reduces the DFA to
its minimal form. The result is a small, immutable value that answers
membership queries in time linear in the input, with no backtracking.

# Quick Start

	import "github.com/kodeforge/redfa"

	dfa, err := redfa.Compile("(c|C)(++)+*")
	if err != nil {
	    return err
	}
	if dfa.Accept("c++++") {
	    fmt.Println("matched")
	}

# Grammar Variants

redfa recognizes two grammars, selected via Options.Variant:

  - VariantA: concatenation by juxtaposition, `+` for alternation, `*` for
    Kleene closure, `(...)` for grouping, `\` to escape a metacharacter.
    No bracket classes. Alphabet: space (0x20) through `~` (0x7E).

  - VariantB: the same core grammar, but `|` is alternation instead of
    `+`, and `[...]` bracket expressions are supported, including `^`
    complement and `a-b` ranges. Unescaped space is insignificant
    whitespace; `\s` denotes a literal space. Alphabet: `!` (0x21) through
    `~` (0x7E).

Neither grammar supports capture groups, anchors, backreferences,
lookaround, Unicode, or `{m,n}` repetition counts -- the language a
pattern describes is always a regular language over a fixed finite
alphabet, which is what makes DFA compilation possible in the first
place.

# Configuration

	opts := &redfa.Options{
	    Variant:          redfa.VariantB,
	    Minimize:         true,
	    MaxPatternLength: 4096,
	}
	dfa, err := redfa.CompileWithOptions(pattern, opts)

# Inspecting the Pipeline

Inspect returns the same DFA as Compile, plus a Report describing how many
states existed at each stage:

	dfa, report, err := redfa.Inspect(pattern, nil)
	if err != nil {
	    return err
	}
	fmt.Printf("%d NFA states -> %d DFA states -> %d minimal states (%.1f%% reduction)\n",
	    report.NFAStates, report.SubsetDFAStates, report.MinimizedStates, report.ReductionPercent)

# Error Handling

Compile returns a *ParseError (with Pattern, Offset, and Reason fields)
when the input does not belong to the selected grammar, or the sentinel
ErrPatternTooLong when it exceeds Options.MaxPatternLength. A *ParseError
whose IsEmptyBracket() is true specifically means a bracket expression,
after any `^` complement was applied, matched no characters.

# Thread Safety

A compiled *DFA is immutable and safe to share across goroutines. Compile
itself allocates no shared state, so concurrent calls never interfere
with each other.

# Version Information

	fmt.Println(redfa.FullVersion())
*/
package redfa
