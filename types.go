package redfa

import "github.com/kodeforge/redfa/internal/parser"

// Variant selects which of the two documented grammars Compile parses.
type Variant int

const (
	// VariantA recognizes the no-bracket grammar where `+` is alternation
	// and the alphabet spans space (0x20) through `~` (0x7E).
	VariantA Variant = Variant(parser.VariantA)

	// VariantB recognizes the bracket-class grammar where `|` is
	// alternation, `[...]` character classes are supported, and the
	// alphabet spans `!` (0x21) through `~` (0x7E); unescaped space is
	// ignored and `\s` denotes a literal space.
	VariantB Variant = Variant(parser.VariantB)
)

func (v Variant) String() string {
	return parser.Variant(v).String()
}

// Options configures Compile.
type Options struct {
	// Variant selects the grammar. Default: VariantB.
	Variant Variant

	// Minimize controls whether the subset-construction DFA is reduced
	// by Hopcroft-style partition refinement before being returned.
	// Default: true.
	Minimize bool

	// MaxPatternLength caps how many bytes of regex source Compile will
	// accept before failing fast with ErrPatternTooLong, independent of
	// any syntax error the pattern might also contain. Zero means no
	// limit. Default: 4096.
	MaxPatternLength int
}

// DefaultOptions returns the recommended configuration: Variant B syntax,
// minimization enabled, and a generous pattern-length cap.
func DefaultOptions() *Options {
	return &Options{
		Variant:          VariantB,
		Minimize:         true,
		MaxPatternLength: 4096,
	}
}

// Report describes the size of the automaton at each stage of compiling a
// pattern: useful for diagnostics and for the CLI's `compile` command.
type Report struct {
	NFAStates        int
	SubsetDFAStates  int
	MinimizedStates  int
	AlphabetSize     int
	ReductionPercent float64
}
