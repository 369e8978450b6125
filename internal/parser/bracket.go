package parser

import (
	"sort"

	"github.com/kodeforge/redfa/internal/automaton"
	"github.com/kodeforge/redfa/internal/thompson"
)

// bracket recognizes a Variant B bracket expression: `[` an optional `^`
// complement, one or more elements (single characters or `a-b` ranges),
// and a closing `]`. A literal `]` is included by placing it first in the
// body; a literal `-` is included by placing it last.
func (s *state) bracket() (*automaton.NFA, error) {
	start := s.pos
	s.pos++ // consume '['

	negate := false
	if s.pos < len(s.input) && s.input[s.pos] == '^' {
		negate = true
		s.pos++
	}

	set := map[byte]struct{}{}
	first := true
	for {
		if s.pos >= len(s.input) {
			return nil, s.errAt(start, "unterminated bracket expression")
		}
		c := s.input[s.pos]
		if c == ']' && !first {
			s.pos++
			break
		}
		first = false

		lo := c
		s.pos++

		if s.pos < len(s.input) && s.input[s.pos] == '-' && s.pos+1 < len(s.input) && s.input[s.pos+1] != ']' {
			s.pos++ // consume '-'
			hi := s.input[s.pos]
			if hi < lo {
				return nil, s.errAt(start, "reversed range in bracket expression")
			}
			for ch := lo; ch <= hi; ch++ {
				set[ch] = struct{}{}
			}
			s.pos++
		} else {
			set[lo] = struct{}{}
		}
	}

	if negate {
		alphabet := s.variant.Alphabet()
		complement := map[byte]struct{}{}
		for c := alphabet.Lo; ; c++ {
			if _, excluded := set[c]; !excluded {
				complement[c] = struct{}{}
			}
			if c == alphabet.Hi {
				break
			}
		}
		set = complement
	}

	if len(set) == 0 {
		return nil, &EmptyBracketError{ParseError: *s.errAt(start, "bracket expression matches no characters")}
	}

	chars := make([]byte, 0, len(set))
	for c := range set {
		chars = append(chars, c)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

	n := thompson.Literal(chars[0])
	for _, c := range chars[1:] {
		n = thompson.Alternate(n, thompson.Literal(c))
	}
	return n, nil
}
