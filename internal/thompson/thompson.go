// Package thompson builds NFAs out of the four combinators Thompson's
// construction needs: a literal, concatenation, alternation, and closure.
// Each combinator owns its operands: after calling Concatenate, Alternate,
// or Close, the NFA values passed in must not be used again on their own.
package thompson

import "github.com/kodeforge/redfa/internal/automaton"

// Literal returns a two-state NFA that accepts exactly the single symbol c.
func Literal(c byte) *automaton.NFA {
	n := automaton.New()
	start := n.NewState()
	accept := n.NewState()
	n.AddTransition(start, c, accept)
	n.Start, n.Accept = start, accept
	return n
}

// Concatenate splices b's states onto the end of a, links a's accept state
// to b's (shifted) start state by epsilon, and returns a with its accept
// state now at b's former accept state. Consumes both a and b.
func Concatenate(a, b *automaton.NFA) *automaton.NFA {
	offset := automaton.StateID(len(a.States))
	a.States = append(a.States, automaton.Offset(b.States, offset)...)
	a.AddEpsilon(a.Accept, b.Start+offset)
	a.Accept = b.Accept + offset
	return a
}

// Alternate builds a new start/accept pair that epsilon-branches into a and
// b and epsilon-joins their accept states. Consumes both a and b.
func Alternate(a, b *automaton.NFA) *automaton.NFA {
	offset := automaton.StateID(len(a.States))
	a.States = append(a.States, automaton.Offset(b.States, offset)...)
	bStart := b.Start + offset
	bAccept := b.Accept + offset

	start := a.NewState()
	accept := a.NewState()
	a.AddEpsilon(start, a.Start)
	a.AddEpsilon(start, bStart)
	a.AddEpsilon(a.Accept, accept)
	a.AddEpsilon(bAccept, accept)

	a.Start, a.Accept = start, accept
	return a
}

// Close builds the Kleene closure of a in place: zero or more repetitions,
// via a loop-back, loop-entry, and loop-skip epsilon. Consumes a.
func Close(a *automaton.NFA) *automaton.NFA {
	oldStart, oldAccept := a.Start, a.Accept

	start := a.NewState()
	accept := a.NewState()

	a.AddEpsilon(oldAccept, oldStart)
	a.AddEpsilon(start, oldStart)
	a.AddEpsilon(oldAccept, accept)
	a.AddEpsilon(start, accept)

	a.Start, a.Accept = start, accept
	return a
}
