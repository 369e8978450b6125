// Package acceptor runs a compiled automaton over an input string.
package acceptor

import "github.com/kodeforge/redfa/internal/automaton"

// Accept reports whether input belongs to the language d recognizes.
// Hitting the implicit trap (no transition defined) short-circuits to
// false without reading the rest of input.
func Accept(d *automaton.DFA, input string) bool {
	state := d.Start
	for i := 0; i < len(input); i++ {
		next, ok := d.Next(state, input[i])
		if !ok {
			return false
		}
		state = next
	}
	return d.States[state].Accepting
}

// NFAAccept runs an NFA directly, simulating the full set of active states
// rather than building a DFA first. It exists so tests can check that the
// NFA, the subset-construction DFA, and the minimized DFA all agree on the
// same input.
func NFAAccept(n *automaton.NFA, input string) bool {
	current := n.EpsilonClosure(n.Start)
	for i := 0; i < len(input); i++ {
		next := map[automaton.StateID]struct{}{}
		for s := range current {
			if to, ok := n.Delta(s, input[i]); ok {
				for e := range n.EpsilonClosure(to) {
					next[e] = struct{}{}
				}
			}
		}
		current = next
	}
	_, ok := current[n.Accept]
	return ok
}
