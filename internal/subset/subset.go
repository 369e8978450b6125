// Package subset implements the subset-construction algorithm that turns
// an NFA into an equivalent DFA: every reachable epsilon-closed subset of
// NFA states becomes one DFA state.
package subset

import (
	"sort"
	"strconv"
	"strings"

	"github.com/kodeforge/redfa/internal/automaton"
)

// key canonicalizes an NFA-state subset into a sorted, comma-joined string
// so it can be used as a map key regardless of set-iteration order.
func key(states map[automaton.StateID]struct{}) string {
	ids := make([]int, 0, len(states))
	for s := range states {
		ids = append(ids, int(s))
	}
	sort.Ints(ids)

	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

// Construct runs subset construction on n over alphabet, producing a DFA
// whose states are exactly the reachable epsilon-closed subsets of n's
// states. Unreachable subsets, including the empty one, are never
// materialized: an absent transition is the implicit trap.
func Construct(n *automaton.NFA, alphabet automaton.Alphabet) *automaton.DFA {
	d := automaton.NewDFA(alphabet)

	ids := map[string]automaton.StateID{}
	sets := map[string]map[automaton.StateID]struct{}{}

	startSet := n.EpsilonClosure(n.Start)
	startKey := key(startSet)
	_, startAccepts := startSet[n.Accept]

	d.Start = d.NewState(startAccepts)
	ids[startKey] = d.Start
	sets[startKey] = startSet

	work := []string{startKey}
	for len(work) > 0 {
		k := work[0]
		work = work[1:]
		fromSet := sets[k]
		fromID := ids[k]

		for c := alphabet.Lo; ; c++ {
			target := map[automaton.StateID]struct{}{}
			for s := range fromSet {
				if to, ok := n.Delta(s, c); ok {
					for e := range n.EpsilonClosure(to) {
						target[e] = struct{}{}
					}
				}
			}

			if len(target) > 0 {
				tk := key(target)
				toID, seen := ids[tk]
				if !seen {
					_, accepts := target[n.Accept]
					toID = d.NewState(accepts)
					ids[tk] = toID
					sets[tk] = target
					work = append(work, tk)
				}
				d.SetTransition(fromID, c, toID)
			}

			if c == alphabet.Hi {
				break
			}
		}
	}

	return d
}
