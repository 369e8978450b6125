// Package minimize reduces a DFA to its minimal equivalent using
// Hopcroft-style partition refinement: states start split only into
// accepting and non-accepting blocks, and blocks keep getting split apart
// by their per-symbol transition behavior until a full pass leaves every
// block unchanged.
package minimize

import "github.com/kodeforge/redfa/internal/automaton"

// Minimize returns a new DFA equivalent to d with no two
// behaviorally-indistinguishable states merged apart, and no two
// behaviorally-identical states left distinct.
func Minimize(d *automaton.DFA) *automaton.DFA {
	partition := initialPartition(d)

	for {
		changed := false
		// A block appended mid-loop (by a split below) is visited in the
		// same pass; this matches refining until the pass itself settles,
		// not just a fixed iteration count over the starting blocks.
		for i := 0; i < len(partition); i++ {
			if split(d, &partition, i) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return rebuild(d, partition)
}

func initialPartition(d *automaton.DFA) []map[automaton.StateID]struct{} {
	accepting := map[automaton.StateID]struct{}{}
	rejecting := map[automaton.StateID]struct{}{}
	for i, st := range d.States {
		id := automaton.StateID(i)
		if st.Accepting {
			accepting[id] = struct{}{}
		} else {
			rejecting[id] = struct{}{}
		}
	}

	var partition []map[automaton.StateID]struct{}
	if len(accepting) > 0 {
		partition = append(partition, accepting)
	}
	if len(rejecting) > 0 {
		partition = append(partition, rejecting)
	}
	return partition
}

// blockIndex returns the index of the block containing state, or -1 if
// there is no transition (the implicit trap is its own distinguishable
// "block").
func blockIndex(partition []map[automaton.StateID]struct{}, state automaton.StateID, ok bool) int {
	if !ok {
		return -1
	}
	for i, block := range partition {
		if _, found := block[state]; found {
			return i
		}
	}
	return -1
}

// split looks for one symbol that distinguishes two states inside
// partition[i] and, if found, carves out every state in the block sharing
// the divergent state's behavior into a new trailing block. It performs at
// most one split and returns whether it split anything, mirroring the
// "first divergence wins, one split per (block, symbol) scan" shape of
// the algorithm this is grounded on.
func split(d *automaton.DFA, partition *[]map[automaton.StateID]struct{}, i int) bool {
	block := (*partition)[i]
	if len(block) < 2 {
		return false
	}

	ordered := make([]automaton.StateID, 0, len(block))
	for s := range block {
		ordered = append(ordered, s)
	}

	for c := d.Alphabet.Lo; ; c++ {
		ref, ok := d.Next(ordered[0], c)
		refSig := blockIndex(*partition, ref, ok)

		for _, s := range ordered[1:] {
			to, ok := d.Next(s, c)
			sig := blockIndex(*partition, to, ok)
			if sig == refSig {
				continue
			}

			diverged := map[automaton.StateID]struct{}{}
			for _, x := range ordered {
				xto, xok := d.Next(x, c)
				if blockIndex(*partition, xto, xok) == sig {
					diverged[x] = struct{}{}
				}
			}
			for x := range diverged {
				delete(block, x)
			}
			*partition = append(*partition, diverged)
			return true
		}

		if c == d.Alphabet.Hi {
			break
		}
	}

	return false
}

// rebuild constructs a fresh DFA with one state per block in partition.
// When several old states in a block would define the new state's
// transition for the same symbol (they must agree, by the
// distinguishability invariant split enforces), the first one encountered
// wins; later ones are a no-op.
func rebuild(d *automaton.DFA, partition []map[automaton.StateID]struct{}) *automaton.DFA {
	blockOf := map[automaton.StateID]int{}
	for i, block := range partition {
		for s := range block {
			blockOf[s] = i
		}
	}

	out := automaton.NewDFA(d.Alphabet)
	for _, block := range partition {
		accepting := false
		for s := range block {
			accepting = d.States[s].Accepting
			break
		}
		out.NewState(accepting)
	}

	for i, block := range partition {
		newID := automaton.StateID(i)
		for s := range block {
			if s == d.Start {
				out.Start = newID
			}
			for c := d.Alphabet.Lo; ; c++ {
				if to, ok := d.Next(s, c); ok {
					if _, already := out.Next(newID, c); !already {
						out.SetTransition(newID, c, automaton.StateID(blockOf[to]))
					}
				}
				if c == d.Alphabet.Hi {
					break
				}
			}
		}
	}

	return out
}
