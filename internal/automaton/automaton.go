// Package automaton defines the shared graph representation used by every
// stage of the compilation pipeline: the Thompson NFA the parser builds,
// the DFA subset construction produces from it, and the minimized DFA that
// replaces it.
package automaton

import "fmt"

// StateID is a dense, non-negative identifier for a state within a single
// automaton. IDs are never shared across automata: when one automaton
// absorbs another's states, every ID in the absorbed table is rewritten by
// a fixed offset (see Offset).
type StateID int

// Alphabet is the contiguous range of printable ASCII symbols an automaton
// operates over. Two variants are in use: the narrower one (0x21-0x7E)
// excludes space for grammars that give space its own meaning.
type Alphabet struct {
	Lo byte
	Hi byte
}

var (
	// AlphabetWithSpace spans space (0x20) through '~' (0x7E).
	AlphabetWithSpace = Alphabet{Lo: 0x20, Hi: 0x7E}
	// AlphabetNoSpace spans '!' (0x21) through '~' (0x7E).
	AlphabetNoSpace = Alphabet{Lo: 0x21, Hi: 0x7E}
)

// Size returns the number of symbols in the alphabet.
func (a Alphabet) Size() int { return int(a.Hi) - int(a.Lo) + 1 }

// Contains reports whether c belongs to the alphabet.
func (a Alphabet) Contains(c byte) bool { return c >= a.Lo && c <= a.Hi }

func (a Alphabet) index(c byte) int {
	if !a.Contains(c) {
		panic(fmt.Sprintf("automaton: symbol %q outside alphabet [%q-%q]", c, a.Lo, a.Hi))
	}
	return int(c) - int(a.Lo)
}

// NFATransition is a single outgoing edge of an NFA state: either a move on
// a concrete symbol or an epsilon move that consumes no input. Epsilon is a
// tagged field rather than a sentinel byte value, so nothing confuses a
// legitimate symbol with "no symbol".
type NFATransition struct {
	Epsilon bool
	Symbol  byte
	To      StateID
}

// NFAState holds the outgoing transitions of one NFA state.
type NFAState struct {
	Out []NFATransition
}

// NFA is a nondeterministic finite automaton in Thompson form: exactly one
// start state, exactly one accept state, and the accept state has no
// outgoing transitions of its own.
type NFA struct {
	States []NFAState
	Start  StateID
	Accept StateID
}

// New returns an NFA with no states.
func New() *NFA { return &NFA{} }

// NewState appends a fresh, transition-less state and returns its ID.
func (n *NFA) NewState() StateID {
	id := StateID(len(n.States))
	n.States = append(n.States, NFAState{})
	return id
}

// AddTransition records a move from `from` to `to` on `symbol`.
func (n *NFA) AddTransition(from StateID, symbol byte, to StateID) {
	n.States[from].Out = append(n.States[from].Out, NFATransition{Symbol: symbol, To: to})
}

// AddEpsilon records an epsilon move from `from` to `to`.
func (n *NFA) AddEpsilon(from, to StateID) {
	n.States[from].Out = append(n.States[from].Out, NFATransition{Epsilon: true, To: to})
}

// Delta returns the state reached from `state` on `symbol`, if any.
func (n *NFA) Delta(state StateID, symbol byte) (StateID, bool) {
	for _, t := range n.States[state].Out {
		if !t.Epsilon && t.Symbol == symbol {
			return t.To, true
		}
	}
	return 0, false
}

// EpsilonClosure returns every state reachable from `state` via zero or
// more epsilon transitions, via worklist traversal so cycles terminate.
func (n *NFA) EpsilonClosure(state StateID) map[StateID]struct{} {
	closure := map[StateID]struct{}{}
	work := []StateID{state}
	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]
		if _, seen := closure[s]; seen {
			continue
		}
		closure[s] = struct{}{}
		for _, t := range n.States[s].Out {
			if t.Epsilon {
				work = append(work, t.To)
			}
		}
	}
	return closure
}

// EpsilonClosureOfSet unions the epsilon closures of every state in states.
func (n *NFA) EpsilonClosureOfSet(states map[StateID]struct{}) map[StateID]struct{} {
	out := map[StateID]struct{}{}
	for s := range states {
		for c := range n.EpsilonClosure(s) {
			out[c] = struct{}{}
		}
	}
	return out
}

// Offset returns a copy of states with every transition target shifted by
// delta, for splicing one automaton's state table into another during a
// Thompson combinator.
func Offset(states []NFAState, delta StateID) []NFAState {
	out := make([]NFAState, len(states))
	for i, s := range states {
		shifted := make([]NFATransition, len(s.Out))
		for j, t := range s.Out {
			shifted[j] = NFATransition{Epsilon: t.Epsilon, Symbol: t.Symbol, To: t.To + delta}
		}
		out[i] = NFAState{Out: shifted}
	}
	return out
}

// NoState is the sentinel recorded in a DFAState's Trans entry when no
// transition is defined for that symbol. Callers should not compare
// against it directly; use (*DFA).Next, which returns the absence as an
// explicit second return value.
const NoState StateID = -1

// DFAState holds a dense per-symbol transition table plus accept status.
// Trans is indexed by the alphabet-relative symbol offset.
type DFAState struct {
	Trans     []StateID
	Accepting bool
}

// DFA is a deterministic finite automaton: at most one transition per
// state per symbol, and no epsilon transitions.
type DFA struct {
	Alphabet Alphabet
	States   []DFAState
	Start    StateID
}

// NewDFA returns an empty DFA over the given alphabet.
func NewDFA(alphabet Alphabet) *DFA { return &DFA{Alphabet: alphabet} }

// NewState appends a state with every transition unset and returns its ID.
func (d *DFA) NewState(accepting bool) StateID {
	trans := make([]StateID, d.Alphabet.Size())
	for i := range trans {
		trans[i] = NoState
	}
	id := StateID(len(d.States))
	d.States = append(d.States, DFAState{Trans: trans, Accepting: accepting})
	return id
}

// SetTransition records state --symbol--> to.
func (d *DFA) SetTransition(state StateID, symbol byte, to StateID) {
	d.States[state].Trans[d.Alphabet.index(symbol)] = to
}

// Next returns the state reached from `state` on `symbol`. The second
// return value is false when the alphabet doesn't contain symbol or when
// no transition is defined, which both mean the same thing to a caller:
// the implicit trap.
func (d *DFA) Next(state StateID, symbol byte) (StateID, bool) {
	if !d.Alphabet.Contains(symbol) {
		return NoState, false
	}
	to := d.States[state].Trans[d.Alphabet.index(symbol)]
	return to, to != NoState
}

// NumStates returns the number of states in the DFA.
func (d *DFA) NumStates() int { return len(d.States) }

// String renders a short debugging summary.
func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states:%d, start:%d}", len(d.States), d.Start)
}
