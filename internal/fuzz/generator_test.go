package fuzz

import (
	"testing"

	"github.com/kodeforge/redfa/internal/automaton"
)

func TestGenerateRespectsLengthRange(t *testing.T) {
	g := NewGenerator(automaton.AlphabetNoSpace, 1, &Options{MinLen: 2, MaxLen: 5})
	for i := 0; i < 50; i++ {
		s := g.Generate()
		if len(s) < 2 || len(s) > 5 {
			t.Fatalf("Generate() produced length %d, want [2,5]", len(s))
		}
	}
}

func TestGenerateStaysInAlphabet(t *testing.T) {
	alphabet := automaton.AlphabetNoSpace
	g := NewGenerator(alphabet, 2, &Options{MinLen: 20, MaxLen: 20})
	s := g.Generate()
	for i := 0; i < len(s); i++ {
		if !alphabet.Contains(s[i]) {
			t.Errorf("byte %q at index %d outside alphabet", s[i], i)
		}
	}
}

func TestGenerateIsDeterministicForASeed(t *testing.T) {
	a := NewGenerator(automaton.AlphabetNoSpace, 42, nil).GenerateSequence(10)
	b := NewGenerator(automaton.AlphabetNoSpace, 42, nil).GenerateSequence(10)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("same seed produced different sequences at index %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestGenerateSequenceLength(t *testing.T) {
	g := NewGenerator(automaton.AlphabetWithSpace, 3, nil)
	seq := g.GenerateSequence(7)
	if len(seq) != 7 {
		t.Errorf("GenerateSequence(7) returned %d strings", len(seq))
	}
}
