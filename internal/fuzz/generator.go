// Package fuzz generates random strings over a fixed alphabet, for
// exercising the compiler's acceptors (NFA simulation, subset-construction
// DFA, minimized DFA) against the same input and checking they agree.
package fuzz

import (
	"math/rand"

	"github.com/kodeforge/redfa/internal/automaton"
)

// Options configures random string generation.
type Options struct {
	MinLen int // Shortest string to generate (default: 0)
	MaxLen int // Longest string to generate (default: 12)
}

// Generator produces random strings drawn from a fixed alphabet.
type Generator struct {
	opts     *Options
	alphabet automaton.Alphabet
	rng      *rand.Rand
}

// NewGenerator creates a generator over alphabet, seeded deterministically
// from seed so a failing test case is reproducible.
func NewGenerator(alphabet automaton.Alphabet, seed int64, opts *Options) *Generator {
	if opts == nil {
		opts = &Options{MinLen: 0, MaxLen: 12}
	}
	return &Generator{opts: opts, alphabet: alphabet, rng: rand.New(rand.NewSource(seed))}
}

// Generate returns one random string within the configured length range.
func (g *Generator) Generate() string {
	span := g.opts.MaxLen - g.opts.MinLen
	n := g.opts.MinLen
	if span > 0 {
		n += g.rng.Intn(span + 1)
	}

	size := g.alphabet.Size()
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = g.alphabet.Lo + byte(g.rng.Intn(size))
	}
	return string(buf)
}

// GenerateSequence returns count random strings.
func (g *Generator) GenerateSequence(count int) []string {
	out := make([]string, count)
	for i := range out {
		out[i] = g.Generate()
	}
	return out
}
