// core/ahocorasick/automaton.go
package ahocorasick

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"seqmatch-core/alphabet"
)

// maxStateHint bounds the up-front table allocation; larger tries grow.
const maxStateHint = 1 << 14

var (
	ErrNoPatterns   = errors.New("no patterns")
	ErrEmptyPattern = errors.New("empty pattern")
)

// Automaton is a frozen Aho–Corasick machine: goto, failure and output
// functions over a set of patterns. It is never modified after Build, so
// any number of goroutines may Scan with it concurrently.
type Automaton struct {
	patterns int
	alpha    alphabet.Alphabet
	gotoFn   []int32
	failure  []int32
	output   []Set
}

// Build compiles patterns into an automaton. Pattern i is reported at
// index i of every Scan result. The same list always yields the same
// state numbering.
func Build(patterns [][]byte) (*Automaton, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}
	total := 1
	for i, p := range patterns {
		if len(p) == 0 {
			return nil, fmt.Errorf("pattern %d: %w", i+1, ErrEmptyPattern)
		}
		total += len(p)
	}

	t := newTrie(min(total, maxStateHint))
	for i, p := range patterns {
		t.enterPattern(p, i)
	}
	t.closeRoot()

	a := &Automaton{
		patterns: len(patterns),
		alpha:    alphabet.FromPatterns(patterns),
		gotoFn:   t.gotoFn,
		output:   t.output,
	}
	a.buildFailure()
	return a, nil
}

// PatternCount is the length of every Scan result.
func (a *Automaton) PatternCount() int { return a.patterns }

// StateCount is the number of states, root included.
func (a *Automaton) StateCount() int { return len(a.output) }

// Alphabet is the set of symbols that occur in the patterns.
func (a *Automaton) Alphabet() alphabet.Alphabet { return a.alpha }

// Goto returns the transition from state on sym, or -1 when absent.
// The root has a transition on every symbol.
func (a *Automaton) Goto(state int, sym byte) int {
	return int(a.gotoFn[state*tableWidth+int(sym)])
}

// Failure returns the failure state of state. The root fails to itself.
func (a *Automaton) Failure(state int) int { return int(a.failure[state]) }

// Output returns the pattern indices recognised on reaching state.
// Callers must not modify it.
func (a *Automaton) Output(state int) []int { return a.output[state].Values() }

// Digest hashes the goto, failure and output tables.
// Two automata with equal digests number their states identically.
func (a *Automaton) Digest() uint64 {
	h := xxhash.New()
	var b [4]byte
	put := func(v int32) {
		binary.LittleEndian.PutUint32(b[:], uint32(v))
		_, _ = h.Write(b[:])
	}
	put(int32(a.patterns))
	for _, v := range a.gotoFn {
		put(v)
	}
	for _, v := range a.failure {
		put(v)
	}
	for i := range a.output {
		put(int32(a.output[i].Len()))
		for _, v := range a.output[i].Values() {
			put(int32(v))
		}
	}
	return h.Sum64()
}
