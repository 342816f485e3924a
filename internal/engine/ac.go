// internal/engine/ac.go
package engine

import (
	"seqmatch-core/ahocorasick"
)

const AhoCorasick = "aho-corasick"

func init() {
	Register(AhoCorasick, func(patterns [][]byte) (Engine, error) {
		a, err := ahocorasick.Build(patterns)
		if err != nil {
			return nil, err
		}
		return &acEngine{a: a}, nil
	})
}

// acEngine scans all patterns in one pass.
type acEngine struct{ a *ahocorasick.Automaton }

func (e *acEngine) Name() string           { return AhoCorasick }
func (e *acEngine) PatternCount() int      { return e.a.PatternCount() }
func (e *acEngine) Count(seq []byte) []int { return e.a.Scan(seq) }

func (e *acEngine) CountInto(seq []byte, counts []int) { e.a.ScanInto(seq, counts) }

// Automaton exposes the compiled automaton of an aho-corasick engine for
// diagnostics; ok is false for every other algorithm.
func Automaton(e Engine) (a *ahocorasick.Automaton, ok bool) {
	ac, ok := e.(*acEngine)
	if !ok {
		return nil, false
	}
	return ac.a, true
}
