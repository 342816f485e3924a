// internal/engine/single.go
package engine

import (
	"fmt"

	"seqmatch-core/exact"
)

const (
	KMP        = "kmp"
	BoyerMoore = "boyer-moore"
	ShiftOr    = "shift-or"
	Naive      = "naive"
)

func init() {
	registerSingle(KMP, func(p []byte) (exact.Matcher, error) { return exact.NewKMP(p) })
	registerSingle(BoyerMoore, func(p []byte) (exact.Matcher, error) { return exact.NewBoyerMoore(p) })
	registerSingle(ShiftOr, func(p []byte) (exact.Matcher, error) { return exact.NewShiftOr(p) })
	registerSingle(Naive, func(p []byte) (exact.Matcher, error) { return exact.NewNaive(p) })
}

func registerSingle(name string, compile func([]byte) (exact.Matcher, error)) {
	Register(name, func(patterns [][]byte) (Engine, error) {
		return newSingle(name, patterns, compile)
	})
}

// singleEngine runs one single-pattern matcher per pattern, each over the
// whole sequence.
type singleEngine struct {
	name     string
	matchers []exact.Matcher
}

func newSingle(name string, patterns [][]byte, compile func([]byte) (exact.Matcher, error)) (*singleEngine, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%s: no patterns", name)
	}
	e := &singleEngine{name: name, matchers: make([]exact.Matcher, len(patterns))}
	for i, p := range patterns {
		m, err := compile(p)
		if err != nil {
			return nil, fmt.Errorf("%s: pattern %d: %w", name, i+1, err)
		}
		e.matchers[i] = m
	}
	return e, nil
}

func (e *singleEngine) Name() string      { return e.name }
func (e *singleEngine) PatternCount() int { return len(e.matchers) }

func (e *singleEngine) Count(seq []byte) []int {
	out := make([]int, len(e.matchers))
	e.CountInto(seq, out)
	return out
}

func (e *singleEngine) CountInto(seq []byte, counts []int) {
	if len(counts) != len(e.matchers) {
		panic(fmt.Sprintf("engine: counts has length %d, want %d", len(counts), len(e.matchers)))
	}
	for i, m := range e.matchers {
		counts[i] = m.Count(seq)
	}
}
