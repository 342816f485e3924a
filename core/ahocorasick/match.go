// core/ahocorasick/match.go
package ahocorasick

import "fmt"

// Scan runs the automaton once over seq and returns, per pattern index, the
// number of positions in seq where that pattern ends. Overlapping and
// nested occurrences all count.
//
// Bytes that occur in no pattern are valid input; they send the machine
// back to the root.
func (a *Automaton) Scan(seq []byte) []int {
	counts := make([]int, a.patterns)
	a.scan(seq, counts)
	return counts
}

// ScanInto is Scan with a caller-owned result slice, which is zeroed first.
// It panics if len(counts) != PatternCount().
func (a *Automaton) ScanInto(seq []byte, counts []int) {
	if len(counts) != a.patterns {
		panic(fmt.Sprintf("ahocorasick: counts has length %d, want %d", len(counts), a.patterns))
	}
	clear(counts)
	a.scan(seq, counts)
}

func (a *Automaton) scan(seq []byte, counts []int) {
	g, fail, out := a.gotoFn, a.failure, a.output
	state := root
	for _, c := range seq {
		for g[state*tableWidth+int(c)] == noState {
			state = int(fail[state])
		}
		state = int(g[state*tableWidth+int(c)])
		for _, idx := range out[state].elems {
			counts[idx]++
		}
	}
}
