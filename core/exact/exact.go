// core/exact/exact.go
package exact

import "errors"

/*
Single-pattern exact matchers. Each is compiled once per pattern and is
read-only afterwards, so one Matcher may count over many sequences from
many goroutines. Every occurrence counts, overlapping ones included.
*/

var (
	ErrEmptyPattern   = errors.New("empty pattern")
	ErrPatternTooLong = errors.New("pattern longer than machine word")
)

// alphabetSize matches the goto width used by the automaton: any byte is a symbol.
const alphabetSize = 256

// Matcher counts the occurrences of one pattern in a sequence.
type Matcher interface {
	Count(seq []byte) int
}

// Naive is the brute-force matcher used as a reference.
type Naive struct{ pat []byte }

func NewNaive(pat []byte) (*Naive, error) {
	if len(pat) == 0 {
		return nil, ErrEmptyPattern
	}
	return &Naive{pat: append([]byte(nil), pat...)}, nil
}

func (n *Naive) Count(seq []byte) int {
	m, c := len(n.pat), 0
outer:
	for i := 0; i+m <= len(seq); i++ {
		for j := 0; j < m; j++ {
			if seq[i+j] != n.pat[j] {
				continue outer
			}
		}
		c++
	}
	return c
}
