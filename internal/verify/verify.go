// internal/verify/verify.go
package verify

import (
	"errors"
	"fmt"

	"seqmatch/internal/counts"
)

// ErrShape is returned when the expected table does not line up with the
// computed one.
var ErrShape = errors.New("count mismatch between patterns file and answers file")

// Mismatch is one cell where the computed count differs from the expected one.
// Pattern and Sequence are 0-based.
type Mismatch struct {
	Pattern  int
	Sequence int
	Got      int
	Want     int
}

func (m Mismatch) String() string {
	return fmt.Sprintf("Pattern %d mismatch against sequence %d (%d != %d)",
		m.Pattern+1, m.Sequence+1, m.Got, m.Want)
}

// Compare returns every cell where got and want differ, ordered by
// sequence, then pattern (the order a per-sequence scan reports them).
func Compare(got, want counts.Table) ([]Mismatch, error) {
	if got.Patterns() != want.Patterns() {
		return nil, fmt.Errorf("%w: %d patterns, %d answer rows", ErrShape, got.Patterns(), want.Patterns())
	}
	if err := want.CheckShape(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShape, err)
	}
	if got.Sequences() != want.Sequences() {
		return nil, fmt.Errorf("%w: %d sequences, %d answer columns", ErrShape, got.Sequences(), want.Sequences())
	}

	var out []Mismatch
	for s := 0; s < got.Sequences(); s++ {
		for p := 0; p < got.Patterns(); p++ {
			if g, w := got[p][s], want[p][s]; g != w {
				out = append(out, Mismatch{Pattern: p, Sequence: s, Got: g, Want: w})
			}
		}
	}
	return out, nil
}
