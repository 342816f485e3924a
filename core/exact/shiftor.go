// core/exact/shiftor.go
package exact

import "fmt"

// wordBits bounds the pattern length of ShiftOr.
const wordBits = 64

// ShiftOr is the bit-parallel Shift-Or matcher. A zero bit i in the state
// word means pat[:i+1] matches the text ending at the current position.
type ShiftOr struct {
	masks [alphabetSize]uint64
	lim   uint64
}

func NewShiftOr(pat []byte) (*ShiftOr, error) {
	m := len(pat)
	if m == 0 {
		return nil, ErrEmptyPattern
	}
	if m > wordBits {
		return nil, fmt.Errorf("shift-or: length %d > %d: %w", m, wordBits, ErrPatternTooLong)
	}
	so := &ShiftOr{}
	for c := range so.masks {
		so.masks[c] = ^uint64(0)
	}
	var lim uint64
	for i, bit := 0, uint64(1); i < m; i, bit = i+1, bit<<1 {
		so.masks[pat[i]] &^= bit
		lim |= bit
	}
	// Bits at and above m are always set in the state, so state < lim
	// exactly when bit m-1 is clear.
	so.lim = ^(lim >> 1)
	return so, nil
}

func (so *ShiftOr) Count(seq []byte) int {
	state, n := ^uint64(0), 0
	for _, c := range seq {
		state = state<<1 | so.masks[c]
		if state < so.lim {
			n++
		}
	}
	return n
}
