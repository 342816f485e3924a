// core/alphabet/alphabet.go
package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

/* ------------------------------ symbol sets ------------------------------ */

// ErrSymbol reports a byte outside the alphabet.
var ErrSymbol = errors.New("symbol not in alphabet")

// Alphabet is an ordered set of distinct byte symbols.
// Symbols are always kept in ascending byte order, so two alphabets built
// from the same bytes iterate identically.
type Alphabet struct {
	member [256]bool
	syms   []byte
}

// DNA is the four-base alphabet production data is drawn from.
var DNA = New('A', 'C', 'G', 'T')

// New returns the alphabet of the given symbols (duplicates ignored).
func New(syms ...byte) Alphabet {
	var a Alphabet
	for _, c := range syms {
		a.member[c] = true
	}
	a.index()
	return a
}

// FromPatterns returns the alphabet of every byte that appears in pats.
func FromPatterns(pats [][]byte) Alphabet {
	var a Alphabet
	for _, p := range pats {
		for _, c := range p {
			a.member[c] = true
		}
	}
	a.index()
	return a
}

func (a *Alphabet) index() {
	a.syms = a.syms[:0]
	for c := 0; c < 256; c++ {
		if a.member[c] {
			a.syms = append(a.syms, byte(c))
		}
	}
}

// Contains reports whether c is a symbol of a.
func (a Alphabet) Contains(c byte) bool { return a.member[c] }

// Len is the number of symbols.
func (a Alphabet) Len() int { return len(a.syms) }

// Symbols returns the symbols in ascending order. Callers must not modify it.
func (a Alphabet) Symbols() []byte { return a.syms }

// SymbolError locates the first byte of a sequence that is not in the alphabet.
type SymbolError struct {
	Offset int
	Symbol byte
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("offset %d: %s %q", e.Offset, ErrSymbol, e.Symbol)
}

func (e *SymbolError) Unwrap() error { return ErrSymbol }

// Validate returns a *SymbolError for the first byte of seq outside a.
func (a Alphabet) Validate(seq []byte) error {
	for i, c := range seq {
		if !a.member[c] {
			return &SymbolError{Offset: i, Symbol: c}
		}
	}
	return nil
}

// String renders the symbols, e.g. "ACGT".
func (a Alphabet) String() string {
	var b strings.Builder
	b.Write(a.syms)
	return b.String()
}
