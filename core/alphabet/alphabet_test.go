package alphabet

import (
	"errors"
	"testing"
)

func TestNewSortsAndDedupes(t *testing.T) {
	a := New('T', 'A', 'G', 'A', 'C')
	if got := a.String(); got != "ACGT" {
		t.Fatalf("String()=%q want ACGT", got)
	}
	if a.Len() != 4 {
		t.Fatalf("Len()=%d want 4", a.Len())
	}
}

func TestFromPatterns(t *testing.T) {
	a := FromPatterns([][]byte{[]byte("GATTACA"), []byte("CC")})
	if got := a.String(); got != "ACGT" {
		t.Fatalf("String()=%q", got)
	}
	if a.Contains('N') {
		t.Fatal("N should not be a member")
	}
	if !a.Contains('G') {
		t.Fatal("G should be a member")
	}
}

func TestNewIgnoresDuplicates(t *testing.T) {
	u := New('T', 'A', 'C', 'A')
	if got := u.String(); got != "ACT" || u.Len() != 3 {
		t.Fatalf("New=%q len %d want ACT", got, u.Len())
	}
}

func TestValidate(t *testing.T) {
	if err := DNA.Validate([]byte("ACGTTGCA")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := DNA.Validate([]byte("ACGNT"))
	if !errors.Is(err, ErrSymbol) {
		t.Fatalf("want ErrSymbol, got %v", err)
	}
	var se *SymbolError
	if !errors.As(err, &se) || se.Offset != 3 || se.Symbol != 'N' {
		t.Fatalf("bad SymbolError: %+v", se)
	}
}
