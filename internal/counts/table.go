// internal/counts/table.go
package counts

import "fmt"

// Table holds match counts indexed [pattern][sequence], the orientation of
// the answers file: one row per pattern, one column per sequence.
type Table [][]int

// New returns a zeroed patterns×sequences table backed by one allocation.
func New(patterns, sequences int) Table {
	cells := make([]int, patterns*sequences)
	t := make(Table, patterns)
	for p := range t {
		t[p] = cells[p*sequences : (p+1)*sequences : (p+1)*sequences]
	}
	return t
}

// Patterns is the number of rows.
func (t Table) Patterns() int { return len(t) }

// Sequences is the number of columns (0 for an empty table).
func (t Table) Sequences() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// SetColumn stores one sequence's per-pattern counts.
func (t Table) SetColumn(seq int, col []int) {
	for p, v := range col {
		t[p][seq] = v
	}
}

// Column returns a copy of one sequence's counts.
func (t Table) Column(seq int) []int {
	col := make([]int, len(t))
	for p := range t {
		col[p] = t[p][seq]
	}
	return col
}

// CheckShape reports an error unless every row has the same number of
// columns as t.Sequences().
func (t Table) CheckShape() error {
	w := t.Sequences()
	for p, row := range t {
		if len(row) != w {
			return fmt.Errorf("row %d has %d columns, want %d", p+1, len(row), w)
		}
	}
	return nil
}
