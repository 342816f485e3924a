// core/ahocorasick/set.go
package ahocorasick

// Set is a small ordered set of non-negative ints (pattern indices).
// Output sets hold a handful of entries, so membership is a linear scan.
type Set struct {
	elems []int
}

// Add appends v without a membership check.
// Only use it when v is known to be absent.
func (s *Set) Add(v int) { s.elems = append(s.elems, v) }

// Contains reports whether v is in the set.
func (s *Set) Contains(v int) bool {
	for _, e := range s.elems {
		if e == v {
			return true
		}
	}
	return false
}

// Union adds every element of o missing from s, in o's order.
func (s *Set) Union(o *Set) {
	for _, v := range o.elems {
		if !s.Contains(v) {
			s.elems = append(s.elems, v)
		}
	}
}

// Len is the number of elements.
func (s *Set) Len() int { return len(s.elems) }

// Values returns the elements in insertion order. Callers must not modify it.
func (s *Set) Values() []int { return s.elems }
