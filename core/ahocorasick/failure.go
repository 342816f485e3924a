// core/ahocorasick/failure.go
package ahocorasick

// next is the raw goto lookup; noState when absent.
func (a *Automaton) next(state int, c byte) int32 {
	return a.gotoFn[state*tableWidth+int(c)]
}

// buildFailure computes the failure function breadth-first from the root's
// children and completes the output function along the failure links.
//
// Rows are tableWidth wide but only the pattern alphabet is ever populated
// below the root, so the symbol loops walk a.alpha instead of every byte.
func (a *Automaton) buildFailure() {
	syms := a.alpha.Symbols()
	a.failure = make([]int32, a.StateCount())
	q := newQueue(a.StateCount())

	// depth 1
	for _, c := range syms {
		s := a.next(root, c)
		if s == root {
			continue
		}
		a.failure[s] = root
		q.push(int(s))
	}

	for !q.empty() {
		r := q.pop()
		for _, c := range syms {
			s := a.next(r, c)
			if s == noState {
				continue
			}
			q.push(int(s))

			// The root is total, so this always stops.
			state := int(a.failure[r])
			for a.next(state, c) == noState {
				state = int(a.failure[state])
			}
			f := a.next(state, c)
			a.failure[s] = f
			a.output[s].Union(&a.output[f])
		}
	}
}
