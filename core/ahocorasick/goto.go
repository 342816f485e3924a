// core/ahocorasick/goto.go
package ahocorasick

const (
	// tableWidth is the width of one goto row: every byte value is addressable.
	tableWidth = 256
	// noState marks an absent transition.
	noState int32 = -1
	// root is the initial state.
	root = 0
)

// trie accumulates the goto function and the partial output function.
// Rows live in one flat slice; state s owns goto[s*tableWidth : (s+1)*tableWidth].
type trie struct {
	gotoFn []int32
	output []Set
}

func newTrie(stateHint int) *trie {
	t := &trie{
		gotoFn: make([]int32, 0, stateHint*tableWidth),
		output: make([]Set, 0, stateHint),
	}
	t.addState() // root
	return t
}

func (t *trie) states() int { return len(t.output) }

// addState appends an all-absent row and returns the new state id.
func (t *trie) addState() int {
	id := t.states()
	for c := 0; c < tableWidth; c++ {
		t.gotoFn = append(t.gotoFn, noState)
	}
	t.output = append(t.output, Set{})
	return id
}

// enterPattern walks the existing trie along pat, allocates states for the
// unmatched suffix, and records idx at the terminal state.
// The walk stops at the end of pat, so duplicates and prefixes of earlier
// patterns allocate nothing.
func (t *trie) enterPattern(pat []byte, idx int) {
	state, j := root, 0
	for j < len(pat) {
		next := t.gotoFn[state*tableWidth+int(pat[j])]
		if next == noState {
			break
		}
		state = int(next)
		j++
	}
	for ; j < len(pat); j++ {
		s := t.addState()
		t.gotoFn[state*tableWidth+int(pat[j])] = int32(s)
		state = s
	}
	// Each index is entered once, so the terminal set cannot already hold it.
	t.output[state].Add(idx)
}

// closeRoot points every absent root transition back at the root.
func (t *trie) closeRoot() {
	for c := 0; c < tableWidth; c++ {
		if t.gotoFn[c] == noState {
			t.gotoFn[c] = root
		}
	}
}
