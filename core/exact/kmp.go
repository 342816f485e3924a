// core/exact/kmp.go
package exact

// KMP is Knuth–Morris–Pratt with the optimised next table
// (Charras & Lecroq, Handbook of Exact String-Matching Algorithms, ch. 7).
type KMP struct {
	pat  []byte
	next []int // len(pat)+1 entries; next[0] = -1
}

func NewKMP(pat []byte) (*KMP, error) {
	m := len(pat)
	if m == 0 {
		return nil, ErrEmptyPattern
	}
	next := make([]int, m+1)
	i, j := 0, -1
	next[0] = -1
	for i < m {
		for j > -1 && pat[i] != pat[j] {
			j = next[j]
		}
		i++
		j++
		if i < m && pat[i] == pat[j] {
			next[i] = next[j]
		} else {
			next[i] = j
		}
	}
	return &KMP{pat: append([]byte(nil), pat...), next: next}, nil
}

func (k *KMP) Count(seq []byte) int {
	m, n := len(k.pat), 0
	i := 0
	for j := 0; j < len(seq); j++ {
		for i > -1 && k.pat[i] != seq[j] {
			i = k.next[i]
		}
		i++
		if i >= m {
			n++
			i = k.next[i]
		}
	}
	return n
}
