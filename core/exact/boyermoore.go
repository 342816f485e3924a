// core/exact/boyermoore.go
package exact

// BoyerMoore uses the bad-character and good-suffix shift tables
// (Charras & Lecroq, ch. 14).
type BoyerMoore struct {
	pat        []byte
	badChar    [alphabetSize]int
	goodSuffix []int
}

func NewBoyerMoore(pat []byte) (*BoyerMoore, error) {
	m := len(pat)
	if m == 0 {
		return nil, ErrEmptyPattern
	}
	bm := &BoyerMoore{pat: append([]byte(nil), pat...)}
	for c := range bm.badChar {
		bm.badChar[c] = m
	}
	for i := 0; i < m-1; i++ {
		bm.badChar[pat[i]] = m - i - 1
	}
	bm.goodSuffix = goodSuffixes(pat)
	return bm, nil
}

// suffixes[i] is the length of the longest suffix of pat ending at i.
func suffixes(pat []byte) []int {
	m := len(pat)
	suff := make([]int, m)
	suff[m-1] = m
	f, g := 0, m-1
	for i := m - 2; i >= 0; i-- {
		if i > g && suff[i+m-1-f] < i-g {
			suff[i] = suff[i+m-1-f]
			continue
		}
		if i < g {
			g = i
		}
		f = i
		for g >= 0 && pat[g] == pat[g+m-1-f] {
			g--
		}
		suff[i] = f - g
	}
	return suff
}

func goodSuffixes(pat []byte) []int {
	m := len(pat)
	suff := suffixes(pat)
	gs := make([]int, m)
	for i := range gs {
		gs[i] = m
	}
	j := 0
	for i := m - 1; i >= -1; i-- {
		if i == -1 || suff[i] == i+1 {
			for ; j < m-1-i; j++ {
				if gs[j] == m {
					gs[j] = m - 1 - i
				}
			}
		}
	}
	for i := 0; i <= m-2; i++ {
		gs[m-1-suff[i]] = m - 1 - i
	}
	return gs
}

func (bm *BoyerMoore) Count(seq []byte) int {
	m, n := len(bm.pat), 0
	for j := 0; j <= len(seq)-m; {
		i := m - 1
		for i >= 0 && bm.pat[i] == seq[i+j] {
			i--
		}
		if i < 0 {
			n++
			j += bm.goodSuffix[0]
			continue
		}
		j += max(bm.goodSuffix[i], bm.badChar[seq[i+j]]-m+1+i)
	}
	return n
}
