// internal/input/answers.go
package input

import (
	"bytes"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"seqmatch/internal/counts"
)

// Answers is an expected-counts table. K is the optional third header value
// used by approximate-matching answer files; zero when absent.
type Answers struct {
	Table counts.Table
	K     int
}

// ParseAnswers reads "<rows> <cols> [k]" then rows lines of cols
// comma-separated counts.
func ParseAnswers(r io.Reader) (Answers, error) {
	sc := newScanner(r)
	hdr, err := readHeader(sc, 2)
	if err != nil {
		return Answers{}, err
	}
	rows, cols := hdr[0], hdr[1]
	a := Answers{Table: make(counts.Table, 0, rows)}
	if len(hdr) > 2 {
		a.K = hdr[2]
	}
	ln := 1
	for sc.Scan() {
		ln++
		line := trimEOL(sc.Bytes())
		fields := bytes.Split(line, []byte{','})
		if len(line) == 0 {
			fields = nil
		}
		if len(fields) > cols {
			return Answers{}, errors.WithMessagef(ErrAnswerRow, "line %d: too many numbers (%d > %d)", ln, len(fields), cols)
		}
		if len(fields) < cols {
			return Answers{}, errors.WithMessagef(ErrAnswerRow, "line %d: too few numbers (%d < %d)", ln, len(fields), cols)
		}
		row := make([]int, cols)
		for i, f := range fields {
			v, err := strconv.Atoi(string(bytes.TrimSpace(f)))
			if err != nil || v < 0 {
				return Answers{}, errors.WithMessagef(ErrAnswerRow, "line %d: bad count %q", ln, f)
			}
			row[i] = v
		}
		a.Table = append(a.Table, row)
	}
	if err := sc.Err(); err != nil {
		return Answers{}, errors.WithMessagef(err, "line %d", ln+1)
	}
	if len(a.Table) != rows {
		return Answers{}, errors.WithMessagef(ErrCountMismatch, "%d/%d", len(a.Table), rows)
	}
	return a, nil
}

// ReadAnswers opens path (possibly compressed) and parses it.
func ReadAnswers(path string) (Answers, error) {
	return readFile(path, ParseAnswers)
}
