// internal/input/lines.go
package input

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// allow very long single-line sequences (64 MiB)
const maxLine = 64 * 1024 * 1024

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return sc
}

// readHeader parses the first line: at least min space-separated ints.
func readHeader(sc *bufio.Scanner, min int) ([]int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, errors.WithMessage(ErrHeader, "missing")
	}
	fields := bytes.Fields(sc.Bytes())
	if len(fields) < min {
		return nil, errors.WithMessagef(ErrHeader, "want %d values, got %d", min, len(fields))
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(string(f))
		if err != nil || v < 0 {
			return nil, errors.WithMessagef(ErrHeader, "value %d: %q", i+1, f)
		}
		out[i] = v
	}
	return out, nil
}

func trimEOL(line []byte) []byte {
	return bytes.TrimRight(line, "\r\n")
}

// ParseSequences reads a sequences file: a "<count> <maxlen>" header then
// one sequence per line. Empty lines are empty sequences.
func ParseSequences(r io.Reader) ([][]byte, error) {
	return parseLines(r, false)
}

// ParsePatterns reads a patterns file, which shares the sequences format but
// must not contain empty lines.
func ParsePatterns(r io.Reader) ([][]byte, error) {
	return parseLines(r, true)
}

func parseLines(r io.Reader, nonEmpty bool) ([][]byte, error) {
	sc := newScanner(r)
	hdr, err := readHeader(sc, 2)
	if err != nil {
		return nil, err
	}
	want := hdr[0]
	out := make([][]byte, 0, want)
	ln := 1
	for sc.Scan() {
		ln++
		line := trimEOL(sc.Bytes())
		if nonEmpty && len(line) == 0 {
			return nil, errors.WithMessagef(ErrEmptyPattern, "line %d", ln)
		}
		out = append(out, append([]byte(nil), line...))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.WithMessagef(err, "line %d", ln+1)
	}
	if len(out) != want {
		return nil, errors.WithMessagef(ErrCountMismatch, "%d/%d", len(out), want)
	}
	return out, nil
}

// ReadSequences opens path (possibly compressed) and parses it.
func ReadSequences(path string) ([][]byte, error) {
	return readFile(path, ParseSequences)
}

// ReadPatterns opens path (possibly compressed) and parses it.
func ReadPatterns(path string) ([][]byte, error) {
	return readFile(path, ParsePatterns)
}

func readFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	rc, err := Open(path)
	if err != nil {
		return zero, err
	}
	defer func() { _ = rc.Close() }()
	v, err := parse(rc)
	if err != nil {
		return zero, errors.WithMessagef(err, "%s", path)
	}
	return v, nil
}
