// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Output formats.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatAnswers = "answers"
	FormatJSONL   = "jsonl"
)

// Writer registry (format → handler). Register in init() blocks of the
// format files.
var resultWriters = map[string]func(io.Writer, Result) error{}

// Register adds a writer for format (idempotent, last wins).
func Register(format string, fn func(io.Writer, Result) error) { resultWriters[format] = fn }

// Formats lists the registered output formats in sorted order.
func Formats() []string {
	out := make([]string, 0, len(resultWriters))
	for f := range resultWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Known reports whether format has a writer.
func Known(format string) bool {
	_, ok := resultWriters[format]
	return ok
}

// Write dispatches r to the writer registered for format.
func Write(format string, w io.Writer, r Result) error {
	fn, ok := resultWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (have %s)", format, strings.Join(Formats(), ", "))
	}
	return fn(w, r)
}
