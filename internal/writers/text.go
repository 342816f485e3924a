// internal/writers/text.go
package writers

import (
	"fmt"
	"io"
)

func init() { Register(FormatText, WriteText) }

// WriteText prints the result block:
//
//	---
//	language: go
//	algorithm: aho-corasick
//	runtime: 0.0123
//
// followed by "mismatches: N" when an answers table was compared.
func WriteText(w io.Writer, r Result) error {
	if _, err := fmt.Fprintf(w, "---\nlanguage: %s\nalgorithm: %s\nruntime: %.6g\n",
		Language, r.Algorithm, r.Runtime.Seconds()); err != nil {
		return err
	}
	if r.Verified {
		if _, err := fmt.Fprintf(w, "mismatches: %d\n", len(r.Mismatches)); err != nil {
			return err
		}
	}
	return nil
}
