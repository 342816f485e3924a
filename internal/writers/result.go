// internal/writers/result.go
package writers

import (
	"time"

	"seqmatch/internal/counts"
	"seqmatch/internal/verify"
	"seqmatch/pkg/api"
)

// Language is reported in every result block.
const Language = "go"

// Result is everything a writer may render about one run.
type Result struct {
	Algorithm  string
	Runtime    time.Duration
	Counts     counts.Table
	States     int  // automaton states; 0 when not applicable
	Verified   bool // an answers table was compared
	Mismatches []verify.Mismatch
}

// ToAPI converts a Result to the stable wire schema (v1).
func ToAPI(r Result) api.RunV1 {
	v := api.RunV1{
		Language:       Language,
		Algorithm:      r.Algorithm,
		RuntimeSeconds: r.Runtime.Seconds(),
		Patterns:       r.Counts.Patterns(),
		Sequences:      r.Counts.Sequences(),
		States:         r.States,
		Counts:         make([][]int, len(r.Counts)),
		Verified:       r.Verified,
	}
	for i, row := range r.Counts {
		v.Counts[i] = append([]int(nil), row...)
	}
	for _, m := range r.Mismatches {
		v.Mismatches = append(v.Mismatches, api.MismatchV1{
			Pattern: m.Pattern + 1, Sequence: m.Sequence + 1, Got: m.Got, Want: m.Want,
		})
	}
	return v
}
