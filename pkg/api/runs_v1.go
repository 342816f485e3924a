// pkg/api/runs_v1.go
package api

// RunV1 is the stable JSON schema for one seqmatch run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RunV1 struct {
	Language       string       `json:"language"`
	Algorithm      string       `json:"algorithm"`
	RuntimeSeconds float64      `json:"runtime"`
	Patterns       int          `json:"patterns"`
	Sequences      int          `json:"sequences"`
	States         int          `json:"states,omitempty"` // aho-corasick only
	Counts         [][]int      `json:"counts"`           // [pattern][sequence]
	Verified       bool         `json:"verified"`         // an answers table was supplied
	Mismatches     []MismatchV1 `json:"mismatches,omitempty"`
}

// MismatchV1 is one disagreement with the answers table. Indices are 1-based,
// matching the text diagnostics.
type MismatchV1 struct {
	Pattern  int `json:"pattern"`
	Sequence int `json:"sequence"`
	Got      int `json:"got"`
	Want     int `json:"want"`
}

// SequenceV1 is one line of the JSONL output: the counts of every pattern in
// one sequence. Sequence is 1-based.
type SequenceV1 struct {
	Sequence int   `json:"sequence"`
	Counts   []int `json:"counts"` // indexed by pattern
}
