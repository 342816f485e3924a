// Package gen builds random DNA test data: sequences, patterns drawn from
// them, and the exact answers table.
package gen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/pkg/errors"

	"seqmatch/internal/counts"
	"seqmatch/internal/engine"
	"seqmatch/internal/pipeline"
)

const dna = "ACGT"

// DefaultMaxAttempts bounds the draws per pattern before giving up.
const DefaultMaxAttempts = 10000

// Config mirrors the seqmatch-gen flags.
type Config struct {
	Count           int // sequences
	PatternCount    int
	Length          int
	PatternLength   int
	LineVariance    int
	PatternVariance int
	Threads         int // for the answers scan
	MaxAttempts     int // per pattern; 0 = DefaultMaxAttempts
}

// Default matches the historical generator defaults.
func Default() Config {
	return Config{
		Count:         100000,
		PatternCount:  100,
		Length:        1024,
		PatternLength: 10,
	}
}

func (c Config) validate() error {
	switch {
	case c.Count < 1:
		return errors.WithMessage(ErrConfig, "count must be >= 1")
	case c.PatternCount < 0:
		return errors.WithMessage(ErrConfig, "pattern count must be >= 0")
	case c.LineVariance < 0 || c.PatternVariance < 0:
		return errors.WithMessage(ErrConfig, "variance must be >= 0")
	case c.Length-c.LineVariance < 0:
		return errors.WithMessage(ErrConfig, "length - variance must be >= 0")
	case c.PatternLength-c.PatternVariance < 1:
		return errors.WithMessage(ErrConfig, "pattern length - variance must be >= 1")
	}
	return nil
}

// Data is one generated data set.
type Data struct {
	Sequences [][]byte
	Patterns  [][]byte
	// Coverage is the fraction of sequences containing each pattern.
	Coverage []float64
	Answers  counts.Table
}

// Threshold is the minimum number of sequences a pattern must occur in (0.1%).
func Threshold(count int) int { return (count + 999) / 1000 }

// Generate draws a data set from rng. The same seed yields the same data.
func Generate(ctx context.Context, cfg Config, rng *rand.Rand) (*Data, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	d := &Data{Sequences: make([][]byte, cfg.Count)}
	for i := range d.Sequences {
		d.Sequences[i] = sequence(rng, vary(rng, cfg.Length, cfg.LineVariance))
	}

	threshold := Threshold(cfg.Count)
	seen := make(map[string]bool, cfg.PatternCount)
	for idx := 0; idx < cfg.PatternCount; idx++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		source := d.Sequences[idx*cfg.Count/cfg.PatternCount]
		length := vary(rng, cfg.PatternLength, cfg.PatternVariance)
		pat, hits, err := drawPattern(rng, source, length, d.Sequences, threshold, seen, cfg.MaxAttempts)
		if err != nil {
			return nil, fmt.Errorf("pattern %d: %w", idx+1, err)
		}
		seen[string(pat)] = true
		d.Patterns = append(d.Patterns, pat)
		d.Coverage = append(d.Coverage, float64(hits)/float64(cfg.Count))
	}

	if len(d.Patterns) == 0 {
		d.Answers = counts.New(0, cfg.Count)
		return d, nil
	}
	eng, err := engine.New(engine.AhoCorasick, d.Patterns)
	if err != nil {
		return nil, err
	}
	d.Answers, err = pipeline.CountAll(ctx, pipeline.Config{Threads: cfg.Threads}, eng, d.Sequences)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// vary returns n ± v, uniformly.
func vary(rng *rand.Rand, n, v int) int {
	if v == 0 {
		return n
	}
	return n + rng.IntN(2*v+1) - v
}

func sequence(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = dna[rng.IntN(len(dna))]
	}
	return b
}

// drawPattern samples windows of source until one is new and occurs in at
// least threshold sequences.
func drawPattern(rng *rand.Rand, source []byte, length int, seqs [][]byte, threshold int, seen map[string]bool, attempts int) ([]byte, int, error) {
	if len(source) < length {
		return nil, 0, errors.WithMessagef(ErrExhausted, "source sequence shorter than %d", length)
	}
	for ; attempts > 0; attempts-- {
		base := rng.IntN(len(source) - length + 1)
		pat := source[base : base+length]
		if seen[string(pat)] {
			continue
		}
		hits := 0
		for _, s := range seqs {
			if bytes.Contains(s, pat) {
				hits++
			}
		}
		if hits >= threshold {
			return bytes.Clone(pat), hits, nil
		}
	}
	return nil, 0, ErrExhausted
}

// WriteRecords writes the "<count> <max-length>" header and one record per line.
func WriteRecords(w io.Writer, recs [][]byte) error {
	maxLen := 0
	for _, r := range recs {
		maxLen = max(maxLen, len(r))
	}
	if _, err := fmt.Fprintf(w, "%d %d\n", len(recs), maxLen); err != nil {
		return err
	}
	for _, r := range recs {
		if _, err := w.Write(r); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
