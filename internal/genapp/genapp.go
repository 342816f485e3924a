// Package genapp is the seqmatch-gen command: it writes a random sequences
// file, a patterns file drawn from it, and optionally the answers table.
package genapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"seqmatch/internal/cliutil"
	"seqmatch/internal/gen"
	"seqmatch/internal/input"
	"seqmatch/internal/logging"
	"seqmatch/internal/writers"
)

const (
	defaultSequencesFile = "sequences.txt"
	defaultPatternsFile  = "patterns.txt"
)

type options struct {
	gen.Config
	Seed          uint64
	SequencesFile string
	PatternsFile  string
	AnswersFile   string
	Quiet         bool
}

func newFlagSet(opt *options) *flag.FlagSet {
	fs := flag.NewFlagSet("seqmatch-gen", flag.ContinueOnError)
	d := gen.Default()
	fs.Uint64Var(&opt.Seed, "seed", 0, "random seed (0 = time based)")
	fs.StringVar(&opt.SequencesFile, "file", defaultSequencesFile, "sequences output file (.gz/.zst/.xz/.bz2 compress)")
	fs.StringVar(&opt.PatternsFile, "patterns", defaultPatternsFile, "patterns output file")
	fs.StringVar(&opt.AnswersFile, "answers", "", "answers output file (empty = skip)")
	fs.IntVar(&opt.Count, "count", d.Count, "number of sequences")
	fs.IntVar(&opt.PatternCount, "pattern-count", d.PatternCount, "number of patterns")
	fs.IntVar(&opt.Length, "length", d.Length, "sequence length")
	fs.IntVar(&opt.PatternLength, "pattern-length", d.PatternLength, "pattern length")
	fs.IntVar(&opt.LineVariance, "line-variance", d.LineVariance, "sequence length variance")
	fs.IntVar(&opt.PatternVariance, "pattern-variance", d.PatternVariance, "pattern length variance")
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads for the answers scan (0 = all CPUs)")
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log errors")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage of %s:\n", fs.Name())
		fs.PrintDefaults()
	}
	return fs
}

// RunContext parses argv, generates the data set and writes the files.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	var opt options
	fs := newFlagSet(&opt)
	fs.SetOutput(stderr)
	flagArgs, pos := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if len(pos) > 0 {
		_, _ = fmt.Fprintf(stderr, "unexpected arguments: %v\n", pos)
		return 2
	}

	log := logging.New(logging.Effective(zapcore.InfoLevel, opt.Quiet), stderr)
	defer func() { _ = log.Sync() }()

	if opt.Seed == 0 {
		opt.Seed = uint64(time.Now().UnixNano())
	}
	log.Info("generating",
		zap.Uint64("seed", opt.Seed),
		zap.Int("sequences", opt.Count),
		zap.Int("length", opt.Length),
		zap.Int("line-variance", opt.LineVariance),
		zap.Int("patterns", opt.PatternCount),
		zap.Int("pattern-length", opt.PatternLength),
		zap.Int("pattern-variance", opt.PatternVariance),
	)
	rng := rand.New(rand.NewPCG(opt.Seed, opt.Seed))
	d, err := gen.Generate(ctx, opt.Config, rng)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		log.Error("generate", logging.Err(err))
		return 2
	}
	avg := 0.0
	for i, c := range d.Coverage {
		log.Debug("pattern", zap.Int("index", i+1), zap.ByteString("pattern", d.Patterns[i]), zap.Float64("coverage", c))
		avg += c
	}
	if n := len(d.Coverage); n > 0 {
		log.Info("patterns drawn", zap.String("average matching", fmt.Sprintf("%.2f%%", 100*avg/float64(n))))
	}

	if err := writeFile(opt.SequencesFile, func(w io.Writer) error { return gen.WriteRecords(w, d.Sequences) }); err != nil {
		log.Error("write sequences", zap.String("file", opt.SequencesFile), logging.Err(err))
		return 3
	}
	if err := writeFile(opt.PatternsFile, func(w io.Writer) error { return gen.WriteRecords(w, d.Patterns) }); err != nil {
		log.Error("write patterns", zap.String("file", opt.PatternsFile), logging.Err(err))
		return 3
	}
	if opt.AnswersFile != "" {
		res := writers.Result{Counts: d.Answers}
		if err := writeFile(opt.AnswersFile, func(w io.Writer) error { return writers.WriteAnswers(w, res) }); err != nil {
			log.Error("write answers", zap.String("file", opt.AnswersFile), logging.Err(err))
			return 3
		}
	}
	log.Info("done")
	return 0
}

func writeFile(path string, fn func(io.Writer) error) error {
	w, err := input.Create(path)
	if err != nil {
		return err
	}
	if err := fn(w); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
