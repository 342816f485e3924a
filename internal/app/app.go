// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"seqmatch-core/alphabet"
	"seqmatch/internal/cli"
	"seqmatch/internal/config"
	"seqmatch/internal/engine"
	"seqmatch/internal/input"
	"seqmatch/internal/logging"
	"seqmatch/internal/pipeline"
	"seqmatch/internal/verify"
	"seqmatch/internal/version"
	"seqmatch/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitOutput    = 3
	ExitCancelled = 130

	// maxMismatchExit caps the mismatch count reported as the exit code.
	maxMismatchExit = 125
)

// flush writes any buffered output; a closed reader (broken pipe) is not an error.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitOutput
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("seqmatch")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flush(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flush(outw, stderr, ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "seqmatch version %s\n", version.Version)
		return flush(outw, stderr, ExitOK)
	}

	cfg, level, err := resolveConfig(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	if opts.ConfigPrintDefault {
		_, _ = io.WriteString(outw, cfg.String())
		return flush(outw, stderr, ExitOK)
	}

	log := logging.New(logging.Effective(level, opts.Quiet), stderr)
	defer func() { _ = log.Sync() }()

	return flush(outw, stderr, run(parent, log, cfg, opts, outw))
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// resolveConfig loads the config file (if any) and applies explicitly set flags over it.
func resolveConfig(opts cli.Options) (*config.Config, zapcore.Level, error) {
	cfg := config.New()
	if opts.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			return nil, 0, err
		}
	}
	if opts.Set["algorithm"] {
		cfg.Run.Algorithm = opts.Algorithm
	}
	if opts.Set["threads"] {
		cfg.Run.Threads = opts.Threads
	}
	if opts.Set["batch-size"] {
		cfg.Run.BatchSize = opts.BatchSize
	}
	if opts.Set["output"] {
		cfg.Run.Output = opts.Output
	}
	if opts.Set["strict"] {
		cfg.Run.Strict = opts.Strict
	}
	if opts.Set["log-level"] {
		l, err := logging.ParseLevel(opts.LogLevel)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid --log-level %q", opts.LogLevel)
		}
		cfg.Log.Level = l
	}
	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}
	if _, err := engine.Lookup(cfg.Run.Algorithm); err != nil {
		return nil, 0, err
	}
	if !writers.Known(cfg.Run.Output) {
		return nil, 0, fmt.Errorf("invalid --output %q (want one of %v)", cfg.Run.Output, writers.Formats())
	}
	return cfg, cfg.Log.Level, nil
}

func run(ctx context.Context, log *zap.Logger, cfg *config.Config, opts cli.Options, out io.Writer) int {
	seqs, err := input.ReadSequences(opts.SequencesFile)
	if err != nil {
		log.Error("read sequences", zap.String("file", opts.SequencesFile), logging.Err(err))
		return ExitUsage
	}
	pats, err := input.ReadPatterns(opts.PatternsFile)
	if err != nil {
		log.Error("read patterns", zap.String("file", opts.PatternsFile), logging.Err(err))
		return ExitUsage
	}
	var answers *input.Answers
	if opts.AnswersFile != "" {
		a, err := input.ReadAnswers(opts.AnswersFile)
		if err != nil {
			log.Error("read answers", zap.String("file", opts.AnswersFile), logging.Err(err))
			return ExitUsage
		}
		answers = &a
	}
	if cfg.Run.Strict {
		if err := validateDNA("pattern", pats); err != nil {
			log.Error("strict input check", logging.Err(err))
			return ExitUsage
		}
		if err := validateDNA("sequence", seqs); err != nil {
			log.Error("strict input check", logging.Err(err))
			return ExitUsage
		}
	}

	start := time.Now()
	eng, err := engine.New(cfg.Run.Algorithm, pats)
	if err != nil {
		log.Error("build matcher", zap.String("algorithm", cfg.Run.Algorithm), logging.Err(err))
		return ExitUsage
	}
	states := 0
	if a, ok := engine.Automaton(eng); ok {
		states = a.StateCount()
		log.Debug("automaton built",
			zap.Int("patterns", a.PatternCount()),
			zap.Int("states", states),
			zap.Stringer("alphabet", a.Alphabet()),
			zap.String("digest", fmt.Sprintf("%016x", a.Digest())),
			zap.Duration("elapsed", time.Since(start)),
		)
	}

	table, err := pipeline.CountAll(ctx, pipeline.Config{Threads: cfg.Run.Threads, BatchSize: cfg.Run.BatchSize}, eng, seqs)
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.Warn("cancelled", logging.Err(err))
			return ExitCancelled
		}
		log.Error("count", logging.Err(err))
		return ExitUsage
	}
	log.Debug("counted",
		zap.String("algorithm", eng.Name()),
		zap.Int("sequences", len(seqs)),
		zap.Duration("elapsed", elapsed),
	)

	res := writers.Result{
		Algorithm: eng.Name(),
		Runtime:   elapsed,
		Counts:    table,
		States:    states,
	}
	if answers != nil {
		mm, err := verify.Compare(table, answers.Table)
		if err != nil {
			log.Error("verify", zap.String("file", opts.AnswersFile), logging.Err(err))
			return ExitUsage
		}
		res.Verified = true
		res.Mismatches = mm
		for _, m := range mm {
			log.Warn(m.String(),
				zap.Int("pattern", m.Pattern+1),
				zap.Int("sequence", m.Sequence+1),
				zap.Int("got", m.Got),
				zap.Int("want", m.Want),
			)
		}
	}

	if err := writers.Write(cfg.Run.Output, out, res); err != nil {
		if writers.IsBrokenPipe(err) {
			return ExitOK
		}
		log.Error("write output", logging.Err(err))
		return ExitOutput
	}
	if n := len(res.Mismatches); n > 0 {
		return min(n, maxMismatchExit)
	}
	return ExitOK
}

func validateDNA(kind string, recs [][]byte) error {
	for i, r := range recs {
		if err := alphabet.DNA.Validate(r); err != nil {
			return fmt.Errorf("%s %d: %w", kind, i+1, err)
		}
	}
	return nil
}
