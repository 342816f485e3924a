// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"seqmatch/internal/cliutil"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Inputs
	SequencesFile string
	PatternsFile  string
	AnswersFile   string // optional

	// Run
	Algorithm string
	Threads   int
	BatchSize int
	Output    string
	Strict    bool

	// Config & logging
	ConfigFile         string
	ConfigPrintDefault bool
	LogLevel           string
	Quiet              bool

	Version bool

	// Set lists the flags given on the command line. They override the config file.
	Set map[string]bool
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags may appear before or after the positional file arguments.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Algorithm, "algorithm", "aho-corasick", "matching algorithm: aho-corasick | boyer-moore | kmp | naive | shift-or")
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs)")
	fs.IntVar(&opt.BatchSize, "batch-size", 64, "sequences handed to a worker at a time")
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl | answers")
	fs.BoolVar(&opt.Strict, "strict", false, "reject sequence and pattern bytes outside ACGT")

	fs.StringVar(&opt.ConfigFile, "config", "", "TOML config file")
	fs.BoolVar(&opt.ConfigPrintDefault, "config-print-default", false, "print the effective configuration and exit")
	fs.StringVar(&opt.LogLevel, "log-level", "info", "log level: debug | info | warn | error")
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log errors")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand)")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&help, "h", false, "show this help message")

	flagArgs, pos := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	opt.Set = cliutil.Visited(fs)
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version || opt.ConfigPrintDefault {
		return opt, nil
	}

	switch len(pos) {
	case 2, 3:
	default:
		return opt, fmt.Errorf("expected <sequences> <patterns> [answers], got %d file arguments", len(pos))
	}
	opt.SequencesFile, opt.PatternsFile = pos[0], pos[1]
	if len(pos) == 3 {
		opt.AnswersFile = pos[2]
	}
	if opt.SequencesFile == "-" && opt.PatternsFile == "-" {
		return opt, errors.New("only one input may be read from stdin")
	}
	if opt.AnswersFile == "-" && (opt.SequencesFile == "-" || opt.PatternsFile == "-") {
		return opt, errors.New("only one input may be read from stdin")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be >= 0")
	}
	if opt.BatchSize < 0 {
		return opt, errors.New("--batch-size must be >= 0")
	}
	return opt, nil
}
