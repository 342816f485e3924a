package cli

import (
	"flag"
	"fmt"

	"seqmatch/internal/version"
)

// NewFlagSet returns a ContinueOnError FlagSet with the seqmatch usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: multi-pattern exact matching

Version: %s

Usage: %s [flags] <sequences> <patterns> [answers]

Each input file starts with a "<count> <max-length>" header line followed by
one record per line. Use '-' to read a file from stdin. Compressed inputs
(gzip, zstd, xz, bzip2) are detected automatically.

Flags:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}
