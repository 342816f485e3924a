// internal/engine/engine.go
package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Engine counts, for every pattern it was built from, the occurrences in one
// sequence. Count and CountInto must be safe for concurrent use.
type Engine interface {
	Name() string
	PatternCount() int
	// Count returns a fresh slice of PatternCount() counts.
	Count(seq []byte) []int
	// CountInto overwrites counts, which must have PatternCount() entries.
	CountInto(seq []byte, counts []int)
}

// Factory builds an Engine over patterns. Patterns are borrowed, not copied.
type Factory func(patterns [][]byte) (Engine, error)

// Default is the algorithm used when none is named.
const Default = AhoCorasick

var registry = map[string]Factory{}

// Register adds (or replaces) a factory under name.
func Register(name string, f Factory) { registry[name] = f }

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names lists the registered algorithms in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// New looks up name and builds an engine over patterns.
func New(name string, patterns [][]byte) (Engine, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return f(patterns)
}
