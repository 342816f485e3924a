// Package ahocorasick counts occurrences of many patterns in one pass.
//
// Build compiles the pattern list into goto, failure and output tables
// (Aho & Corasick, 1975). States are indices into flat tables, never
// pointers. The automaton is read-only once built; Scan allocates its own
// counts and ScanInto reuses a caller's, so workers can share one Automaton
// across sequences without locking.
package ahocorasick
