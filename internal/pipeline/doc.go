// Package pipeline fans sequences out to a bounded pool of workers that
// share one read-only Counter, and gathers the per-sequence counts into a
// pattern×sequence table.
//
// The only contract to implement is Counter (PatternCount, CountInto).
// This keeps the pipeline swappable and testable.
package pipeline
