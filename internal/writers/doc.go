// Package writers turns a finished run into serialized output.
//
// Design:
//   • Writers own all presentation knowledge (result block, JSON, answers table).
//   • Engine stays domain-only; Pipeline stays orchestration-only.
//   • JSON goes through pkg/api (v1) for a stable wire format.
package writers
