// Package engine adapts the core matchers to one counting interface and
// registers them by name. It never imports app, report, cli, or pipeline;
// keep it domain-only.
package engine
