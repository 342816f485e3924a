// internal/version/version.go
package version

// Version is stamped at build time with -ldflags "-X seqmatch/internal/version.Version=...".
var Version = "dev"
