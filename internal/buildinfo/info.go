// Package buildinfo carries version metadata stamped at build time.
package buildinfo

// Set via -ldflags at release build time; defaults identify dev builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
