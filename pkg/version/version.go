// Package version carries build metadata stamped in at link time.
package version

// Build metadata, overridden via -ldflags at release time.
var (
	// Version is the semantic version of the ehunter binary.
	Version = "dev"
	// Commit is the Git hash the binary was built from.
	Commit = "<unknown>"
	// Date is the build timestamp.
	Date = "<unknown>"
)
