// Package build holds build-time information injected via ldflags.
package build

var (
	// Version is the application version, set at build time.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
