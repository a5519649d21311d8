// Package version holds build-time version information.
// The variables are overridden through -ldflags at release build time.
package version

//nolint:gochecknoglobals // Build metadata is injected through -ldflags.
var (
	// Version is the semantic version of the binary.
	Version = "1.0.0"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// BuildTime is when the binary was built.
	BuildTime = "unknown"
)

// Short returns the bare version string.
func Short() string {
	return Version
}

// Full returns the version along with commit and build time.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
