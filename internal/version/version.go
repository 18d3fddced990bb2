// Package version holds build information injected at link time, for example:
//
//	go build -ldflags "-X github.com/oshokin/saes-client/internal/version.Version=1.2.0"
package version

import "fmt"

//nolint:gochecknoglobals // Overwritten by -ldflags at build time.
var (
	// Version is the semantic version of the build.
	Version = "0.1.0"
	// Commit is the git commit the build was made from.
	Commit = "none"
	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)

// Short returns the version number only.
func Short() string {
	return Version
}

// Full returns the version, commit and build time.
func Full() string {
	return fmt.Sprintf("version: %s, commit: %s, built at: %s", Version, Commit, BuildTime)
}
