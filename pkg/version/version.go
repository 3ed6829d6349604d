// Package version exposes build metadata injected at link time.
package version

// Set with -ldflags "-X github.com/jobscraperpro/jobview/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Populated by the linker.
var version = "dev"

// GetVersion returns the release version, or "dev" for local builds.
func GetVersion() string {
	return version
}

// UserAgent is the User-Agent header value sent to the job board API.
func UserAgent() string {
	return "jobview/" + version
}
