// Package gnkin keeps build information shared by the CLI and the web API.
package gnkin

var (
	// Version of gnkin, set by ldflags during build.
	Version = "v0.1.0"

	// Build timestamp, set by ldflags during build.
	Build = "n/a"
)
