// Package version holds build-time version metadata.
package version

// Set via ldflags during build; see cmd/assetlink/main.go.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
