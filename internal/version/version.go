// Package version holds the build identity stamped into diagrid binaries.
package version

import "github.com/fatih/color"

var semver = color.New(color.FgCyan, color.Bold).Sprint("0.1.0")

// All three are overridable at build time through -ldflags; only Version
// has a compiled-in default.
var (
	// Version is the toolkit's semantic version.
	Version = semver + "-dev"

	// GitCommit is the commit hash the binary was built from, when stamped.
	GitCommit = ""

	// BuildDate is the build timestamp in ISO-8601, when stamped.
	BuildDate = ""
)
