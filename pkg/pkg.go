//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// Version is the semantic version of the lablog module embedded at build
// time. It is printed by the CLI version subcommand.
//
//go:embed VERSION
var version string

// Version returns the embedded module version without surrounding whitespace.
func Version() string { return strings.TrimSpace(version) }

const (
	// Name is the canonical command and module identifier used across the
	// project. It appears in help text and default config paths.
	Name = "lablog"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Per-context diagnostic file logger and string codec"
)
