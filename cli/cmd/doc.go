// Package cmd implements the lablog subcommands.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the default configuration file.
	ConfigIdentifier = "config"

	// VersionIdentifier is the kong variable identifier containing the
	// version string.
	VersionIdentifier = "version"
)
