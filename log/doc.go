// Package log is the process diagnostic stream of lablog: a small wrapper
// around [log/slog] used to report failures that the file logger and the
// settings resolver swallow.
//
// The file logger in package logger never returns errors to its callers.
// Whatever goes wrong (an unreadable settings file, a missing log folder, a
// full disk) is reported here instead, by default on standard error.
//
// # Basic Usage
//
//	diag := log.Make(os.Stderr)
//	diag.Warn("settings source unreadable", slog.String("path", p))
//
// # Configuration
//
// Configure the logger using functional options:
//
//	diag := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// The package-level functions ([Debug], [Info], [Warn], [Error]) use a
// default logger that [Config] reconfigures, which is how the lablog command
// applies its --log-* flags.
//
// # Output Formats
//
// Two output formats are supported: [FormatText] (default) and [FormatJSON].
// With [WithPretty] enabled, text output is colorized through lipgloss when
// the output is a terminal; otherwise it is written without escape codes.
package log
