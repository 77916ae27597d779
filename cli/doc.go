// Package cli contains the command line interface for lablog.
//
// # Usage
//
//	lablog [flags] <command> [args]
//
// Commands:
//
//   - info <message...>:      append an informational entry
//   - exception <message...>: append an exception entry
//   - encode [source...]:     compress and base64-encode text
//   - decode [source...]:     decode a payload produced by encode
//   - settings:               show the resolved log file and its source
//   - init:                   write a configuration file
//   - version:                print the version
//
// # Configuration
//
// Flag defaults are read from the YAML configuration file, by default
// config.yaml in the user configuration directory, or the file named by
// LABLOG_CONFIG. Nested keys map to hyphenated flags:
//
//	log:
//	  level: debug
//	  pretty: false
//	appSettings:
//	  LogPath: /var/log/lab
//	  EnableInfoLogFlag: "T"
//
// The appSettings section is the primary settings source of the log file
// writer; see package settings. --config selects a different file for it.
//
// # Diagnostic Logging Options
//
//   - --log-level: minimum level (trace, debug, info, warn, error)
//   - --log-format: output format (text, json)
//   - --log-time-layout: timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: include caller information
//   - --[no-]log-pretty: colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o lablog .
//
//   - --pprof-mode: enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: profile output directory
package cli
