package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"sync"
)

// Prefix returns the base prefix string used to construct the path to the
// configuration directory.
//
// By default, Prefix is the base name of the executable file unless it matches
// one of the following substitution rules:
//   - "__debug_bin" (default output of the dlv debugger): replaced with Name
//   - "^\.+" (dot-prefixed names): remove the dot prefix
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(
	func() string {
		id := filepath.Base(Executable())
		id = strings.TrimSuffix(id, filepath.Ext(id))

		for rex, rep := range map[*regexp.Regexp]string{
			regexp.MustCompile(`^__debug_bin\d+$`): Name, // default output from dlv
			regexp.MustCompile(`^\.+`):             "",   // remove leading dot(s)
		} {
			id = rex.ReplaceAllString(id, rep)
		}

		if id == "" {
			return Name
		}

		return id
	},
)

// Executable returns the path of the running binary, or os.Args[0] if the
// operating system cannot report it.
func Executable() string {
	exe, err := os.Executable()
	if err != nil {
		if len(os.Args) > 0 {
			return os.Args[0]
		}

		return Name
	}

	return exe
}

// ConfigDir returns the configuration directory path.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(
	func() string {
		return filepath.Join(userDir(os.UserConfigDir, ".config"), Prefix())
	},
)

// CacheDir returns the cache directory path used for transient files.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(
	func() string {
		return filepath.Join(userDir(os.UserCacheDir, ".cache"), Prefix())
	},
)

// userDir returns the directory reported by dir, falling back to a hidden
// directory in the user's home, and finally the working directory.
func userDir(dir func() (string, error), hidden string) string {
	d, err := dir()
	if err == nil {
		return d
	}

	d, err = os.UserHomeDir()
	if err == nil {
		return filepath.Join(d, hidden)
	}

	d, err = os.Getwd()
	if err != nil {
		return "."
	}

	return d
}

// ConfigPath returns the absolute path to a file or directory formed by
// joining the configuration directory path with the given path elements.
//
// If no elements are given, it is equivalent to calling [ConfigDir].
func ConfigPath(elem ...string) string {
	return filepath.Join(append([]string{ConfigDir()}, elem...)...)
}

// SidecarPath returns the path of the configuration file co-located with the
// running binary: the executable path with ".config" appended.
func SidecarPath() string {
	return Executable() + ".config"
}

// DefaultLogRoot returns the folder used when no LogPath setting is present.
func DefaultLogRoot() string {
	if runtime.GOOS == "windows" {
		return `C:\temp\`
	}

	return os.TempDir()
}

// invalidFilenameChars are rejected in file names on at least one supported
// platform. Control characters are handled separately.
const invalidFilenameChars = `"<>|:*?\/`

// SafeFilename replaces every character of name that is not valid in a file
// name with replace.
func SafeFilename(name string, replace rune) string {
	return strings.Map(
		func(r rune) rune {
			if r < 0x20 || strings.ContainsRune(invalidFilenameChars, r) {
				return replace
			}

			return r
		},
		name,
	)
}
