package settings

import (
	"maps"
	"slices"
	"strings"
)

// Recognized app-setting keys.
const (
	KeyLogPath           = "LogPath"
	KeyEnableInfoLogFlag = "EnableInfoLogFlag"
)

// InfoDisabled is the only EnableInfoLogFlag value that disables
// informational logging.
const InfoDisabled = "F"

// Keys returns the recognized app-setting keys.
func Keys() []string {
	return []string{KeyLogPath, KeyEnableInfoLogFlag}
}

// Settings is the app-settings collection read from one source.
type Settings map[string]string

// Get returns the value stored for key. An exact match is preferred;
// otherwise the first key equal under Unicode case-folding, in sorted key
// order, is used.
func (s Settings) Get(key string) (string, bool) {
	if v, ok := s[key]; ok {
		return v, true
	}

	for _, k := range slices.Sorted(maps.Keys(s)) {
		if strings.EqualFold(k, key) {
			return s[k], true
		}
	}

	return "", false
}

// Inline is a [Source] backed by an in-memory collection.
type Inline Settings

// Load returns a copy of s.
func (s Inline) Load() (Settings, error) {
	return maps.Clone(Settings(s)), nil
}

func (Inline) String() string { return "inline" }

// Config derives the logger configuration from s.
func (s Settings) Config() Config {
	path, _ := s.Get(KeyLogPath)
	flag, ok := s.Get(KeyEnableInfoLogFlag)

	return Config{
		LogPath:            path,
		InfoLoggingEnabled: !ok || flag != InfoDisabled,
	}
}

// Config is the resolved logger configuration.
type Config struct {
	// LogPath is the base folder for log files. Empty selects the default
	// root.
	LogPath string `json:"logPath" yaml:"logPath"`
	// InfoLoggingEnabled reports whether informational entries are written.
	InfoLoggingEnabled bool `json:"infoLoggingEnabled" yaml:"infoLoggingEnabled"`
}

// DefaultConfig is the configuration used when no source provides settings.
func DefaultConfig() Config {
	return Settings{}.Config()
}

// Result is the outcome of a resolution.
type Result struct {
	Config
	// Source names the source whose settings were used, or is empty when
	// neither source provided any.
	Source string
	// Err joins every failure swallowed during resolution.
	Err error
}
