package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/AvigailEhrlich/Lab-General-Logger/log"
)

// appSettingsKey is the section of the configuration file read by package
// settings rather than by the flag parser.
const appSettingsKey = "appSettings"

// load is a [kong.ConfigurationLoader] that reads flag defaults from a YAML
// (or JSON) configuration file.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(load, "/path/to/config.yaml")
//
// Nested mappings are flattened by joining keys with hyphens, so
//
//	log:
//	  level: debug
//	  time-layout: RFC3339Nano
//	  pretty: false
//
// applies --log-level=debug --log-time-layout=RFC3339Nano --no-log-pretty.
// The appSettings section is ignored. Command-line flags override config
// file values.
func load(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		// Parse error - return empty config
		log.Warn("ignoring configuration file", slog.Any("error", err))

		return config{}, nil
	}

	delete(doc, appSettingsKey)

	return flatten(config{}, "", doc), nil
}

// config implements [kong.Resolver] for YAML configuration files.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but YAML keys may use
	// underscores. Try both forms.
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flatten copies m into dst, joining nested keys to prefix with hyphens.
func flatten(dst config, prefix string, m map[string]any) config {
	for k, v := range m {
		if prefix != "" {
			k = prefix + "-" + k
		}

		switch v := v.(type) {
		case map[string]any:
			flatten(dst, k, v)

		// Kong requires numbers as strings for parsing
		case int64:
			dst[k] = strconv.FormatInt(v, 10)
		case uint64:
			dst[k] = strconv.FormatUint(v, 10)
		case float64:
			dst[k] = strconv.FormatFloat(v, 'f', -1, 64)
		case int, uint:
			dst[k] = fmt.Sprint(v)

		default:
			dst[k] = v
		}
	}

	return dst
}
