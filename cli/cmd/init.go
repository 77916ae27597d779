package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/AvigailEhrlich/Lab-General-Logger/log"
	"github.com/AvigailEhrlich/Lab-General-Logger/profile"
	"github.com/AvigailEhrlich/Lab-General-Logger/settings"
)

// appSettingsKey is the configuration section read by package settings.
const appSettingsKey = "appSettings"

// Init generates a configuration file with the current flag values and
// app settings.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	confPath := i.configPath(ctx)

	// Check if file exists and force not set
	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	data, err := yaml.MarshalContext(ctx, i.buildDocument(ctx), yaml.Indent(defaultIndent))
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	if err := os.MkdirAll(filepath.Dir(confPath), defaultDirMode); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	if err := os.WriteFile(confPath, data, defaultFileMode); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// Permission modes of created configuration files and directories.
const (
	defaultDirMode  os.FileMode = 0o700
	defaultFileMode os.FileMode = 0o600
)

// configPath returns the --config flag value, or the default configuration
// path if there is no such flag.
func (i *Init) configPath(ctx context.Context) string {
	if v, ok := i.flagValue(ctx, ConfigIdentifier).(string); ok && v != "" {
		return v
	}

	ktx := kongContextFrom(ctx)
	if ktx == nil {
		panic("internal error: kong context undefined")
	}

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	return confPath
}

// buildDocument constructs the configuration document from current flag
// values. Flags belonging to a group are nested under the group key, so
// --log-level becomes log: {level: ...}.
func (i *Init) buildDocument(ctx context.Context) yaml.MapSlice {
	ktx := kongContextFrom(ctx)

	var (
		doc      yaml.MapSlice
		sections = map[string]int{} // group key -> index in doc
	)

	prefixIgnore := []string{"help", ConfigIdentifier, profile.Tag}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(prefixIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		val := i.flagValue(ctx, flag.Name)
		if val == nil {
			continue
		}

		if flag.Group == nil || !strings.HasPrefix(flag.Name, flag.Group.Key+"-") {
			doc = append(doc, yaml.MapItem{Key: flag.Name, Value: val})

			continue
		}

		key := flag.Group.Key

		idx, ok := sections[key]
		if !ok {
			idx = len(doc)
			sections[key] = idx
			doc = append(doc, yaml.MapItem{Key: key, Value: yaml.MapSlice{}})
		}

		section, _ := doc[idx].Value.(yaml.MapSlice)
		doc[idx].Value = append(section, yaml.MapItem{
			Key:   strings.TrimPrefix(flag.Name, key+"-"),
			Value: val,
		})
	}

	return append(doc, yaml.MapItem{Key: appSettingsKey, Value: appSettings(ctx)})
}

// appSettings returns the app settings currently in effect.
func appSettings(ctx context.Context) yaml.MapSlice {
	cfg := resolverFrom(ctx).Resolve().Config

	flag := "T"
	if !cfg.InfoLoggingEnabled {
		flag = settings.InfoDisabled
	}

	return yaml.MapSlice{
		{Key: settings.KeyLogPath, Value: cfg.LogPath},
		{Key: settings.KeyEnableInfoLogFlag, Value: flag},
	}
}

// flagValue returns the value of a CLI flag, or nil if unset.
func (i *Init) flagValue(ctx context.Context, name string) any {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return nil
	}

	idx := slices.IndexFunc(ktx.Model.Flags, func(flag *kong.Flag) bool {
		return flag.Name == name
	})
	if idx == -1 {
		return nil
	}

	val := ktx.FlagValue(ktx.Model.Flags[idx])

	switch v := val.(type) {
	case nil:
		return nil

	case string:
		if v == "" {
			return nil
		}

		return v

	case []string:
		if len(v) == 0 {
			return nil
		}

		return v

	default:
		return v
	}
}
