package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/AvigailEhrlich/Lab-General-Logger/logger"
)

// defaultIndent is the number of spaces used to indent generated documents.
const defaultIndent = 2

// Settings prints how the log file is resolved.
type Settings struct {
	Format string `default:"yaml" enum:"yaml,json" help:"Output format" short:"f"`
}

// resolution is the printed form of a [logger.Resolution].
type resolution struct {
	Outcome     string `json:"outcome"          yaml:"outcome"`
	Path        string `json:"path,omitempty"   yaml:"path,omitempty"`
	Source      string `json:"source,omitempty" yaml:"source,omitempty"`
	Error       string `json:"error,omitempty"  yaml:"error,omitempty"`
	InfoEnabled bool   `json:"infoEnabled"      yaml:"infoEnabled"`
}

func makeResolution(res logger.Resolution) resolution {
	r := resolution{
		Outcome:     res.Outcome.String(),
		Path:        res.Path,
		Source:      res.Source,
		InfoEnabled: res.InfoEnabled,
	}

	if res.Err != nil {
		r.Error = res.Err.Error()
	}

	return r
}

// Run executes the settings command.
func (s *Settings) Run(ctx context.Context) error {
	res := makeResolution(loggerFrom(ctx).Resolve())

	var (
		data []byte
		err  error
	)

	switch s.Format {
	case "json":
		data, err = json.MarshalIndent(res, "", strings.Repeat(" ", defaultIndent))
		if err != nil {
			return ErrJSONMarshal.Wrap(err).With(slog.String("format", s.Format))
		}

		data = append(data, '\n')

	default:
		data, err = yaml.MarshalContext(ctx, res, yaml.Indent(defaultIndent))
		if err != nil {
			return ErrYAMLMarshal.Wrap(err).With(slog.String("format", s.Format))
		}
	}

	if _, err := fmt.Fprint(outputFrom(ctx), string(data)); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
