package settings

//go:generate go tool stringer --linecomment --type Format --output format_string.go

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/AvigailEhrlich/Lab-General-Logger/pkg"
)

// Source provides an app-settings collection.
type Source interface {
	Load() (Settings, error)
	String() string
}

// Format identifies the encoding of a settings file.
type Format int

const (
	FormatAuto Format = iota // auto
	FormatXML                // xml
	FormatYAML               // yaml
)

// File is a [Source] backed by a file on disk.
type File struct {
	Path   string
	Format Format
}

func (f File) String() string { return f.Path }

// Load reads and parses the file. A missing file yields an error that
// matches [os.ErrNotExist].
func (f File) Load() (Settings, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, pkg.ErrLoadSettings.Wrap(err)
	}

	// .NET tooling writes a byte order mark.
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	var s Settings

	switch f.detect(data) {
	case FormatXML:
		s, err = parseXML(data)
	default:
		s, err = parseYAML(data)
	}

	if err != nil {
		return nil, pkg.ErrParseSettings.Wrapf("%s: %w", f.Path, err)
	}

	return s, nil
}

func (f File) detect(data []byte) Format {
	if f.Format != FormatAuto {
		return f.Format
	}

	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML
	case ".xml":
		return FormatXML
	}

	if t := bytes.TrimSpace(data); len(t) > 0 && t[0] == '<' {
		return FormatXML
	}

	return FormatYAML
}

type xmlConfiguration struct {
	AppSettings struct {
		Ops []xmlOp `xml:",any"`
	} `xml:"appSettings"`
}

type xmlOp struct {
	XMLName xml.Name
	Key     string `xml:"key,attr"`
	Value   string `xml:"value,attr"`
}

// parseXML reads the appSettings section of a .NET-style configuration
// file, applying add, remove, and clear elements in document order.
func parseXML(data []byte) (Settings, error) {
	var doc xmlConfiguration
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	s := Settings{}

	for _, op := range doc.AppSettings.Ops {
		switch op.XMLName.Local {
		case "add":
			s[op.Key] = op.Value
		case "remove":
			delete(s, op.Key)
		case "clear":
			clear(s)
		}
	}

	return s, nil
}

// parseYAML reads the top-level appSettings mapping of a YAML or JSON
// document. Scalars are stringified and null becomes the empty string.
func parseYAML(data []byte) (Settings, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Settings{}, nil
	}

	var doc struct {
		AppSettings map[string]any `yaml:"appSettings"`
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	s := make(Settings, len(doc.AppSettings))

	for k, v := range doc.AppSettings {
		switch v := v.(type) {
		case nil:
			s[k] = ""
		case string:
			s[k] = v
		case map[string]any, []any:
			return nil, fmt.Errorf("appSettings.%s: not a scalar", k)
		default:
			s[k] = fmt.Sprint(v)
		}
	}

	return s, nil
}
