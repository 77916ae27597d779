package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func loadString(t *testing.T, doc string) config {
	t.Helper()

	r, err := load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	c, ok := r.(config)
	if !ok {
		t.Fatalf("load returned %T, want config", r)
	}

	return c
}

func TestLoad_FlattensNestedKeys(t *testing.T) {
	c := loadString(t, `
log:
  level: debug
  time-layout: RFC3339Nano
  pretty: false
pprof:
  mode: cpu
config: lab.yaml
`)

	tests := []struct {
		key  string
		want any
	}{
		{"log-level", "debug"},
		{"log-time-layout", "RFC3339Nano"},
		{"log-pretty", false},
		{"pprof-mode", "cpu"},
		{"config", "lab.yaml"},
	}

	for _, tt := range tests {
		if got := c[tt.key]; got != tt.want {
			t.Errorf("%s = %#v, want %#v", tt.key, got, tt.want)
		}
	}
}

func TestLoad_NumbersAsStrings(t *testing.T) {
	c := loadString(t, "encode:\n  level: 9\nratio: 0.5\n")

	if got := c["encode-level"]; got != "9" {
		t.Errorf("encode-level = %#v, want %q", got, "9")
	}

	if got := c["ratio"]; got != "0.5" {
		t.Errorf("ratio = %#v, want %q", got, "0.5")
	}
}

func TestLoad_SkipsAppSettings(t *testing.T) {
	c := loadString(t, `
appSettings:
  LogPath: /var/log/lab
  EnableInfoLogFlag: F
log:
  level: warn
`)

	for k := range c {
		if strings.HasPrefix(k, appSettingsKey) {
			t.Errorf("app setting %q leaked into flag defaults", k)
		}
	}

	if c["log-level"] != "warn" {
		t.Errorf("log-level = %#v", c["log-level"])
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	c := loadString(t, "log: [unclosed\n")

	if len(c) != 0 {
		t.Errorf("invalid document produced config %v", c)
	}
}

func TestConfig_Resolve(t *testing.T) {
	c := config{
		"log-level":       "debug",
		"log_time_layout": "Kitchen",
	}

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},
		{"log-time-layout", "Kitchen"},
		{"log-format", nil},
	}

	for _, tt := range tests {
		got, err := c.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: tt.flag}})
		if err != nil {
			t.Errorf("Resolve(%s): %v", tt.flag, err)
		}

		if got != tt.want {
			t.Errorf("Resolve(%s) = %#v, want %#v", tt.flag, got, tt.want)
		}
	}

	if err := c.Validate(nil); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
