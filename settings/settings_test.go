package settings

import (
	"testing"
)

func TestSettings_Config_InfoFlag(t *testing.T) {
	tests := []struct {
		name string
		s    Settings
		want bool
	}{
		{"absent", Settings{}, true},
		{"exact F", Settings{KeyEnableInfoLogFlag: "F"}, false},
		{"T", Settings{KeyEnableInfoLogFlag: "T"}, true},
		{"lower f", Settings{KeyEnableInfoLogFlag: "f"}, true},
		{"padded F", Settings{KeyEnableInfoLogFlag: " F"}, true},
		{"false", Settings{KeyEnableInfoLogFlag: "false"}, true},
		{"empty", Settings{KeyEnableInfoLogFlag: ""}, true},
		{"case-insensitive key", Settings{"enableinfologflag": "F"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Config().InfoLoggingEnabled; got != tt.want {
				t.Errorf("InfoLoggingEnabled = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSettings_Get_PrefersExactKey(t *testing.T) {
	s := Settings{"logpath": "/lower", "LogPath": "/exact"}

	if v, _ := s.Get(KeyLogPath); v != "/exact" {
		t.Errorf("Get(LogPath) = %q, want /exact", v)
	}

	if v, ok := s.Get("LOGPATH"); !ok || v != "/exact" {
		// "LogPath" sorts before "logpath".
		t.Errorf("Get(LOGPATH) = %q, %v", v, ok)
	}

	if _, ok := s.Get("Missing"); ok {
		t.Error("Get(Missing) reported a value")
	}
}

func TestSettings_Config_LogPath(t *testing.T) {
	if got := (Settings{}).Config().LogPath; got != "" {
		t.Errorf("LogPath = %q, want empty", got)
	}

	if got := (Settings{KeyLogPath: `D:\logs\`}).Config().LogPath; got != `D:\logs\` {
		t.Errorf("LogPath = %q", got)
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{"LogPath", KeyLogPath, true},
		{"logpath", KeyLogPath, true},
		{"LogPth", KeyLogPath, true},
		{"EnableInfoLog", KeyEnableInfoLogFlag, true},
		{"xyz", "", false},
		{"a", "", false},
		{"Log", "", false},
		{"LgPth", KeyLogPath, true},
		{"InfoLogFlag", KeyEnableInfoLogFlag, true},
		{"Flag", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := Suggest(tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Suggest(%q) = %q, %v; want %q, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}
