package pkg

import (
	"os"
	"runtime"
	"strings"
	"testing"
)

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "alice", "alice"},
		{"domain separator", `CORP\alice`, "CORP_alice"},
		{"path separator", "a/b", "a_b"},
		{"reserved", `a<b>c:d"e|f?g*h`, "a_b_c_d_e_f_g_h"},
		{"control", "a\tb\x00c", "a_b_c"},
		{"unicode", "אביגיל", "אביגיל"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeFilename(tt.in, '_'); got != tt.want {
				t.Errorf("SafeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultLogRoot(t *testing.T) {
	got := DefaultLogRoot()

	if runtime.GOOS == "windows" {
		if got != `C:\temp\` {
			t.Errorf("DefaultLogRoot() = %q, want C:\\temp\\", got)
		}

		return
	}

	if got != os.TempDir() {
		t.Errorf("DefaultLogRoot() = %q, want %q", got, os.TempDir())
	}
}

func TestSidecarPath(t *testing.T) {
	got := SidecarPath()
	if !strings.HasSuffix(got, ".config") {
		t.Errorf("SidecarPath() = %q, want .config suffix", got)
	}

	if strings.TrimSuffix(got, ".config") != Executable() {
		t.Errorf("SidecarPath() = %q, want executable %q", got, Executable())
	}
}

func TestTimeLayout(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"RFC3339", "2006-01-02T15:04:05Z07:00"},
		{"rfc-3339-nano", "2006-01-02T15:04:05.999999999Z07:00"},
		{"ms", "Jan _2 15:04:05.000"},
		{"none", ""},
		{"", ""},
		{"02/01/2006 15:04:05", "02/01/2006 15:04:05"},
	}

	for _, tt := range tests {
		if got := TimeLayout(tt.in); got != tt.want {
			t.Errorf("TimeLayout(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
