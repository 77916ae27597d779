package pkg

import (
	"errors"
	"io"
	"testing"
)

func TestError_Is_MatchesWrappedSentinels(t *testing.T) {
	err := ErrDecode.Wrap(ErrBase64, io.ErrUnexpectedEOF)

	tests := []struct {
		name   string
		target error
		want   bool
	}{
		{"outer sentinel", ErrDecode, true},
		{"inner sentinel", ErrBase64, true},
		{"cause", io.ErrUnexpectedEOF, true},
		{"unrelated sentinel", ErrDecompress, false},
		{"unrelated error", io.EOF, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(err, tt.target); got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", err, tt.target, got, tt.want)
			}
		})
	}
}

func TestError_Wrap_DoesNotModifySentinel(t *testing.T) {
	before := ErrLoadSettings.Error()

	_ = ErrLoadSettings.Wrap(io.EOF)
	_ = ErrLoadSettings.Wrapf("file %q", "x")

	if got := ErrLoadSettings.Error(); got != before {
		t.Errorf("sentinel changed: got %q, want %q", got, before)
	}

	if len(ErrLoadSettings) != 1 {
		t.Errorf("sentinel length = %d, want 1", len(ErrLoadSettings))
	}
}

func TestError_Error_JoinsChain(t *testing.T) {
	err := ErrOpenLog.Wrapf("path %s", "/tmp/x")

	want := "open log file: path /tmp/x"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestMakeError_SkipsNil(t *testing.T) {
	if e := MakeError(nil, nil); e != nil {
		t.Errorf("MakeError(nil, nil) = %v, want nil", e)
	}
}
