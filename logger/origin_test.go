package logger

import (
	"strings"
	"testing"
	"time"
)

const thisPackage = "github.com/AvigailEhrlich/Lab-General-Logger/logger"

func TestFuncOrigin(t *testing.T) {
	tests := []struct {
		name string
		want Origin
	}{
		{"main.main", Origin{"main", "main", "main"}},
		{"example.com/lab/robot.Calibrate", Origin{"example.com/lab/robot", "robot", "Calibrate"}},
		{"example.com/lab/robot.Calibrate.func1", Origin{"example.com/lab/robot", "robot", "Calibrate"}},
		{"example.com/lab/robot.Calibrate.func1.2", Origin{"example.com/lab/robot", "robot", "Calibrate"}},
		{"example.com/lab/robot.(*Arm).Move", Origin{"example.com/lab/robot", "Arm", "Move"}},
		{"example.com/lab/robot.(*Arm).Move.func3", Origin{"example.com/lab/robot", "Arm", "Move"}},
		{"example.com/lab/robot.Arm.Reach", Origin{"example.com/lab/robot", "Arm", "Reach"}},
		{"example.com/lab/robot.Arm.Reach-fm", Origin{"example.com/lab/robot", "Arm", "Reach"}},
		{"example.com/lab/robot.(*Queue[...]).Push", Origin{"example.com/lab/robot", "Queue", "Push"}},
		{"example.com/lab/robot.Map[...]", Origin{"example.com/lab/robot", "robot", "Map"}},
		{"example.com/lab/robot.Run.gowrap1", Origin{"example.com/lab/robot", "robot", "Run"}},
		{"example.com/lab/robot.init.0", Origin{"example.com/lab/robot", "robot", "init"}},
		{"example.com/lab/robot", Origin{Namespace: "example.com/lab/robot"}},
		{"", Origin{}},
	}

	for _, tt := range tests {
		if got := FuncOrigin(tt.name); got != tt.want {
			t.Errorf("FuncOrigin(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestOrigin_String_Placeholders(t *testing.T) {
	tests := []struct {
		o    Origin
		want string
	}{
		{Origin{}, "UnknownNamespace.UnknownClass.UnknownMethod"},
		{Origin{Namespace: "ns"}, "ns.UnknownClass.UnknownMethod"},
		{Origin{Class: "C"}, "UnknownNamespace.C.UnknownMethod"},
		{Origin{Method: "M"}, "UnknownNamespace.UnknownClass.M"},
		{Origin{"ns", "C", "M"}, "ns.C.M"},
	}

	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.o, got, tt.want)
		}
	}
}

func TestCallerOrigin_IdentifiesCaller(t *testing.T) {
	o := CallerOrigin(0)

	want := Origin{thisPackage, "logger", "TestCallerOrigin_IdentifiesCaller"}
	if o != want {
		t.Errorf("CallerOrigin(0) = %+v, want %+v", o, want)
	}
}

type probe struct{}

func (*probe) where() Origin { return CallerOrigin(0) }

func TestCallerOrigin_Method(t *testing.T) {
	o := new(probe).where()

	want := Origin{thisPackage, "probe", "where"}
	if o != want {
		t.Errorf("CallerOrigin(0) = %+v, want %+v", o, want)
	}
}

func TestCallerOrigin_TooDeep_ReturnsPlaceholders(t *testing.T) {
	for _, skip := range []int{1 << 10, 1 << 30} {
		o := CallerOrigin(skip)
		if o != (Origin{}) {
			t.Errorf("CallerOrigin(%d) = %+v, want zero", skip, o)
		}

		if o.String() != "UnknownNamespace.UnknownClass.UnknownMethod" {
			t.Errorf("CallerOrigin(%d).String() = %q", skip, o.String())
		}
	}
}

func TestCallerOrigin_NegativeSkip(t *testing.T) {
	if o := CallerOrigin(-5); !strings.HasSuffix(o.Method, "TestCallerOrigin_NegativeSkip") {
		t.Errorf("CallerOrigin(-5) = %+v", o)
	}
}

func TestHeader(t *testing.T) {
	at := time.Date(2023, 10, 5, 9, 7, 3, 0, time.UTC)

	tests := []struct {
		layout string
		want   string
	}{
		{DefaultTimeLayout, "05/10/2023 09:07:03 [ns.C.M]"},
		{time.Kitchen, "9:07AM [ns.C.M]"},
		{"", "[ns.C.M]"},
	}

	for _, tt := range tests {
		if got := Header(at, tt.layout, Origin{"ns", "C", "M"}); got != tt.want {
			t.Errorf("Header(%q) = %q, want %q", tt.layout, got, tt.want)
		}
	}
}

func TestFileName(t *testing.T) {
	at := time.Date(2024, 2, 9, 23, 59, 59, 0, time.UTC)
	if got := FileName(at); got != "Log-09-02-2024.txt" {
		t.Errorf("FileName() = %q", got)
	}
}
