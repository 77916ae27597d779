package logger

import (
	"path"
	"runtime"
	"strings"
	"time"
)

// Placeholders for origin fields that could not be determined.
const (
	UnknownNamespace = "UnknownNamespace"
	UnknownClass     = "UnknownClass"
	UnknownMethod    = "UnknownMethod"
)

// Origin identifies the code that produced a log entry.
//
// For Go functions, Namespace is the package import path, Class is the
// receiver type of a method or the package name of a plain function, and
// Method is the function name. Closures are attributed to the enclosing
// function.
type Origin struct {
	Namespace string
	Class     string
	Method    string
}

// String returns "<namespace>.<class>.<method>", substituting a placeholder
// for each empty field.
func (o Origin) String() string {
	return or(o.Namespace, UnknownNamespace) + "." +
		or(o.Class, UnknownClass) + "." +
		or(o.Method, UnknownMethod)
}

func or(s, placeholder string) string {
	if s == "" {
		return placeholder
	}

	return s
}

// Header returns the first line of an entry written at t by o.
// An empty layout omits the timestamp.
func Header(t time.Time, layout string, o Origin) string {
	if layout == "" {
		return "[" + o.String() + "]"
	}

	return t.Format(layout) + " [" + o.String() + "]"
}

// CallerOrigin returns the origin of a function on the calling goroutine's
// stack. Skip 0 identifies the caller of CallerOrigin. If the stack is not
// that deep, the zero Origin is returned.
func CallerOrigin(skip int) (o Origin) {
	defer func() {
		if recover() != nil {
			o = Origin{}
		}
	}()

	if skip < 0 {
		skip = 0
	}

	// 0=runtime.Callers, 1=CallerOrigin, 2=its caller.
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return Origin{}
	}

	frame, _ := runtime.CallersFrames(pcs[:]).Next()

	return FuncOrigin(frame.Function)
}

// FuncOrigin splits a fully qualified Go function name, as reported by
// [runtime.Frame], into an Origin.
//
//	example.com/lab/robot.(*Arm).Move.func1  →  example.com/lab/robot, Arm, Move
//	example.com/lab/robot.Calibrate          →  example.com/lab/robot, robot, Calibrate
func FuncOrigin(name string) Origin {
	name = strings.ReplaceAll(name, "[...]", "")
	name = strings.TrimSuffix(name, "-fm")

	if name == "" {
		return Origin{}
	}

	slash := strings.LastIndexByte(name, '/') + 1

	dot := strings.IndexByte(name[slash:], '.')
	if dot < 0 {
		return Origin{Namespace: name}
	}

	ns := name[:slash+dot]
	parts := strings.Split(name[slash+dot+1:], ".")

	o := Origin{Namespace: ns, Class: path.Base(ns), Method: parts[0]}

	switch recv := parts[0]; {
	case strings.HasPrefix(recv, "("):
		o.Class = strings.Trim(recv, "(*)")
		o.Method = ""

		if len(parts) > 1 {
			o.Method = parts[1]
		}

	case len(parts) > 1 && !isClosure(parts[1]):
		o.Class, o.Method = recv, parts[1]
	}

	return o
}

// isClosure reports whether s names a compiler-generated function nested in
// another function.
func isClosure(s string) bool {
	for _, prefix := range []string{"func", "gowrap", "deferwrap"} {
		if n, ok := strings.CutPrefix(s, prefix); ok && isDigits(n) {
			return true
		}
	}

	return isDigits(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
