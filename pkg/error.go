package pkg

// Sentinel errors for the lablog packages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrDecode is returned when a codec payload cannot be decoded.
//
// It is always the outermost error of a decode failure and is followed in
// the chain by one of the more specific codec sentinels below.
var ErrDecode = MakeErrorf("decode payload")

// ErrEncode is returned when a codec payload cannot be produced.
var ErrEncode = MakeErrorf("encode payload")

// ErrBase64 is returned when a payload is not valid base64 text.
var ErrBase64 = MakeErrorf("invalid base64")

// ErrPayloadShort is returned when a decoded payload is too short to hold
// the length prefix.
var ErrPayloadShort = MakeErrorf("payload shorter than length prefix")

// ErrLengthPrefix is returned when the length prefix is negative or exceeds
// the number of decompressed bytes.
var ErrLengthPrefix = MakeErrorf("length prefix mismatch")

// ErrDecompress is returned when the gzip stream is corrupt or truncated.
//
// This error should be wrapped with the underlying gzip error.
var ErrDecompress = MakeErrorf("gzip stream")

// ErrCompressLevel is returned when an unsupported gzip level is requested.
var ErrCompressLevel = MakeErrorf("invalid compression level")

// ErrLoadSettings is returned when a settings source cannot be read.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrLoadSettings = MakeErrorf("load settings")

// ErrParseSettings is returned when a settings source cannot be parsed.
var ErrParseSettings = MakeErrorf("parse settings")

// ErrUserName is returned when the current user name cannot be determined.
var ErrUserName = MakeErrorf("determine user name")

// ErrCreateLogDir is returned when the log folder cannot be created.
var ErrCreateLogDir = MakeErrorf("create log directory")

// ErrOpenLog is returned when the log file cannot be opened for appending.
var ErrOpenLog = MakeErrorf("open log file")

// ErrWriteLog is returned when an entry cannot be written to the log file.
var ErrWriteLog = MakeErrorf("write log file")

// ErrUnresolved is returned when a write is attempted by a context whose
// resolution did not produce a log file path.
var ErrUnresolved = MakeErrorf("log file path unresolved")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ".
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to the receiver and returns the result.
// The receiver is never modified.
func (e Error) Wrap(err ...error) Error {
	return append(slices.Clip(e), err...)
}

// Wrapf appends a formatted error to the receiver and returns the result.
func (e Error) Wrapf(format string, args ...any) Error {
	return e.Wrap(fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// Is reports whether target is an Error whose chain is a prefix of the
// receiver's chain. Sentinels are single-element chains, so any error built
// with sentinel.Wrap(...) matches its sentinel.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok || len(t) == 0 || len(t) > len(e) {
		return false
	}

	for i := range t {
		if !sameError(e[i], t[i]) {
			return false
		}
	}

	return true
}

func sameError(a, b error) bool {
	ae, aok := a.(Error)
	be, bok := b.(Error)

	switch {
	case aok && bok:
		return len(ae) == len(be) && ae.Is(be)
	case aok || bok:
		return false
	default:
		return a == b
	}
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
