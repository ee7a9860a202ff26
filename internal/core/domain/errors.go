package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every structured error below matches exactly one of these
// through errors.Is, so callers can branch on the kind without knowing the
// concrete type.
var (
	// ErrConfiguration indicates a codec or parser could not be constructed.
	// It is fatal and must not be retried.
	ErrConfiguration = errors.New("configuration error")

	// ErrStreamParse indicates malformed or truncated markup input.
	ErrStreamParse = errors.New("stream parse error")

	// ErrResolution indicates text that looks like a special value (an
	// address, an identifier) but cannot be resolved to one.
	ErrResolution = errors.New("resolution error")

	// ErrDecode indicates a structural failure while decoding JSON text.
	ErrDecode = errors.New("decode error")

	// ErrFormat indicates a timestamp that does not match the active format.
	ErrFormat = errors.New("format error")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// ConfigurationError reports a component that could not be assembled.
type ConfigurationError struct {
	Component string
	Err       error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %v", e.Component, e.Err)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// Unwrap returns the underlying cause.
func (e *ConfigurationError) Unwrap() error { return e.Err }

// StreamParseError reports malformed markup. Line and Column are 1-based and
// zero when the position is unknown. Offset is the byte offset into the input.
type StreamParseError struct {
	Line   int
	Column int
	Offset int64
	Err    error
}

func (e *StreamParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("stream parse: line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("stream parse: %v", e.Err)
}

// Is reports whether target is ErrStreamParse.
func (e *StreamParseError) Is(target error) bool { return target == ErrStreamParse }

// Unwrap returns the underlying cause.
func (e *StreamParseError) Unwrap() error { return e.Err }

// ResolutionError reports a value of a special type that could not be resolved.
type ResolutionError struct {
	// Kind names the special type, e.g. "address" or "uuid".
	Kind  string
	Value string
	Err   error
}

func (e *ResolutionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("resolve %s %q", e.Kind, e.Value)
	}
	return fmt.Sprintf("resolve %s %q: %v", e.Kind, e.Value, e.Err)
}

// Is reports whether target is ErrResolution.
func (e *ResolutionError) Is(target error) bool { return target == ErrResolution }

// Unwrap returns the underlying cause.
func (e *ResolutionError) Unwrap() error { return e.Err }

// DecodeError reports a JSON decode failure. Path is a JSON pointer
// ("/datacenters/0/id") and Fragment the offending input, when known.
type DecodeError struct {
	Path     string
	Fragment string
	Err      error
}

func (e *DecodeError) Error() string {
	msg := "decode"
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Fragment != "" {
		msg += fmt.Sprintf(" (near %q)", e.Fragment)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error { return e.Err }

// FormatError reports a timestamp that does not match the expected layout.
type FormatError struct {
	Format DateFormat
	Text   string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("parse %s timestamp %q: %v", e.Format, e.Text, e.Err)
}

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Unwrap returns the underlying cause.
func (e *FormatError) Unwrap() error { return e.Err }
