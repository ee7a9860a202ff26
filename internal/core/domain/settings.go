package domain

import (
	"errors"
	"fmt"
)

const unknownDescription = "Unknown"

// DateFormat names a timestamp convention used on the wire.
type DateFormat string

// Available date formats.
const (
	// DateFormatISO8601 is the RFC 3339 profile of ISO 8601,
	// e.g. "2011-12-01T16:32:25Z".
	DateFormatISO8601 DateFormat = "iso8601"

	// DateFormatC is the C/ctime-style convention used by older provider APIs,
	// e.g. "Thu Dec 01 16:32:25 +0000 2011".
	DateFormatC DateFormat = "c"
)

// IsValid returns true if the date format is recognised.
func (f DateFormat) IsValid() bool {
	switch f {
	case DateFormatISO8601, DateFormatC:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f DateFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f DateFormat) Description() string {
	switch f {
	case DateFormatISO8601:
		return "ISO 8601 (2006-01-02T15:04:05Z)"
	case DateFormatC:
		return "C style (Mon Jan 02 15:04:05 +0000 2006)"
	default:
		return unknownDescription
	}
}

// XMLSettings configures the streaming markup parser.
// The three feature switches exist so that configuration files can state
// them explicitly; only false is supported.
type XMLSettings struct {
	// NamespaceAware resolves element prefixes to namespace URIs.
	NamespaceAware bool

	// Validating enables DTD validation.
	Validating bool

	// ExternalEntities enables inclusion of external entities.
	ExternalEntities bool

	// Entities maps additional named entities to their replacement text.
	Entities map[string]string
}

// ParserSettings holds the configuration the parsing core is built from.
// It is assembled once at startup and treated as immutable afterwards.
type ParserSettings struct {
	// DateFormat selects the single active timestamp convention.
	DateFormat DateFormat

	// ResolveHosts lets the address adapter fall back to a host lookup
	// when the text is not an address literal.
	ResolveHosts bool

	// XML configures the streaming markup parser.
	XML XMLSettings
}

// DefaultParserSettings returns the default configuration.
func DefaultParserSettings() ParserSettings {
	return ParserSettings{
		DateFormat: DateFormatISO8601,
	}
}

// Validate checks the settings for values no component can be built from.
func (s ParserSettings) Validate() error {
	if !s.DateFormat.IsValid() {
		return &ConfigurationError{Component: "dates", Err: fmt.Errorf("unknown date format %q", s.DateFormat)}
	}
	return s.XML.Validate()
}

// Validate rejects parser features that are not supported.
func (x XMLSettings) Validate() error {
	switch {
	case x.NamespaceAware:
		return &ConfigurationError{Component: "xml", Err: errors.New("namespace-aware parsing is not supported")}
	case x.Validating:
		return &ConfigurationError{Component: "xml", Err: errors.New("DTD validation is not supported")}
	case x.ExternalEntities:
		return &ConfigurationError{Component: "xml", Err: errors.New("external entity inclusion is not supported")}
	}
	for name := range x.Entities {
		if name == "" {
			return &ConfigurationError{Component: "xml", Err: errors.New("entity with empty name")}
		}
	}
	return nil
}
