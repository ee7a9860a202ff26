package dateformat

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/cloudkit/internal/core/domain"
	"github.com/custodia-labs/cloudkit/internal/core/ports/driven"
)

// Ensure both conventions implement the interface.
var (
	_ driven.DateFormatter = ISO8601{}
	_ driven.DateFormatter = CStyle{}
)

const (
	iso8601Layout = time.RFC3339Nano

	// cLayout renders the EEE MMM dd HH:mm:ss '+0000' yyyy convention
	// when the time is in UTC.
	cLayout = "Mon Jan 02 15:04:05 -0700 2006"
)

// Layouts accepted on parse, most common first.
var (
	iso8601Layouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999Z0700",
		"2006-01-02T15:04:05.999999999", // no zone: UTC
	}

	cLayouts = []string{
		cLayout,
		"Mon Jan _2 15:04:05 -0700 2006",
		time.UnixDate,
	}
)

// New returns the convention named by format.
func New(format domain.DateFormat) (driven.DateFormatter, error) {
	switch format {
	case domain.DateFormatISO8601:
		return ISO8601{}, nil
	case domain.DateFormatC:
		return CStyle{}, nil
	default:
		return nil, &domain.ConfigurationError{
			Component: "dates",
			Err:       fmt.Errorf("unknown date format %q", format),
		}
	}
}

// ISO8601 is the RFC 3339 profile of ISO 8601.
type ISO8601 struct{}

// Name returns domain.DateFormatISO8601.
func (ISO8601) Name() domain.DateFormat { return domain.DateFormatISO8601 }

// Format renders t in UTC, e.g. "2011-12-01T16:32:25Z".
// Fractional seconds are written only when non-zero.
func (ISO8601) Format(t time.Time) string {
	return t.UTC().Format(iso8601Layout)
}

// Parse accepts RFC 3339 text with or without fractional seconds, numeric
// offsets without a colon, and zone-less text which is read as UTC.
func (ISO8601) Parse(text string) (time.Time, error) {
	return parse(domain.DateFormatISO8601, iso8601Layouts, text)
}

// CStyle is the ctime-like convention, e.g. "Thu Dec 01 16:32:25 +0000 2011".
type CStyle struct{}

// Name returns domain.DateFormatC.
func (CStyle) Name() domain.DateFormat { return domain.DateFormatC }

// Format renders t in UTC with a "+0000" offset.
func (CStyle) Format(t time.Time) string {
	return t.UTC().Format(cLayout)
}

// Parse accepts numeric offsets and zone abbreviations.
func (CStyle) Parse(text string) (time.Time, error) {
	return parse(domain.DateFormatC, cLayouts, text)
}

func parse(format domain.DateFormat, layouts []string, text string) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, &domain.FormatError{Format: format, Text: text, Err: errors.New("empty timestamp")}
	}

	var firstErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, &domain.FormatError{Format: format, Text: text, Err: firstErr}
}
