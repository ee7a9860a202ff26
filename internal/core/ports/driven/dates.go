package driven

import (
	"time"

	"github.com/custodia-labs/cloudkit/internal/core/domain"
)

// DateFormatter converts timestamps to and from one textual convention.
// Implementations are stateless and safe for concurrent use.
type DateFormatter interface {
	// Format returns the canonical text for t.
	Format(t time.Time) string

	// Parse returns the instant denoted by text.
	// Fails with *domain.FormatError when text does not match the convention.
	Parse(text string) (time.Time, error)

	// Name returns the convention implemented.
	Name() domain.DateFormat
}
