package driven

import "github.com/custodia-labs/cloudkit/internal/core/domain"

// SettingsStore provides the parser configuration.
// Implementations handle persistence (e.g., TOML files) and overrides.
type SettingsStore interface {
	// Load returns the effective settings: the stored values with any
	// overrides (such as environment variables) applied, validated.
	// A missing store yields the defaults.
	Load() (domain.ParserSettings, error)

	// LoadStored returns only what is persisted, without overrides. Updates
	// start from here so overrides are never written back.
	LoadStored() (domain.ParserSettings, error)

	// Save persists settings after validating them.
	Save(settings domain.ParserSettings) error

	// Path returns the location of the backing file.
	Path() string
}
