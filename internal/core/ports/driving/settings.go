package driving

import "github.com/custodia-labs/cloudkit/internal/core/domain"

// SettingsService manages the parser settings.
type SettingsService interface {
	// Get retrieves the current settings.
	Get() (domain.ParserSettings, error)

	// Save validates and persists settings.
	Save(settings domain.ParserSettings) error

	// SetDateFormat selects the active timestamp convention.
	SetDateFormat(format domain.DateFormat) error

	// SetResolveHosts enables or disables host lookups in the address adapter.
	SetResolveHosts(enabled bool) error

	// SetEntity adds or replaces a named XML entity.
	SetEntity(name, text string) error

	// RemoveEntity deletes a named XML entity. Removing an unknown name is a no-op.
	RemoveEntity(name string) error

	// GetDefaults returns the default settings.
	GetDefaults() domain.ParserSettings
}
