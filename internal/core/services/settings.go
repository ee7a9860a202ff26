package services

import (
	"errors"
	"fmt"
	"maps"

	"github.com/custodia-labs/cloudkit/internal/core/domain"
	"github.com/custodia-labs/cloudkit/internal/core/ports/driven"
	"github.com/custodia-labs/cloudkit/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages the parser settings.
type SettingsService struct {
	store driven.SettingsStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store driven.SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get retrieves the current settings.
func (s *SettingsService) Get() (domain.ParserSettings, error) {
	return s.store.Load()
}

// Save validates and persists settings.
func (s *SettingsService) Save(settings domain.ParserSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.store.Save(settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SetDateFormat selects the active timestamp convention.
func (s *SettingsService) SetDateFormat(format domain.DateFormat) error {
	if !format.IsValid() {
		return &domain.ConfigurationError{Component: "dates", Err: fmt.Errorf("unknown date format %q", format)}
	}
	return s.update(func(settings *domain.ParserSettings) {
		settings.DateFormat = format
	})
}

// SetResolveHosts enables or disables host lookups in the address adapter.
func (s *SettingsService) SetResolveHosts(enabled bool) error {
	return s.update(func(settings *domain.ParserSettings) {
		settings.ResolveHosts = enabled
	})
}

// SetEntity adds or replaces a named XML entity.
func (s *SettingsService) SetEntity(name, text string) error {
	if name == "" {
		return &domain.ConfigurationError{Component: "xml", Err: errors.New("entity with empty name")}
	}
	return s.update(func(settings *domain.ParserSettings) {
		entities := maps.Clone(settings.XML.Entities)
		if entities == nil {
			entities = make(map[string]string, 1)
		}
		entities[name] = text
		settings.XML.Entities = entities
	})
}

// RemoveEntity deletes a named XML entity.
func (s *SettingsService) RemoveEntity(name string) error {
	return s.update(func(settings *domain.ParserSettings) {
		if _, ok := settings.XML.Entities[name]; !ok {
			return
		}
		entities := maps.Clone(settings.XML.Entities)
		delete(entities, name)
		if len(entities) == 0 {
			entities = nil
		}
		settings.XML.Entities = entities
	})
}

// GetDefaults returns the default settings.
func (s *SettingsService) GetDefaults() domain.ParserSettings {
	return domain.DefaultParserSettings()
}

// update applies a change to the stored settings, leaving overrides such as
// environment variables out of what is saved.
func (s *SettingsService) update(apply func(*domain.ParserSettings)) error {
	settings, err := s.store.LoadStored()
	if err != nil {
		return err
	}
	apply(&settings)
	return s.Save(settings)
}
