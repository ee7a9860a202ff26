// Package memory provides in-memory implementations of driven ports for tests
// and for callers that assemble settings programmatically.
package memory

import (
	"maps"
	"sync"

	"github.com/custodia-labs/cloudkit/internal/core/domain"
	"github.com/custodia-labs/cloudkit/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore is an in-memory implementation of driven.SettingsStore.
type SettingsStore struct {
	mu       sync.RWMutex
	settings domain.ParserSettings
}

// NewSettingsStore creates a store holding the default settings.
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{settings: domain.DefaultParserSettings()}
}

// Load returns a copy of the stored settings.
func (s *SettingsStore) Load() (domain.ParserSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.settings), nil
}

// LoadStored returns the same as Load; the memory store has no overrides.
func (s *SettingsStore) LoadStored() (domain.ParserSettings, error) {
	return s.Load()
}

// Save validates and stores a copy of settings.
func (s *SettingsStore) Save(settings domain.ParserSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = clone(settings)
	return nil
}

// Path returns an empty string; nothing is persisted.
func (s *SettingsStore) Path() string {
	return ""
}

func clone(settings domain.ParserSettings) domain.ParserSettings {
	settings.XML.Entities = maps.Clone(settings.XML.Entities)
	return settings
}
