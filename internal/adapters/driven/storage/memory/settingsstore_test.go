package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cloudkit/internal/core/domain"
)

func TestSettingsStore_Defaults(t *testing.T) {
	store := NewSettingsStore()

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultParserSettings(), settings)
	assert.Empty(t, store.Path())
}

func TestSettingsStore_SaveAndLoad(t *testing.T) {
	store := NewSettingsStore()
	want := domain.ParserSettings{
		DateFormat: domain.DateFormatC,
		XML:        domain.XMLSettings{Entities: map[string]string{"nbsp": " "}},
	}

	require.NoError(t, store.Save(want))
	got, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsStore_CopiesEntities(t *testing.T) {
	store := NewSettingsStore()
	entities := map[string]string{"nbsp": " "}
	require.NoError(t, store.Save(domain.ParserSettings{
		DateFormat: domain.DateFormatISO8601,
		XML:        domain.XMLSettings{Entities: entities},
	}))

	entities["nbsp"] = "changed"
	got, err := store.Load()
	require.NoError(t, err)
	got.XML.Entities["extra"] = "x"

	again, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"nbsp": " "}, again.XML.Entities)
}

func TestSettingsStore_RejectsInvalid(t *testing.T) {
	store := NewSettingsStore()

	err := store.Save(domain.ParserSettings{DateFormat: domain.DateFormatC, XML: domain.XMLSettings{Validating: true}})

	assert.ErrorIs(t, err, domain.ErrConfiguration)
	got, _ := store.Load()
	assert.Equal(t, domain.DefaultParserSettings(), got)
}

func TestSettingsStore_LoadStoredMatchesLoad(t *testing.T) {
	store := NewSettingsStore()
	require.NoError(t, store.Save(domain.ParserSettings{DateFormat: domain.DateFormatC, ResolveHosts: true}))

	loaded, err := store.Load()
	require.NoError(t, err)
	stored, err := store.LoadStored()
	require.NoError(t, err)

	assert.Equal(t, loaded, stored)
}
