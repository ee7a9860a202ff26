package softlayer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cloudkit/internal/core/domain"
)

func newProvider(t *testing.T) *domain.Location {
	t.Helper()
	p, err := NewProviderLocation("SoftLayer")
	require.NoError(t, err)
	return p
}

func TestNewProviderLocation(t *testing.T) {
	p := newProvider(t)

	assert.Equal(t, domain.LocationScopeProvider, p.Scope())
	assert.Equal(t, ProviderID, p.ID())
	assert.Equal(t, "SoftLayer", p.Description())
	assert.Nil(t, p.Parent())
}

func TestNewDatacenterToLocation_NilResolver(t *testing.T) {
	m, err := NewDatacenterToLocation(nil)

	assert.Nil(t, m)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestApply_Dallas(t *testing.T) {
	provider := newProvider(t)
	m, err := NewDatacenterToLocation(func() (*domain.Location, error) { return provider, nil })
	require.NoError(t, err)

	loc, err := m.Apply(&domain.Datacenter{
		ID:              142,
		Name:            "dal05",
		LocationAddress: &domain.Address{Country: "US", State: "TX"},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.LocationScopeZone, loc.Scope())
	assert.Equal(t, "142", loc.ID())
	assert.Equal(t, "dal05", loc.Description())
	assert.Equal(t, []string{"US-TX"}, loc.ISO3166Codes())
	assert.Empty(t, loc.Metadata())
	assert.NotNil(t, loc.Metadata())
	assert.Same(t, provider, loc.Parent())
}

func TestApply_PrefersLongName(t *testing.T) {
	m, err := NewDatacenterToLocation(func() (*domain.Location, error) { return nil, nil })
	require.NoError(t, err)

	loc, err := m.Apply(&domain.Datacenter{ID: 3, Name: "dal05", LongName: "Dallas 5"})
	require.NoError(t, err)

	assert.Equal(t, "Dallas 5", loc.Description())
}

func TestApply_RegionCodes(t *testing.T) {
	tests := []struct {
		name    string
		address *domain.Address
		want    []string
	}{
		{"no address", nil, []string{}},
		{"country and state", &domain.Address{Country: "SG", State: "SG"}, []string{"SG-SG"}},
		{"country only", &domain.Address{Country: "US"}, []string{"US-"}},
		{"state only", &domain.Address{State: "TX"}, []string{"-TX"}},
		{"empty address", &domain.Address{}, []string{"-"}},
	}

	m, err := NewDatacenterToLocation(func() (*domain.Location, error) { return nil, nil })
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := m.Apply(&domain.Datacenter{ID: 1, Name: "x", LocationAddress: tt.address})
			require.NoError(t, err)
			assert.Equal(t, tt.want, loc.ISO3166Codes())
		})
	}
}

func TestApply_ResolvesParentOnce(t *testing.T) {
	provider := newProvider(t)
	calls := 0
	m, err := NewDatacenterToLocation(func() (*domain.Location, error) {
		calls++
		return provider, nil
	})
	require.NoError(t, err)
	assert.Zero(t, calls)

	loc, err := m.Apply(&domain.Datacenter{
		ID:              142,
		Name:            "dal05",
		LocationAddress: &domain.Address{Country: "US", State: "TX"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "142", loc.ID())
	assert.Equal(t, []string{"US-TX"}, loc.ISO3166Codes())
	assert.Same(t, provider, loc.Parent())
}

func TestApply_OneResolutionPerCall(t *testing.T) {
	calls := 0
	m, err := NewDatacenterToLocation(func() (*domain.Location, error) {
		calls++
		return nil, nil
	})
	require.NoError(t, err)

	for i := range 3 {
		_, err := m.Apply(&domain.Datacenter{ID: int64(i + 1)})
		require.NoError(t, err)
	}

	assert.Equal(t, 3, calls)
}

func TestApply_ResolverErrorPropagatesUnchanged(t *testing.T) {
	resolveErr := errors.New("backend unavailable")
	m, err := NewDatacenterToLocation(func() (*domain.Location, error) { return nil, resolveErr })
	require.NoError(t, err)

	loc, err := m.Apply(&domain.Datacenter{ID: 142, Name: "dal05"})

	assert.Nil(t, loc)
	assert.Same(t, resolveErr, err)
}

func TestApply_NilDatacenter(t *testing.T) {
	calls := 0
	m, err := NewDatacenterToLocation(func() (*domain.Location, error) {
		calls++
		return nil, nil
	})
	require.NoError(t, err)

	_, err = m.Apply(nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, calls)
}

func TestApply_ZeroID(t *testing.T) {
	m, err := NewDatacenterToLocation(func() (*domain.Location, error) { return nil, nil })
	require.NoError(t, err)

	loc, err := m.Apply(&domain.Datacenter{})
	require.NoError(t, err)

	assert.Equal(t, "0", loc.ID())
}

func TestApplyAll(t *testing.T) {
	provider := newProvider(t)
	m, err := NewDatacenterToLocation(func() (*domain.Location, error) { return provider, nil })
	require.NoError(t, err)

	locs, err := m.ApplyAll([]domain.Datacenter{
		{ID: 142, Name: "dal05"},
		{ID: 168642, Name: "sjc01", LocationAddress: &domain.Address{Country: "US", State: "CA"}},
	})
	require.NoError(t, err)
	require.Len(t, locs, 2)

	assert.Equal(t, "142", locs[0].ID())
	assert.Equal(t, []string{"US-CA"}, locs[1].ISO3166Codes())
	assert.Equal(t, []*domain.Location{provider}, locs[1].Ancestors())
}

func TestApplyAll_StopsAtFirstError(t *testing.T) {
	resolveErr := errors.New("boom")
	calls := 0
	m, err := NewDatacenterToLocation(func() (*domain.Location, error) {
		calls++
		if calls == 2 {
			return nil, resolveErr
		}
		return nil, nil
	})
	require.NoError(t, err)

	locs, err := m.ApplyAll([]domain.Datacenter{{ID: 1}, {ID: 2}, {ID: 3}})

	assert.Nil(t, locs)
	assert.Same(t, resolveErr, err)
	assert.Equal(t, 2, calls)
}

func TestApplyAll_Empty(t *testing.T) {
	m, err := NewDatacenterToLocation(func() (*domain.Location, error) { return nil, nil })
	require.NoError(t, err)

	locs, err := m.ApplyAll(nil)
	require.NoError(t, err)

	assert.NotNil(t, locs)
	assert.Empty(t, locs)
}
