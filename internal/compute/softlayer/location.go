package softlayer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/custodia-labs/cloudkit/internal/core/domain"
	"github.com/custodia-labs/cloudkit/internal/core/ports/driven"
)

// ProviderID is the identifier of the SoftLayer provider location.
const ProviderID = "softlayer"

// NewProviderLocation returns the root PROVIDER location for SoftLayer.
func NewProviderLocation(description string) (*domain.Location, error) {
	return domain.NewLocationBuilder().
		Scope(domain.LocationScopeProvider).
		ID(ProviderID).
		Description(description).
		Build()
}

// DatacenterToLocation converts datacenters into ZONE locations.
// It holds no mutable state and may be shared.
type DatacenterToLocation struct {
	parent driven.ParentResolver
}

// NewDatacenterToLocation returns a mapper that asks parent for the
// enclosing location once per Apply call.
func NewDatacenterToLocation(parent driven.ParentResolver) (*DatacenterToLocation, error) {
	if parent == nil {
		return nil, &domain.ConfigurationError{Component: "softlayer", Err: errors.New("nil parent resolver")}
	}
	return &DatacenterToLocation{parent: parent}, nil
}

// Apply maps dc to a ZONE location. The parent resolver is invoked exactly
// once, after every other attribute is set; its error is returned as is.
func (m *DatacenterToLocation) Apply(dc *domain.Datacenter) (*domain.Location, error) {
	if dc == nil {
		return nil, fmt.Errorf("%w: nil datacenter", domain.ErrInvalidInput)
	}

	b := domain.NewLocationBuilder().
		Scope(domain.LocationScopeZone).
		ID(strconv.FormatInt(dc.ID, 10)).
		Description(description(dc)).
		ISO3166Codes(iso3166Codes(dc.LocationAddress)...)

	parent, err := m.parent()
	if err != nil {
		return nil, err
	}

	return b.Parent(parent).
		Metadata(map[string]any{}).
		Build()
}

// ApplyAll maps every datacenter, stopping at the first error.
func (m *DatacenterToLocation) ApplyAll(dcs []domain.Datacenter) ([]*domain.Location, error) {
	out := make([]*domain.Location, 0, len(dcs))
	for i := range dcs {
		loc, err := m.Apply(&dcs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, loc)
	}
	return out, nil
}

// description prefers the long name ("Dallas 5") and falls back to the
// short one ("dal05") for listings that only carry names.
func description(dc *domain.Datacenter) string {
	if dc.LongName != "" {
		return dc.LongName
	}
	return dc.Name
}

// iso3166Codes returns "<country>-<state>" for a present address, even when
// one half is empty, and nothing for an absent one.
func iso3166Codes(addr *domain.Address) []string {
	if addr == nil {
		return nil
	}
	return []string{addr.Country + "-" + addr.State}
}
