package domain

import (
	"fmt"
	"maps"
	"slices"
)

// LocationScope is the level of a location in the provider hierarchy.
type LocationScope string

// Available location scopes, outermost first.
const (
	LocationScopeProvider LocationScope = "PROVIDER"
	LocationScopeRegion   LocationScope = "REGION"
	LocationScopeZone     LocationScope = "ZONE"
	LocationScopeHost     LocationScope = "HOST"
)

// IsValid returns true if the scope is recognised.
func (s LocationScope) IsValid() bool {
	switch s {
	case LocationScopeProvider, LocationScopeRegion, LocationScopeZone, LocationScopeHost:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s LocationScope) String() string {
	return string(s)
}

// Location is an immutable node in the location graph.
// Construct one with LocationBuilder.
type Location struct {
	scope        LocationScope
	id           string
	description  string
	iso3166Codes []string
	metadata     map[string]any
	parent       *Location
}

// Scope returns the level of this location.
func (l *Location) Scope() LocationScope { return l.scope }

// ID returns the provider-stable identifier.
func (l *Location) ID() string { return l.id }

// Description returns the human-readable description.
func (l *Location) Description() string { return l.description }

// ISO3166Codes returns the region codes in sorted order.
// The returned slice is a copy and never nil.
func (l *Location) ISO3166Codes() []string {
	out := make([]string, len(l.iso3166Codes))
	copy(out, l.iso3166Codes)
	return out
}

// HasISO3166Code reports whether code is one of the location's region codes.
func (l *Location) HasISO3166Code(code string) bool {
	_, found := slices.BinarySearch(l.iso3166Codes, code)
	return found
}

// Metadata returns a copy of the metadata. Never nil.
func (l *Location) Metadata() map[string]any {
	out := make(map[string]any, len(l.metadata))
	maps.Copy(out, l.metadata)
	return out
}

// Parent returns the enclosing location, or nil for a root.
func (l *Location) Parent() *Location { return l.parent }

// String returns a compact representation, e.g. "ZONE:142".
func (l *Location) String() string {
	return fmt.Sprintf("%s:%s", l.scope, l.id)
}

// LocationBuilder accumulates the attributes of a Location.
// The zero value is ready to use.
type LocationBuilder struct {
	scope        LocationScope
	id           string
	description  string
	iso3166Codes []string
	metadata     map[string]any
	parent       *Location
}

// NewLocationBuilder returns an empty builder.
func NewLocationBuilder() *LocationBuilder {
	return &LocationBuilder{}
}

// Scope sets the location scope.
func (b *LocationBuilder) Scope(scope LocationScope) *LocationBuilder {
	b.scope = scope
	return b
}

// ID sets the identifier.
func (b *LocationBuilder) ID(id string) *LocationBuilder {
	b.id = id
	return b
}

// Description sets the description.
func (b *LocationBuilder) Description(description string) *LocationBuilder {
	b.description = description
	return b
}

// ISO3166Codes replaces the region codes. Duplicates collapse.
func (b *LocationBuilder) ISO3166Codes(codes ...string) *LocationBuilder {
	b.iso3166Codes = append([]string(nil), codes...)
	return b
}

// Metadata replaces the metadata.
func (b *LocationBuilder) Metadata(metadata map[string]any) *LocationBuilder {
	b.metadata = metadata
	return b
}

// Parent sets the enclosing location.
func (b *LocationBuilder) Parent(parent *Location) *LocationBuilder {
	b.parent = parent
	return b
}

// Build returns the location. Scope must be valid and ID non-empty.
func (b *LocationBuilder) Build() (*Location, error) {
	if !b.scope.IsValid() {
		return nil, fmt.Errorf("%w: location scope %q", ErrInvalidInput, b.scope)
	}
	if b.id == "" {
		return nil, fmt.Errorf("%w: %s location without id", ErrInvalidInput, b.scope)
	}

	codes := slices.Clone(b.iso3166Codes)
	slices.Sort(codes)
	codes = slices.Compact(codes)
	if codes == nil {
		codes = []string{}
	}

	metadata := make(map[string]any, len(b.metadata))
	maps.Copy(metadata, b.metadata)

	return &Location{
		scope:        b.scope,
		id:           b.id,
		description:  b.description,
		iso3166Codes: codes,
		metadata:     metadata,
		parent:       b.parent,
	}, nil
}

// Ancestors returns the parent chain from the immediate parent outwards.
func (l *Location) Ancestors() []*Location {
	var chain []*Location
	for p := l.parent; p != nil; p = p.parent {
		chain = append(chain, p)
	}
	return chain
}
