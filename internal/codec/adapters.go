package codec

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/cloudkit/internal/core/domain"
	"github.com/custodia-labs/cloudkit/internal/core/ports/driven"
)

const (
	kindAddress   = "address"
	kindTimestamp = "timestamp"
	kindUUID      = "uuid"
)

// HostResolver maps a host name to an address.
type HostResolver func(host string) (netip.Addr, error)

// SystemHostResolver resolves host names through the system resolver,
// returning the first address. Each lookup is bounded by timeout.
func SystemHostResolver(timeout time.Duration) HostResolver {
	return func(host string) (netip.Addr, error) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		addrs, err := net.DefaultResolver.LookupNetIP(ctx, "ip", host)
		if err != nil {
			return netip.Addr{}, err
		}
		if len(addrs) == 0 {
			return netip.Addr{}, fmt.Errorf("no addresses for %s", host)
		}
		return addrs[0].Unmap(), nil
	}
}

// AddressAdapter converts network addresses to and from their canonical text.
type AddressAdapter struct {
	resolve HostResolver
}

// NewAddressAdapter returns an address adapter. With a nil resolver only
// address literals are accepted.
func NewAddressAdapter(resolve HostResolver) *AddressAdapter {
	return &AddressAdapter{resolve: resolve}
}

// Serialize returns the canonical text of addr, e.g. "10.0.0.1" or "2001:db8::1".
// The zero address serializes to "".
func (a *AddressAdapter) Serialize(addr netip.Addr) (string, error) {
	if !addr.IsValid() {
		return "", nil
	}
	return addr.String(), nil
}

// Deserialize resolves text to an address. The empty string yields the zero
// address. Text that is neither a literal nor a resolvable host fails with
// *domain.ResolutionError.
func (a *AddressAdapter) Deserialize(text string) (netip.Addr, error) {
	if text == "" {
		return netip.Addr{}, nil
	}

	addr, err := netip.ParseAddr(text)
	if err == nil {
		return addr, nil
	}
	if a.resolve == nil {
		return netip.Addr{}, &domain.ResolutionError{Kind: kindAddress, Value: text, Err: err}
	}

	addr, err = a.resolve(text)
	if err != nil {
		return netip.Addr{}, &domain.ResolutionError{Kind: kindAddress, Value: text, Err: err}
	}
	if !addr.IsValid() {
		return netip.Addr{}, &domain.ResolutionError{Kind: kindAddress, Value: text, Err: errors.New("resolver returned no address")}
	}
	return addr, nil
}

// Adapter returns the registry form of the address adapter.
func (a *AddressAdapter) Adapter() Adapter {
	return NewAdapter(kindAddress, a.Serialize, a.Deserialize)
}

// TimestampAdapter returns the adapter for time.Time. Both directions
// delegate to dates.
func TimestampAdapter(dates driven.DateFormatter) Adapter {
	return NewAdapter(kindTimestamp,
		func(t time.Time) (string, error) { return dates.Format(t), nil },
		dates.Parse,
	)
}

// UUIDAdapter returns the adapter for uuid.UUID. Malformed identifiers fail
// with *domain.ResolutionError.
func UUIDAdapter() Adapter {
	return NewAdapter(kindUUID,
		func(id uuid.UUID) (string, error) { return id.String(), nil },
		func(text string) (uuid.UUID, error) {
			id, err := uuid.Parse(text)
			if err != nil {
				return uuid.Nil, &domain.ResolutionError{Kind: kindUUID, Value: text, Err: err}
			}
			return id, nil
		},
	)
}
