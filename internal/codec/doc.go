// Package codec provides the JSON codec used by provider backends.
//
// A codec is assembled once from a Registry of type adapters. An adapter
// binds one Go type to a pair of functions that convert values of that type
// to and from their textual wire form. Every codec carries:
//
//   - the network address adapter (netip.Addr)
//   - exactly one timestamp adapter (time.Time), backed by the active
//     driven.DateFormatter
//   - the identifier adapter (uuid.UUID)
//
// Backends may register more with WithAdapter. All other types, such as
// integers, strings, slices and nested structs, use default JSON behaviour.
//
// # Usage
//
//	c, err := codec.Build(dateformat.ISO8601{})
//	if err != nil {
//		return err
//	}
//	dcs, err := codec.DecodeAs[[]domain.Datacenter](c, body)
//
// Decode failures are *domain.DecodeError values carrying the JSON pointer
// of the offending member. Adapter failures, such as *domain.ResolutionError,
// are reachable through errors.As on the returned error.
//
// A built Codec is immutable and safe for concurrent use.
package codec
