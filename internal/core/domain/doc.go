// Package domain defines the provider-neutral entities of cloudkit.
//
// This package is the innermost layer of the hexagon. It has NO external
// dependencies and defines the fundamental types:
//
//   - Location: a node in the provider location graph (provider, region, zone)
//   - Datacenter: the SoftLayer datacenter record consumed by the mappers
//   - ParserSettings: the configuration the parsing core is assembled from
//   - the error taxonomy shared by codecs, parsers and mappers
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
