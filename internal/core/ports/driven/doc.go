// Package driven defines the interfaces that the parsing core calls OUT to,
// or that backend code plugs IN to.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
//
// # Interfaces
//
//   - ParseHandler: per-call accumulator fed by the streaming markup parser
//   - Event: the sealed set of markup events a handler consumes
//   - DateFormatter: one named timestamp convention
//   - Codec: whole-payload JSON encode/decode with registered type adapters
//   - ParentResolver: lazily supplies the parent of a mapped location
//   - SettingsStore: persistence of the parser settings
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, codec, parser, or provider package
package driven
