// Package dateformat implements the named timestamp conventions providers
// use on the wire.
//
// Exactly one convention is active per codec. It is chosen from
// domain.ParserSettings when the parsing core is assembled:
//
//	dates, err := dateformat.New(settings.DateFormat)
//
// Both conventions are stateless and safe for concurrent use.
package dateformat
