// Package sax drives driven.ParseHandler implementations from a forward-only
// XML token stream.
//
// A Factory is built once from domain.XMLSettings and shared. Each parse
// gets its own Parser bound to one handler:
//
//	p := sax.NewParser(factory, softlayer.NewDatacentersHandler())
//	dcs, err := p.Run(ctx, resp.Body)
//
// The parser never builds a document tree, never resolves namespace
// prefixes, and never processes DTDs or external entities. Start and end
// tags are matched by the parser; a stream that ends with open elements is
// an error, and no partial result is returned.
package sax
