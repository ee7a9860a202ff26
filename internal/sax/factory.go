package sax

import (
	"context"
	"io"
	"maps"

	"github.com/custodia-labs/cloudkit/internal/core/domain"
	"github.com/custodia-labs/cloudkit/internal/core/ports/driven"
)

// Factory creates parsers. It is immutable and safe for concurrent use.
type Factory struct {
	entities map[string]string
}

// NewFactory validates settings and returns a factory. Unsupported features
// (namespace awareness, DTD validation, external entities) fail here with a
// *domain.ConfigurationError rather than on each parse.
func NewFactory(settings domain.XMLSettings) (*Factory, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Factory{entities: maps.Clone(settings.Entities)}, nil
}

// NewParser binds handler to a new parser. Parsers are never shared or
// reused; call NewParser once per parse.
func NewParser[T any](f *Factory, handler driven.ParseHandler[T]) *Parser[T] {
	return &Parser[T]{entities: f.entities, handler: handler}
}

// Parse is shorthand for NewParser(f, handler).Run(ctx, r).
func Parse[T any](ctx context.Context, f *Factory, handler driven.ParseHandler[T], r io.Reader) (T, error) {
	return NewParser(f, handler).Run(ctx, r)
}
