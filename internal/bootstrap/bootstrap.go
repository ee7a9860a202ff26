// Package bootstrap assembles the parsing core from ParserSettings.
// Everything it builds is immutable and shared by all callers.
package bootstrap

import (
	"time"

	"github.com/custodia-labs/cloudkit/internal/codec"
	"github.com/custodia-labs/cloudkit/internal/core/domain"
	"github.com/custodia-labs/cloudkit/internal/core/ports/driven"
	"github.com/custodia-labs/cloudkit/internal/dateformat"
	"github.com/custodia-labs/cloudkit/internal/logger"
	"github.com/custodia-labs/cloudkit/internal/sax"
)

// HostLookupTimeout bounds each host lookup made by the address adapter.
const HostLookupTimeout = 5 * time.Second

var log = logger.Component("bootstrap")

// Module holds the components built from one set of settings.
type Module struct {
	settings domain.ParserSettings
	dates    driven.DateFormatter
	codec    *codec.Codec
	parsers  *sax.Factory
}

// New validates settings and builds the date strategy, the codec and the
// parser factory. Any configuration problem is reported here, once.
func New(settings domain.ParserSettings, opts ...codec.Option) (*Module, error) {
	logger.Section("Bootstrap")

	if err := settings.Validate(); err != nil {
		log.Error("invalid settings: %v", err)
		return nil, err
	}

	dates, err := dateformat.New(settings.DateFormat)
	if err != nil {
		return nil, err
	}
	log.Debug("date format: %s", dates.Name().Description())

	if settings.ResolveHosts {
		log.Debug("host resolution enabled (timeout %s)", HostLookupTimeout)
		opts = append([]codec.Option{codec.WithHostResolver(codec.SystemHostResolver(HostLookupTimeout))}, opts...)
	}
	c, err := codec.Build(dates, opts...)
	if err != nil {
		return nil, err
	}
	log.Debug("codec adapters: %v", c.Kinds())

	parsers, err := sax.NewFactory(settings.XML)
	if err != nil {
		return nil, err
	}
	log.Debug("xml entities: %d", len(settings.XML.Entities))

	return &Module{
		settings: settings,
		dates:    dates,
		codec:    c,
		parsers:  parsers,
	}, nil
}

// Settings returns the settings the module was built from.
func (m *Module) Settings() domain.ParserSettings { return m.settings }

// Dates returns the active date strategy.
func (m *Module) Dates() driven.DateFormatter { return m.dates }

// Codec returns the shared structured-text codec.
func (m *Module) Codec() *codec.Codec { return m.codec }

// Parsers returns the shared parser factory.
func (m *Module) Parsers() *sax.Factory { return m.parsers }
