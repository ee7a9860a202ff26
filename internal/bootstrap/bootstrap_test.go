package bootstrap

import (
	"bytes"
	"net/netip"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cloudkit/internal/codec"
	"github.com/custodia-labs/cloudkit/internal/core/domain"
	"github.com/custodia-labs/cloudkit/internal/logger"
)

func TestNew_Defaults(t *testing.T) {
	m, err := New(domain.DefaultParserSettings())
	require.NoError(t, err)

	assert.Equal(t, domain.DateFormatISO8601, m.Dates().Name())
	assert.Equal(t, []string{"address", "timestamp", "uuid"}, m.Codec().Kinds())
	assert.NotNil(t, m.Parsers())
	assert.Equal(t, domain.DefaultParserSettings(), m.Settings())
}

func TestNew_CStyleDates(t *testing.T) {
	settings := domain.DefaultParserSettings()
	settings.DateFormat = domain.DateFormatC

	m, err := New(settings)
	require.NoError(t, err)

	assert.Equal(t, domain.DateFormatC, m.Dates().Name())
}

func TestNew_InvalidSettings(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*domain.ParserSettings)
		contains string
	}{
		{"unknown date format", func(s *domain.ParserSettings) { s.DateFormat = "rfc822" }, "rfc822"},
		{"namespace aware", func(s *domain.ParserSettings) { s.XML.NamespaceAware = true }, "namespace"},
		{"validating", func(s *domain.ParserSettings) { s.XML.Validating = true }, "DTD"},
		{"external entities", func(s *domain.ParserSettings) { s.XML.ExternalEntities = true }, "external"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := domain.DefaultParserSettings()
			tt.mutate(&settings)

			m, err := New(settings)

			assert.Nil(t, m)
			assert.ErrorIs(t, err, domain.ErrConfiguration)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestNew_ExtraAdapter(t *testing.T) {
	type region string
	extra := codec.NewAdapter("region",
		func(r region) (string, error) { return string(r), nil },
		func(s string) (region, error) { return region(s), nil },
	)

	m, err := New(domain.DefaultParserSettings(), codec.WithAdapter(extra))
	require.NoError(t, err)

	assert.Equal(t, []string{"address", "timestamp", "uuid", "region"}, m.Codec().Kinds())
}

func TestNew_ExplicitResolverWinsOverSystem(t *testing.T) {
	settings := domain.DefaultParserSettings()
	settings.ResolveHosts = true
	fixed := netip.MustParseAddr("10.1.2.3")

	m, err := New(settings, codec.WithHostResolver(func(string) (netip.Addr, error) { return fixed, nil }))
	require.NoError(t, err)

	var got struct {
		IP netip.Addr `json:"ip"`
	}
	require.NoError(t, m.Codec().Decode([]byte(`{"ip": "backend.internal"}`), &got))
	assert.Equal(t, fixed, got.IP)
}

func TestNew_LogsWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})

	_, err := New(domain.DefaultParserSettings())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "=== Bootstrap ===")
	assert.Contains(t, buf.String(), "[DEBUG] bootstrap: codec adapters: [address timestamp uuid]")
}
