package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cloudkit/internal/core/domain"
)

const datacentersJSON = `[
  {"id": 142, "name": "dal05", "longName": "Dallas 5",
   "locationAddress": {"country": "US", "state": "TX"}},
  {"id": 358694, "name": "lon02"}
]`

const datacentersXML = `<?xml version="1.0"?>
<methodResponse><params><param><value><array><data>
<value><struct>
  <member><name>id</name><value><int>142</int></value></member>
  <member><name>name</name><value><string>dal05</string></value></member>
  <member><name>locationAddress</name><value><struct>
    <member><name>country</name><value><string>US</string></value></member>
    <member><name>state</name><value><string>TX</string></value></member>
  </struct></value></member>
</struct></value>
</data></array></value></param></params></methodResponse>`

func resetLocationsFlags(t *testing.T) {
	t.Cleanup(func() {
		locationsFile = ""
		locationsFormat = ""
		locationsJSON = false
		locationsDump = false
	})
}

func TestLocationsCmd_Use(t *testing.T) {
	assert.Equal(t, "locations", locationsCmd.Use)
	assert.Contains(t, locationsCmd.Long, "XML-RPC")
}

func TestLocationsCmd_JSONListing(t *testing.T) {
	useModule(t, domain.DefaultParserSettings())
	resetLocationsFlags(t)
	path := writeFile(t, "datacenters.json", datacentersJSON)

	out, err := execute(t, "locations", "--file", path)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"ZONE", "142", "Dallas", "5", "US-TX", "PROVIDER:softlayer"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"ZONE", "358694", "lon02", "-", "PROVIDER:softlayer"}, strings.Fields(lines[1]))
}

func TestLocationsCmd_XMLListing(t *testing.T) {
	useModule(t, domain.DefaultParserSettings())
	resetLocationsFlags(t)
	path := writeFile(t, "datacenters.xml", datacentersXML)

	out, err := execute(t, "locations", "--file", path)

	require.NoError(t, err)
	assert.Equal(t, []string{"ZONE", "142", "dal05", "US-TX", "PROVIDER:softlayer"}, strings.Fields(out))
}

func TestLocationsCmd_ExplicitFormat(t *testing.T) {
	useModule(t, domain.DefaultParserSettings())
	resetLocationsFlags(t)
	path := writeFile(t, "listing.txt", datacentersXML)

	out, err := execute(t, "locations", "--file", path, "--format", "xml")

	require.NoError(t, err)
	assert.Contains(t, out, "dal05")
}

func TestLocationsCmd_Stdin(t *testing.T) {
	useModule(t, domain.DefaultParserSettings())
	resetLocationsFlags(t)
	rootCmd.SetIn(strings.NewReader(datacentersJSON))
	t.Cleanup(func() { rootCmd.SetIn(nil) })

	out, err := execute(t, "locations", "--file", "-")

	require.NoError(t, err)
	assert.Contains(t, out, "Dallas 5")
}

func TestLocationsCmd_JSONOutput(t *testing.T) {
	useModule(t, domain.DefaultParserSettings())
	resetLocationsFlags(t)
	path := writeFile(t, "datacenters.json", datacentersJSON)

	out, err := execute(t, "locations", "--file", path, "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"id":"142"`)
	assert.Contains(t, out, `"iso3166Codes":["US-TX"]`)
	assert.Contains(t, out, `"iso3166Codes":[]`)
	assert.Contains(t, out, `"parent":"PROVIDER:softlayer"`)
}

func TestLocationsCmd_Dump(t *testing.T) {
	useModule(t, domain.DefaultParserSettings())
	resetLocationsFlags(t)
	path := writeFile(t, "datacenters.json", datacentersJSON)

	out, err := execute(t, "locations", "--file", path, "--dump")

	require.NoError(t, err)
	assert.Contains(t, out, "domain.Location")
	assert.Contains(t, out, `description: (string) (len=8) "Dallas 5"`)
	assert.Contains(t, out, `id: (string) (len=3) "142"`)
	assert.Contains(t, out, `(string) (len=5) "US-TX"`)
	assert.Contains(t, out, `id: (string) (len=9) "softlayer"`)
	assert.NotContains(t, out, "(ZONE:142)")
}

func TestLocationsCmd_EmptyListing(t *testing.T) {
	useModule(t, domain.DefaultParserSettings())
	resetLocationsFlags(t)
	path := writeFile(t, "datacenters.json", `[]`)

	out, err := execute(t, "locations", "--file", path)

	require.NoError(t, err)
	assert.Contains(t, out, "No datacenters found.")
}

func TestLocationsCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		args    []string
		is      error
	}{
		{"malformed xml", "bad.xml", "<methodResponse><params>", nil, domain.ErrStreamParse},
		{"malformed json", "bad.json", `[{"id": 1,`, nil, domain.ErrDecode},
		{"missing id", "bad.json", `[{"name": "dal05"}]`, nil, domain.ErrDecode},
		{"unknown format", "ok.json", `[]`, []string{"--format", "yaml"}, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useModule(t, domain.DefaultParserSettings())
			resetLocationsFlags(t)
			path := writeFile(t, tt.file, tt.content)

			_, err := execute(t, append([]string{"locations", "--file", path}, tt.args...)...)

			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestLocationsCmd_MissingFile(t *testing.T) {
	useModule(t, domain.DefaultParserSettings())
	resetLocationsFlags(t)

	_, err := execute(t, "locations", "--file", "/nonexistent/datacenters.json")

	assert.Error(t, err)
}

func TestLocationsCmd_LoadsSettingsFromConfig(t *testing.T) {
	SetModule(nil)
	resetLocationsFlags(t)
	cfg := writeFile(t, "settings.toml", "[xml]\nvalidating = true\n")
	path := writeFile(t, "datacenters.json", datacentersJSON)
	t.Cleanup(func() {
		configPath = ""
		SetModule(nil)
	})

	_, err := execute(t, "locations", "--config", cfg, "--file", path)

	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestListingFormat(t *testing.T) {
	tests := []struct {
		path, explicit, want string
	}{
		{"a.json", "", formatJSON},
		{"a.XML", "", formatXML},
		{"-", "", formatJSON},
		{"a.json", "XML", formatXML},
		{"a.xml", "json", formatJSON},
	}
	for _, tt := range tests {
		got, err := listingFormat(tt.path, tt.explicit)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.path+" "+tt.explicit)
	}
}
