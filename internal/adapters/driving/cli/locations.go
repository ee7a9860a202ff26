package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/cloudkit/internal/bootstrap"
	"github.com/custodia-labs/cloudkit/internal/compute/softlayer"
	"github.com/custodia-labs/cloudkit/internal/core/domain"
	"github.com/custodia-labs/cloudkit/internal/logger"
	"github.com/custodia-labs/cloudkit/internal/resolver"
	"github.com/custodia-labs/cloudkit/internal/sax"
)

const (
	formatJSON = "json"
	formatXML  = "xml"
)

var (
	locationsFile   string
	locationsFormat string
	locationsJSON   bool
	locationsDump   bool
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Map a datacenter listing to locations",
	Long: `Reads a SoftLayer datacenter listing and prints the ZONE location
for each datacenter, parented to the SoftLayer provider location.

The listing is either the JSON body of getDatacenters.json or an XML-RPC
methodResponse. The format follows the file extension unless --format is
given. Use --file - to read standard input.`,
	Args: cobra.NoArgs,
	RunE: runLocations,
}

func init() {
	locationsCmd.Flags().StringVarP(&locationsFile, "file", "f", "", "datacenter listing to read (- for stdin)")
	locationsCmd.Flags().StringVar(&locationsFormat, "format", "", "listing format: json or xml")
	locationsCmd.Flags().BoolVar(&locationsJSON, "json", false, "output locations as JSON")
	locationsCmd.Flags().BoolVar(&locationsDump, "dump", false, "dump the location values for debugging")
	_ = locationsCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(locationsCmd)
}

// dumpConfig bypasses Location.String so every field and the parent chain
// are printed.
var dumpConfig = &spew.ConfigState{Indent: " ", DisableMethods: true, DisablePointerAddresses: true}

// locationView is the JSON rendering of a location.
type locationView struct {
	Scope        string   `json:"scope"`
	ID           string   `json:"id"`
	Description  string   `json:"description"`
	ISO3166Codes []string `json:"iso3166Codes"`
	Parent       string   `json:"parent,omitempty"`
}

func runLocations(cmd *cobra.Command, _ []string) error {
	m, err := loadModule()
	if err != nil {
		return err
	}

	format, err := listingFormat(locationsFile, locationsFormat)
	if err != nil {
		return err
	}

	r, closeInput, err := openInput(cmd, locationsFile)
	if err != nil {
		return err
	}
	defer closeInput()

	logger.Section("Locations")
	dcs, err := readDatacenters(cmd.Context(), m, format, r)
	if err != nil {
		return fmt.Errorf("read %s listing: %w", format, err)
	}
	logger.Debug("decoded %d datacenters", len(dcs))

	provider, err := softlayer.NewProviderLocation("SoftLayer")
	if err != nil {
		return err
	}
	mapper, err := softlayer.NewDatacenterToLocation(resolver.Static(provider))
	if err != nil {
		return err
	}
	locs, err := mapper.ApplyAll(dcs)
	if err != nil {
		return fmt.Errorf("map datacenters: %w", err)
	}

	switch {
	case locationsDump:
		dumpConfig.Fdump(cmd.OutOrStdout(), locs)
		return nil
	case locationsJSON:
		return outputLocationsJSON(cmd, m, locs)
	default:
		outputLocationsTable(cmd, locs)
		return nil
	}
}

// listingFormat returns the explicit format or infers it from the file name.
func listingFormat(path, explicit string) (string, error) {
	switch strings.ToLower(explicit) {
	case formatJSON:
		return formatJSON, nil
	case formatXML:
		return formatXML, nil
	case "":
		if strings.EqualFold(filepath.Ext(path), ".xml") {
			return formatXML, nil
		}
		return formatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q (use json or xml)", domain.ErrInvalidInput, explicit)
	}
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func readDatacenters(ctx context.Context, m *bootstrap.Module, format string, r io.Reader) ([]domain.Datacenter, error) {
	if format == formatXML {
		return sax.Parse(ctx, m.Parsers(), softlayer.NewDatacentersHandler(), r)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return softlayer.DecodeDatacenters(m.Codec(), data)
}

func outputLocationsJSON(cmd *cobra.Command, m *bootstrap.Module, locs []*domain.Location) error {
	views := make([]locationView, 0, len(locs))
	for _, loc := range locs {
		v := locationView{
			Scope:        loc.Scope().String(),
			ID:           loc.ID(),
			Description:  loc.Description(),
			ISO3166Codes: loc.ISO3166Codes(),
		}
		if p := loc.Parent(); p != nil {
			v.Parent = p.String()
		}
		views = append(views, v)
	}

	data, err := m.Codec().Encode(views)
	if err != nil {
		return fmt.Errorf("failed to marshal locations: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputLocationsTable(cmd *cobra.Command, locs []*domain.Location) {
	if len(locs) == 0 {
		cmd.Println("No datacenters found.")
		return
	}

	for _, loc := range locs {
		codes := strings.Join(loc.ISO3166Codes(), ",")
		if codes == "" {
			codes = "-"
		}
		parent := "-"
		if p := loc.Parent(); p != nil {
			parent = p.String()
		}
		cmd.Printf("%-5s %-8s %-24s %-8s %s\n", loc.Scope(), loc.ID(), loc.Description(), codes, parent)
	}
}
