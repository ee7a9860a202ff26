package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cloudkit/internal/core/domain"
	"github.com/custodia-labs/cloudkit/internal/core/ports/driving"
	"github.com/custodia-labs/cloudkit/internal/core/services"
)

// settingsService is built from the settings store unless set with
// SetSettingsService.
var settingsService driving.SettingsService

// SetSettingsService installs the service used by the settings commands.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change parser settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsDateFormatCmd = &cobra.Command{
	Use:   "date-format [iso8601|c]",
	Short: "Set the timestamp convention",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsDateFormat,
}

var settingsResolveHostsCmd = &cobra.Command{
	Use:   "resolve-hosts [true|false]",
	Short: "Allow host names where addresses are expected",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsResolveHosts,
}

var settingsEntityCmd = &cobra.Command{
	Use:   "entity",
	Short: "Manage named XML entities",
}

var settingsEntitySetCmd = &cobra.Command{
	Use:   "set [name] [text]",
	Short: "Add or replace an entity",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		svc, err := getSettingsService()
		if err != nil {
			return err
		}
		return svc.SetEntity(args[0], args[1])
	},
}

var settingsEntityRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove an entity",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		svc, err := getSettingsService()
		if err != nil {
			return err
		}
		return svc.RemoveEntity(args[0])
	},
}

func init() {
	settingsEntityCmd.AddCommand(settingsEntitySetCmd)
	settingsEntityCmd.AddCommand(settingsEntityRemoveCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsDateFormatCmd)
	settingsCmd.AddCommand(settingsResolveHostsCmd)
	settingsCmd.AddCommand(settingsEntityCmd)
	rootCmd.AddCommand(settingsCmd)
}

func getSettingsService() (driving.SettingsService, error) {
	if settingsService != nil {
		return settingsService, nil
	}
	store, err := settingsStore()
	if err != nil {
		return nil, err
	}
	return services.NewSettingsService(store), nil
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := getSettingsService()
	if err != nil {
		return err
	}
	settings, err := svc.Get()
	if err != nil {
		return err
	}

	cmd.Println("Dates:")
	cmd.Printf("  Format:        %s (%s)\n", settings.DateFormat, settings.DateFormat.Description())
	cmd.Println("Codec:")
	cmd.Printf("  Resolve hosts: %t\n", settings.ResolveHosts)
	cmd.Println("XML:")
	if len(settings.XML.Entities) == 0 {
		cmd.Println("  Entities:      (none)")
		return nil
	}
	cmd.Println("  Entities:")
	names := make([]string, 0, len(settings.XML.Entities))
	for name := range settings.XML.Entities {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		cmd.Printf("    &%s; = %q\n", name, settings.XML.Entities[name])
	}
	return nil
}

func runSettingsDateFormat(cmd *cobra.Command, args []string) error {
	svc, err := getSettingsService()
	if err != nil {
		return err
	}
	format := domain.DateFormat(args[0])
	if err := svc.SetDateFormat(format); err != nil {
		return err
	}
	cmd.Printf("Date format set to %s\n", format.Description())
	return nil
}

func runSettingsResolveHosts(cmd *cobra.Command, args []string) error {
	enabled, err := strconv.ParseBool(args[0])
	if err != nil {
		return fmt.Errorf("%w: expected true or false, got %q", domain.ErrInvalidInput, args[0])
	}
	svc, err := getSettingsService()
	if err != nil {
		return err
	}
	if err := svc.SetResolveHosts(enabled); err != nil {
		return err
	}
	if enabled {
		cmd.Println("Host resolution enabled")
	} else {
		cmd.Println("Host resolution disabled")
	}
	return nil
}
