package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/cloudkit/internal/adapters/driven/config/file"
	"github.com/custodia-labs/cloudkit/internal/bootstrap"
	"github.com/custodia-labs/cloudkit/internal/core/ports/driven"
	"github.com/custodia-labs/cloudkit/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose    bool
	configPath string

	// module is built on first use from the settings store unless set
	// beforehand with SetModule.
	module *bootstrap.Module
)

var rootCmd = &cobra.Command{
	Use:   "cloudkit",
	Short: "Parse and map cloud provider responses",
	Long: `cloudkit decodes provider API responses (JSON and XML-RPC) into
typed records and maps them onto the location hierarchy.

Settings are read from ~/.cloudkit/settings.toml and CLOUDKIT_*
environment variables.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default ~/.cloudkit/settings.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetModule installs a prebuilt module, bypassing the settings store.
func SetModule(m *bootstrap.Module) {
	module = m
}

func settingsStore() (driven.SettingsStore, error) {
	if configPath != "" {
		return file.NewSettingsStoreForFile(configPath), nil
	}
	return file.NewSettingsStore("")
}

// loadModule returns the installed module or builds one from settings.
func loadModule() (*bootstrap.Module, error) {
	if module != nil {
		return module, nil
	}

	store, err := settingsStore()
	if err != nil {
		return nil, err
	}
	settings, err := store.Load()
	if err != nil {
		return nil, err
	}
	m, err := bootstrap.New(settings)
	if err != nil {
		return nil, err
	}
	module = m
	return m, nil
}
