package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/veldtlabs/dburl/config"
)

// settingsView is the serializable shape of the resolved settings.
// Databases and the cache render as URLs, masked unless --show-password
type settingsView struct {
	Environment string            `json:"environment" yaml:"environment"`
	Debug       bool              `json:"debug" yaml:"debug"`
	LogLevel    string            `json:"log_level" yaml:"log_level"`
	ConfigFile  string            `json:"config_file,omitempty" yaml:"config_file,omitempty"`
	Databases   map[string]string `json:"databases" yaml:"databases"`
	Cache       string            `json:"cache" yaml:"cache"`
	BrokerURL   string            `json:"broker_url" yaml:"broker_url"`
}

func newSettingsView(settings *config.Settings, show bool) settingsView {
	databases := make(map[string]string, len(settings.Databases))
	for name, dbConfig := range settings.Databases {
		databases[name] = maskPassword(dbConfig, show).URL()
	}

	cache := settings.Cache
	if !show && cache.Password != "" {
		cache.Password = passwordMask
	}

	return settingsView{
		Environment: settings.Environment,
		Debug:       settings.Debug,
		LogLevel:    settings.LogLevel,
		ConfigFile:  settings.ConfigFileUsed,
		Databases:   databases,
		Cache:       cache.URL(),
		BrokerURL:   cache.BrokerURL(settings.CacheDisableSSLVerify),
	}
}

// NewSettingsCommand creates the settings command.
func NewSettingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Show the resolved application settings",
		Long: `Load the settings file, apply DBURL_ environment variables and flags,
and print every resolved database and the cache broker.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			view := newSettingsView(settings, showPassword)
			return writeOutput(cmd.OutOrStdout(), view, func(w io.Writer) {
				fmt.Fprintf(w, "%-14s %s\n", "environment:", view.Environment)
				fmt.Fprintf(w, "%-14s %t\n", "debug:", view.Debug)
				fmt.Fprintf(w, "%-14s %s\n", "log_level:", view.LogLevel)
				if view.ConfigFile != "" {
					fmt.Fprintf(w, "%-14s %s\n", "config_file:", view.ConfigFile)
				}

				names := make([]string, 0, len(view.Databases))
				for name := range view.Databases {
					names = append(names, name)
				}
				sort.Strings(names)
				fmt.Fprintln(w, "databases:")
				for _, name := range names {
					fmt.Fprintf(w, "  %-12s %s\n", name+":", view.Databases[name])
				}

				fmt.Fprintf(w, "%-14s %s\n", "cache:", view.Cache)
				fmt.Fprintf(w, "%-14s %s\n", "broker_url:", view.BrokerURL)
			})
		},
	}
}
