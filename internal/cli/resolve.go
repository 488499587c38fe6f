package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/veldtlabs/dburl/database"
	"github.com/veldtlabs/dburl/types"
)

// resolveFlags are the URL source and overlay flags shared by resolve,
// dsn and check
type resolveFlags struct {
	envName          string
	defaultURL       string
	connMaxAge       time.Duration
	connHealthChecks bool
	sslRequire       bool
}

func (f *resolveFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.envName, "env", "", "Environment variable holding the URL (default DATABASE_URL)")
	cmd.Flags().StringVar(&f.defaultURL, "default", "", "Fallback URL when the variable is unset")
	cmd.Flags().DurationVar(&f.connMaxAge, "conn-max-age", 0, "Connection lifetime applied to the pool")
	cmd.Flags().BoolVar(&f.connHealthChecks, "conn-health-checks", false, "Ping connections before use")
	cmd.Flags().BoolVar(&f.sslRequire, "ssl-require", false, "Force SSL on the connection")
}

func (f *resolveFlags) options() types.ResolveOptions {
	return types.ResolveOptions{
		Default:          f.defaultURL,
		ConnMaxAge:       f.connMaxAge,
		ConnHealthChecks: f.connHealthChecks,
		SSLRequire:       f.sslRequire,
	}
}

// resolveConfig resolves a config from the command argument or the
// environment
func (f *resolveFlags) resolveConfig(args []string) (types.Config, error) {
	if len(args) > 0 {
		return database.ParseWithOptions(args[0], f.options())
	}
	return database.FromEnv(f.envName, f.options())
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand() *cobra.Command {
	flags := &resolveFlags{}
	cmd := &cobra.Command{
		Use:   "resolve [url]",
		Short: "Resolve a database URL into a connection config",
		Long: `Resolve a database URL into its connection config.

The URL comes from the argument, or from the environment variable named
by --env (DATABASE_URL when omitted). --default supplies a fallback URL
for unset variables.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := flags.resolveConfig(args)
			if err != nil {
				return err
			}

			view := newConfigView(config, showPassword)
			return writeOutput(cmd.OutOrStdout(), view, func(w io.Writer) {
				printConfigText(w, view)
			})
		},
	}
	flags.register(cmd)
	return cmd
}
