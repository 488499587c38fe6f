package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/veldtlabs/dburl/database"
)

// NewDSNCommand creates the dsn command.
func NewDSNCommand() *cobra.Command {
	flags := &resolveFlags{}
	cmd := &cobra.Command{
		Use:   "dsn [url]",
		Short: "Render the native driver DSN for a database URL",
		Long: `Resolve a database URL and print the connection string the engine's
driver expects: keyword/value form for PostgreSQL, the Go driver DSN for
MySQL, a file path for SQLite.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := flags.resolveConfig(args)
			if err != nil {
				return err
			}

			dsn, err := database.FormatDSN(maskPassword(config, showPassword))
			if err != nil {
				return err
			}

			view := struct {
				Engine string `json:"engine" yaml:"engine"`
				DSN    string `json:"dsn" yaml:"dsn"`
			}{config.Engine.String(), dsn}
			return writeOutput(cmd.OutOrStdout(), view, func(w io.Writer) {
				fmt.Fprintln(w, dsn)
			})
		},
	}
	flags.register(cmd)
	return cmd
}
