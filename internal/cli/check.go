package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/veldtlabs/dburl/database"
	"github.com/veldtlabs/dburl/drivers/mongodb"
	"github.com/veldtlabs/dburl/types"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	flags := &resolveFlags{}
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "check [url]",
		Short: "Open the database and verify it answers a ping",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := flags.resolveConfig(args)
			if err != nil {
				return err
			}
			config.ConnHealthChecks = true

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			start := time.Now()
			switch config.Engine {
			case types.EngineMongoDB:
				client, err := mongodb.Connect(ctx, config)
				if err != nil {
					return err
				}
				defer func() { _ = client.Disconnect(ctx) }()
			default:
				db, err := database.Open(ctx, config)
				if err != nil {
					return err
				}
				defer db.Close()
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s %s (%s)\n",
				config.Engine, config, time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Connection timeout")
	return cmd
}
