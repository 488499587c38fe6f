package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/veldtlabs/dburl/registry"
)

// NewSchemesCommand creates the schemes command.
func NewSchemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List the registered URL schemes and their engines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			schemes := registry.GetAllSchemes()

			names := make([]string, 0, len(schemes))
			view := make(map[string]string, len(schemes))
			for name, engine := range schemes {
				names = append(names, name)
				view[name] = engine.String()
			}
			sort.Strings(names)

			return writeOutput(cmd.OutOrStdout(), view, func(w io.Writer) {
				for _, name := range names {
					fmt.Fprintf(w, "%-14s %s\n", name, view[name])
				}
			})
		},
	}
}
