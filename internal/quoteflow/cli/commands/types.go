// Package commands holds the quoteflow subcommands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func TypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List available quote types",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := ResolveRoot()
			if err != nil {
				return err
			}
			catalog, _ := LoadCatalog(root)
			for _, id := range catalog.IDs() {
				qt, ok := catalog.Get(id)
				if !ok {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d steps\n", qt.ID, qt.Name, qt.StepCount())
			}
			return nil
		},
	}
}
