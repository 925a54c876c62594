package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pnanji/quoteflow/internal/quoteflow/config"
	"github.com/pnanji/quoteflow/internal/quoteflow/project"
)

func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the data directory and default config",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := ResolveRoot()
			if err != nil {
				return err
			}
			if err := project.EnsureLayout(root); err != nil {
				return err
			}
			if err := config.WriteDefault(root); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "initialized %s\n", project.RootDir(root))
			return nil
		},
	}
}
