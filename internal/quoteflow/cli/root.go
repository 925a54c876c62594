// Package cli wires the quoteflow command tree. The bare command opens the
// wizard; subcommands inspect and manage sessions from the shell.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/pnanji/quoteflow/internal/quoteflow/cli/commands"
	"github.com/pnanji/quoteflow/internal/quoteflow/config"
	"github.com/pnanji/quoteflow/internal/quoteflow/project"
	"github.com/pnanji/quoteflow/internal/quoteflow/tui"
)

func Execute() error {
	return NewRoot().Execute()
}

var runTUI = func(root string, cfg config.Config) error {
	catalog, _ := commands.LoadCatalog(root)
	return tui.Run(root, cfg, catalog)
}

func NewRoot() *cobra.Command {
	cobra.OnInitialize(commands.InitEnv)
	root := &cobra.Command{
		Use:   "quoteflow",
		Short: "Multi-step insurance quote wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := commands.ResolveRoot()
			if err != nil {
				return err
			}
			if err := project.EnsureLayout(dir); err != nil {
				return err
			}
			cfg, err := config.LoadFromRoot(dir)
			if err != nil {
				return err
			}
			return runTUI(dir, cfg)
		},
	}
	root.AddCommand(
		commands.InitCmd(),
		commands.TypesCmd(),
		commands.ShowCmd(),
		commands.ResetCmd(),
		commands.SummaryCmd(),
		commands.HistoryCmd(),
		commands.ExportCmd(),
	)
	return root
}
