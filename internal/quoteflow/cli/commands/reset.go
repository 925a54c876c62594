package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pnanji/quoteflow/internal/quoteflow/project"
	"github.com/pnanji/quoteflow/internal/quoteflow/store"
)

func ResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <quote-type>",
		Short: "Clear a session's stored fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := ResolveRoot()
			if err != nil {
				return err
			}
			catalog, _ := LoadCatalog(root)
			qt, ok := catalog.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown quote type %q", args[0])
			}
			st := store.Open(store.NewFilePersister(project.SessionsDir(root)), qt.SessionKey())
			st.Clear()
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", qt.SessionKey())
			return nil
		},
	}
}
