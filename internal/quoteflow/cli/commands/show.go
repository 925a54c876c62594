package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pnanji/quoteflow/internal/quoteflow/project"
	"github.com/pnanji/quoteflow/internal/quoteflow/store"
)

func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <quote-type>",
		Short: "Dump a session's stored fields",
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
			snap := st.Snapshot()
			if len(snap) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(empty session)")
				return nil
			}
			keys := make([]string, 0, len(snap))
			for k := range snap {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\n", k, snap[k])
			}
			return nil
		},
	}
}
