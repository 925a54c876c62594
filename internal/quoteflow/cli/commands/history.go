package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pnanji/quoteflow/internal/quoteflow/archive"
	"github.com/pnanji/quoteflow/internal/quoteflow/project"
)

func HistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List archived quotes",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := ResolveRoot()
			if err != nil {
				return err
			}
			db, err := archive.Open(project.ArchivePath(root))
			if err != nil {
				return err
			}
			defer db.Close()
			if err := archive.Migrate(db); err != nil {
				return err
			}
			records, err := archive.List(db)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no archived quotes)")
				return nil
			}
			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t$%.0f\t%s .. %s\n",
					r.CreatedAt.Format("2006-01-02"), r.QuoteType, r.Premium, r.TermStart, r.TermEnd)
			}
			return nil
		},
	}
}
