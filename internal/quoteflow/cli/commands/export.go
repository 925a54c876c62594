package commands

import (
	"fmt"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/spf13/cobra"

	"github.com/pnanji/quoteflow/internal/quoteflow/archive"
	"github.com/pnanji/quoteflow/internal/quoteflow/project"
)

func ExportCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export archived quotes as CSV",
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
			raw, err := csvutil.Marshal(records)
			if err != nil {
				return err
			}
			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(raw)
				return err
			}
			if err := os.WriteFile(outPath, raw, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d quotes to %s\n", len(records), outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write CSV to a file instead of stdout")
	return cmd
}
