package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pnanji/quoteflow/internal/quoteflow/project"
	"github.com/pnanji/quoteflow/internal/quoteflow/store"
	"github.com/pnanji/quoteflow/internal/quoteflow/summary"
)

func SummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <quote-type>",
		Short: "Print the quote summary for a session",
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

			out := cmd.OutOrStdout()
			pricing := summary.Premium(qt, st)
			start, end := summary.Term(qt, st, time.Now())
			fmt.Fprintf(out, "%s\n", qt.Name)
			fmt.Fprintf(out, "Annual Premium: %s\n", pricing.AnnualDisplay())
			fmt.Fprintf(out, "Monthly Premium: %s\n", pricing.MonthlyDisplay())
			fmt.Fprintf(out, "Term: %s to %s\n\n", start.Format("2006-01-02"), end.Format("2006-01-02"))

			printBlock(out, summary.PolicyHolder(st), 0)
			for _, block := range summary.Recap(qt, st) {
				printBlock(out, block, 0)
			}
			return nil
		},
	}
}

func printBlock(w io.Writer, block summary.Block, depth int) {
	if len(block.Items) == 0 && len(block.Blocks) == 0 {
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s\n", indent, block.Title)
	for _, item := range block.Items {
		fmt.Fprintf(w, "%s  %s: %s\n", indent, item.Label, item.Value)
	}
	for _, nested := range block.Blocks {
		printBlock(w, nested, depth+1)
	}
}
