package main

import (
	"log/slog"
	"os"

	"github.com/pnanji/quoteflow/internal/quoteflow/cli"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
