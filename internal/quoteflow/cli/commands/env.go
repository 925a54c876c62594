package commands

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/pnanji/quoteflow/internal/quoteflow/project"
	"github.com/pnanji/quoteflow/internal/quoteflow/schema"
)

// InitEnv loads .env so QUOTEFLOW_ROOT can be set per directory.
func InitEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Debug("load .env", "error", err)
	}
}

// ResolveRoot picks the data-directory root: QUOTEFLOW_ROOT, else the
// working directory.
func ResolveRoot() (string, error) {
	if root := os.Getenv("QUOTEFLOW_ROOT"); root != "" {
		return root, nil
	}
	return os.Getwd()
}

// LoadCatalog merges user schema files over the built-in quote types.
// Invalid files are logged and skipped.
func LoadCatalog(root string) (*schema.Catalog, []error) {
	catalog := schema.Builtin()
	problems := schema.LoadDir(catalog, project.SchemasDir(root))
	for _, p := range problems {
		slog.Warn("skipping schema file", "error", p)
	}
	return catalog, problems
}
