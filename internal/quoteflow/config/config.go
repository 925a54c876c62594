package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/pnanji/quoteflow/internal/quoteflow/project"
)

type Config struct {
	// DefaultQuoteType opens that wizard directly, skipping the picker.
	DefaultQuoteType string `toml:"default_quote_type"`
	// EstimateSeed pins the dwelling-limit estimate for reproducible runs.
	// Zero keeps it random.
	EstimateSeed int64   `toml:"estimate_seed"`
	Display      Display `toml:"display"`
}

type Display struct {
	// CompactSummary collapses per-vehicle coverage cells in the recap.
	CompactSummary bool `toml:"compact_summary"`
	// ShowGroupLabels prints field group names as sub-headers on steps.
	ShowGroupLabels bool `toml:"show_group_labels"`
}

const DefaultConfigToml = `# Quoteflow configuration

# Open this quote type directly instead of the picker. Empty shows the picker.
default_quote_type = ""

# Pin the dwelling-limit estimate for reproducible runs. 0 keeps it random.
estimate_seed = 0

[display]
compact_summary = false
show_group_labels = true
`

// LoadFromRoot reads config.toml under the data directory. A missing file
// yields the defaults.
func LoadFromRoot(root string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(project.ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func Default() Config {
	return Config{Display: Display{ShowGroupLabels: true}}
}

// WriteDefault creates config.toml with the commented default content,
// refusing to overwrite an existing file.
func WriteDefault(root string) error {
	path := project.ConfigPath(root)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := project.EnsureLayout(root); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(DefaultConfigToml), 0o644)
}
