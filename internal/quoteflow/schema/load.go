package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDir reads additional quote types from YAML files in dir and merges
// them into the catalog. Each file holds a single quote type. Files that
// fail to parse or validate are reported in the returned slice; they never
// abort loading of the rest. A missing directory is not an error.
func LoadDir(c *Catalog, dir string) []error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return []error{fmt.Errorf("read schema dir: %w", err)}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var problems []error
	for _, name := range names {
		path := filepath.Join(dir, name)
		qt, err := loadFile(path)
		if err != nil {
			problems = append(problems, fmt.Errorf("%s: %w", name, err))
			continue
		}
		c.Add(qt)
	}
	return problems
}

func loadFile(path string) (QuoteType, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return QuoteType{}, err
	}
	var qt QuoteType
	if err := yaml.Unmarshal(raw, &qt); err != nil {
		return QuoteType{}, fmt.Errorf("parse: %w", err)
	}
	if err := Validate(qt); err != nil {
		return QuoteType{}, err
	}
	return qt, nil
}
