// Package project resolves the on-disk layout of a quoteflow data
// directory. Everything lives under one dot-directory at the chosen root.
package project

import (
	"os"
	"path/filepath"
)

const DataDir = ".quoteflow"

// RootDir returns the quoteflow data directory under root.
func RootDir(root string) string {
	return filepath.Join(root, DataDir)
}

// SessionsDir holds one JSON snapshot per quote-type session.
func SessionsDir(root string) string {
	return filepath.Join(RootDir(root), "sessions")
}

// SchemasDir holds user-supplied quote-type YAML files merged into the
// built-in catalog at startup.
func SchemasDir(root string) string {
	return filepath.Join(RootDir(root), "schemas")
}

func ConfigPath(root string) string {
	return filepath.Join(RootDir(root), "config.toml")
}

// ArchivePath is the sqlite database of completed quotes.
func ArchivePath(root string) string {
	return filepath.Join(RootDir(root), "archive.db")
}

// EnsureLayout creates the data directory tree.
func EnsureLayout(root string) error {
	for _, dir := range []string{RootDir(root), SessionsDir(root), SchemasDir(root)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
