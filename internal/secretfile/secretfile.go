// Package secretfile persists the generated salt as a single-key TOML
// document.
package secretfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// File is the on-disk document: one top-level key holding the salt.
type File struct {
	SecretSalt string `toml:"secret_salt"`
}

// EnsureDir creates the parent directory of path, including any
// missing intermediates. It succeeds when the directory already exists.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// Write serializes the salt to path with mode 0600, replacing any
// previous file. The content lands via a temp file in the same
// directory followed by a rename, so readers never observe a partial
// secret.
func Write(path, salt string) error {
	data, err := toml.Marshal(File{SecretSalt: salt})
	if err != nil {
		return fmt.Errorf("marshal secret file: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".secretgen-*")
	if err != nil {
		return fmt.Errorf("create temp secret file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write secret file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod secret file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close secret file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename secret file: %w", err)
	}
	return nil
}

// Load reads a previously written secret file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read secret file: %w", err)
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse secret file %s: %w", path, err)
	}
	return &f, nil
}
