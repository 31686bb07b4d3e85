// Package textio provides file-backed Source and Sink collaborators for
// the record store. Reads are whole-file; writes are atomic via a
// temp-file, sync, rename sequence so a crashed write never leaves a
// truncated data file behind.
package textio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileSource resolves source identifiers as filesystem paths.
type FileSource struct{}

// Exists reports whether the file exists.
func (FileSource) Exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

// ReadAll returns the file's entire content as a string.
func (FileSource) ReadAll(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}

// FileSink writes serialized text to filesystem paths, overwriting.
type FileSink struct{}

// Write atomically replaces the file at name with text. The temp file is
// created in the destination directory so the rename stays on one
// filesystem.
func (FileSink) Write(name, text string) error {
	dir := filepath.Dir(name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp := filepath.Join(dir, "."+filepath.Base(name)+"-"+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp, name); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
