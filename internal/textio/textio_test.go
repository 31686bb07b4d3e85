package textio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSourceExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.txt")

	var src FileSource
	if src.Exists(path) {
		t.Error("Exists = true for missing file")
	}
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if !src.Exists(path) {
		t.Error("Exists = false for present file")
	}
}

func TestFileSinkWriteAndReadBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.txt")
	text := "{\n\tname \"widget\"\n}\n\n"

	var snk FileSink
	if err := snk.Write(path, text); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var src FileSource
	got, err := src.ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if got != text {
		t.Errorf("ReadAll = %q, want %q", got, text)
	}

	// Overwrite replaces, not appends.
	if err := snk.Write(path, "{}\n"); err != nil {
		t.Fatalf("second Write: %v", err)
	}
	got, err = src.ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll after overwrite: %v", err)
	}
	if got != "{}\n" {
		t.Errorf("ReadAll after overwrite = %q", got)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries after writes, want 1", len(entries))
	}
}

func TestFileSinkCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "records.txt")

	var snk FileSink
	if err := snk.Write(path, "{}\n"); err != nil {
		t.Fatalf("Write into missing directory: %v", err)
	}
	var src FileSource
	if !src.Exists(path) {
		t.Error("written file missing")
	}
}
