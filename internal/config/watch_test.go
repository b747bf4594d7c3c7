package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestWatchFileReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "ui:\n  theme: light\n")

	w, err := WatchFile(path)
	if err != nil {
		t.Fatalf("WatchFile failed: %v", err)
	}
	defer func() { _ = w.Close() }()

	// unrelated files in the same directory are ignored
	writeFile(t, filepath.Join(dir, "other.yaml"), "x: 1\n")
	writeFile(t, path, "ui:\n  theme: dark\n")

	select {
	case <-w.Changes():
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatchFileRejectsDirectory(t *testing.T) {
	if _, err := WatchFile(t.TempDir()); err == nil {
		t.Error("expected error for directory")
	}
}

func TestWatchFileMissing(t *testing.T) {
	if _, err := WatchFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
