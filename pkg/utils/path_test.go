package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetCleanPath(t *testing.T) {
	if _, err := GetCleanPath(""); err == nil {
		t.Fatal("expected empty path to fail")
	}

	abs, err := GetCleanPath("a/../b/tablekit.db")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(abs) || filepath.Base(abs) != "tablekit.db" || filepath.Base(filepath.Dir(abs)) != "b" {
		t.Fatalf("unexpected path %s", abs)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	expanded, err := GetCleanPath("~/data/x.db")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expanded != filepath.Join(home, "data", "x.db") {
		t.Fatalf("expected home expansion, got %s", expanded)
	}
}

func TestEnsureParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "file.db")
	if err := EnsureParentDir(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Fatalf("expected parent directory to exist, got %v", err)
	}
}
