package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeAssetFile creates a file in dir with the given modification time.
func writeAssetFile(t *testing.T, dir, name string, modTime time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	if err := os.Chtimes(path, modTime, modTime); err != nil {
		t.Fatalf("failed to set mtime for %s: %v", name, err)
	}
}

func TestListNewestFirst(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "meta")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create folder: %v", err)
	}

	base := time.Now().Add(-1 * time.Hour)
	writeAssetFile(t, dir, "a.png", base)
	writeAssetFile(t, dir, "b.png", base.Add(10*time.Minute))
	writeAssetFile(t, dir, "c.png", base.Add(5*time.Minute))

	lister := NewListerWithBase(root)
	files, err := lister.List("meta")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	expected := []string{"b.png", "c.png", "a.png"}
	if len(files) != len(expected) {
		t.Fatalf("List() returned %d files, want %d: %v", len(files), len(expected), files)
	}
	for i, name := range expected {
		if files[i] != name {
			t.Errorf("List()[%d] = %q, want %q (full order: %v)", i, files[i], name, files)
		}
	}
}

func TestListSkipsHiddenAndNonRegular(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "blog")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create folder: %v", err)
	}

	now := time.Now()
	writeAssetFile(t, dir, "visible.png", now)
	writeAssetFile(t, dir, ".hidden.png", now)

	// Subdirectories are not regular files and must be skipped.
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatalf("failed to create subdirectory: %v", err)
	}

	// A symlink to a directory is also skipped.
	if err := os.Symlink(filepath.Join(dir, "nested"), filepath.Join(dir, "nested-link")); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}

	lister := NewListerWithBase(root)
	files, err := lister.List("blog")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(files) != 1 || files[0] != "visible.png" {
		t.Errorf("List() = %v, want [visible.png]", files)
	}
}

func TestListMissingDirectory(t *testing.T) {
	root := t.TempDir()

	lister := NewListerWithBase(root)
	files, err := lister.List("meta")
	if err == nil {
		t.Fatal("List() expected error for missing directory")
	}
	if len(files) != 0 {
		t.Errorf("List() = %v, want empty result", files)
	}

	assetErr, ok := err.(*AssetError)
	if !ok {
		t.Fatalf("List() error type = %T, want *AssetError", err)
	}
	if assetErr.Type != ListFailed {
		t.Errorf("List() error type = %v, want ListFailed", assetErr.Type)
	}
}

func TestListEmptyDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "placeholders"), 0755); err != nil {
		t.Fatalf("failed to create folder: %v", err)
	}

	lister := NewListerWithBase(root)
	files, err := lister.List("placeholders")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("List() = %v, want empty result", files)
	}
}

func TestRootWithBaseDir(t *testing.T) {
	lister := NewListerWithBase("/tmp/assets/")
	root, err := lister.Root()
	if err != nil {
		t.Fatalf("Root() error = %v", err)
	}
	if root != "/tmp/assets" {
		t.Errorf("Root() = %q, want %q", root, "/tmp/assets")
	}
}

func TestRootDefaultsToExecutableDir(t *testing.T) {
	lister := NewLister()
	root, err := lister.Root()
	if err != nil {
		t.Fatalf("Root() error = %v", err)
	}
	if filepath.Base(root) != ProjectPath {
		t.Errorf("Root() = %q, want a %q directory next to the executable", root, ProjectPath)
	}
}
