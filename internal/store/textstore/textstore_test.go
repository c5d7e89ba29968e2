package textstore

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "todo")
	if err := os.WriteFile(p, []byte("Work:\n[ ] a\n\n    b\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"Work:", "[ ] a", "", "    b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load: got %q, want %q", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nope")

	_, err := Load(p)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var fe *FileAccessError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FileAccessError, got %T", err)
	}
	if fe.Path != p {
		t.Errorf("Path: got %q, want %q", fe.Path, p)
	}
	if !errors.Is(err, os.ErrNotExist) || !IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadDirectoryIsAccessError(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir)
	var fe *FileAccessError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FileAccessError, got %v", err)
	}
	if IsNotExist(err) {
		t.Errorf("directory read must not look like a missing file")
	}
}

func TestEnsureDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a", "b", "todo")
	if err := EnsureDir(p); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if fi, err := os.Stat(filepath.Dir(p)); err != nil || !fi.IsDir() {
		t.Errorf("parent dir not created: %v", err)
	}
}
