package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStorageGet(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "catalog.json"), []byte(`[]`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("NewLocalStorage returned error: %v", err)
	}

	rc, err := s.Get(context.Background(), "catalog.json")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer rc.Close()

	body, _ := io.ReadAll(rc)
	if string(body) != "[]" {
		t.Fatalf("expected [], got %q", body)
	}
}

func TestLocalStorageGetMissing(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage returned error: %v", err)
	}

	if _, err := s.Get(context.Background(), "missing.json"); !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage returned error: %v", err)
	}

	if _, err := s.Get(context.Background(), "../etc/passwd"); err == nil {
		t.Fatalf("expected error for key outside base path")
	}
}

func TestNewLocalStorageRequiresDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := NewLocalStorage(file); err == nil {
		t.Fatalf("expected error for non-directory path")
	}
}
