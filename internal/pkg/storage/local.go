package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage reads objects from a directory on disk
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a reader rooted at basePath, which must exist.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	info, err := os.Stat(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage path %s is not a directory", basePath)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// Get opens the file at key relative to the base path.
func (s *LocalStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.Contains(key, "..") {
		return nil, fmt.Errorf("invalid key: %s", key)
	}

	file, err := os.Open(filepath.Join(s.basePath, filepath.Clean("/"+key)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}
