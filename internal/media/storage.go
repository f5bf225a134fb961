// Package media stores uploaded files and hands back the URLs clients load them from.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// PublicPrefix is the URL path local uploads are served under.
const PublicPrefix = "/uploads"

// Storage persists media blobs.
type Storage interface {
	// Put stores r under key and returns the URL it is reachable at.
	Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	// Delete removes a file previously returned by Put. Unknown URLs are ignored.
	Delete(ctx context.Context, url string) error
}

// LocalStorage writes uploads into a directory served at PublicPrefix.
type LocalStorage struct {
	dir string
}

// NewLocalStorage returns a LocalStorage rooted at dir, creating it if needed.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Dir returns the directory files are written to.
func (s *LocalStorage) Dir() string {
	return s.dir
}

func (s *LocalStorage) Put(ctx context.Context, key string, r io.Reader, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := filepath.Base(key)
	if name != key || name == "." || name == ".." {
		return "", fmt.Errorf("invalid storage key %q", key)
	}

	dst := filepath.Join(s.dir, name)
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	return path.Join(PublicPrefix, name), nil
}

func (s *LocalStorage) Delete(_ context.Context, url string) error {
	name, ok := strings.CutPrefix(url, PublicPrefix+"/")
	if !ok || name == "" || strings.ContainsAny(name, `/\`) {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}
