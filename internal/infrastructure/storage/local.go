package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrFileTooLarge       = errors.New("file exceeds maximum allowed size")
	ErrInvalidContentType = errors.New("content type is not allowed")
)

// MaxImageSize is the maximum accepted upload size in bytes (5 MB).
const MaxImageSize = 5 * 1024 * 1024

// allowedImageTypes lists accepted profile image MIME types.
var allowedImageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
}

// LocalStore persists uploaded blobs under a media directory on disk.
// Stored paths are relative to the media root, e.g. "doctors/<name>.png".
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// ExtensionFor returns the file extension for an allowed content type.
func ExtensionFor(contentType string) (string, bool) {
	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	return ext, ok
}

// Save writes content to <baseDir>/<prefix>/<name> and returns the relative
// path. Content larger than MaxImageSize is rejected.
func (s *LocalStore) Save(prefix, name string, content io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, prefix)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage directory: %w", err)
	}

	relPath := filepath.Join(prefix, name)
	f, err := os.Create(filepath.Join(s.baseDir, relPath))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, io.LimitReader(content, MaxImageSize+1))
	if err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if written > MaxImageSize {
		os.Remove(f.Name())
		return "", ErrFileTooLarge
	}

	return relPath, nil
}

// Remove deletes a previously stored blob. Missing files are not an error.
func (s *LocalStore) Remove(relPath string) error {
	err := os.Remove(filepath.Join(s.baseDir, relPath))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
