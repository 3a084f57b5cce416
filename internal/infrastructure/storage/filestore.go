package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStore writes uploaded blobs under a root directory, sharded by date so
// a single directory never accumulates every upload.
type FileStore struct {
	root string
}

func NewFileStore(root string) *FileStore {
	return &FileStore{root: root}
}

// Save streams the content to disk and returns the path relative to the
// store root. The stored name keeps the original extension only.
func (s *FileStore) Save(category, originalName string, content io.Reader) (string, error) {
	shard := time.Now().UTC().Format("2006/01/02")
	dir := filepath.Join(s.root, category, shard)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), sanitizeExt(originalName))
	fullPath := filepath.Join(dir, name)

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	rel, err := filepath.Rel(s.root, fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve upload path: %w", err)
	}

	return filepath.ToSlash(rel), nil
}

// Open returns a reader for a previously stored path. The path is validated
// to stay inside the store root.
func (s *FileStore) Open(relPath string) (io.ReadCloser, error) {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return nil, fmt.Errorf("invalid storage path: %s", relPath)
	}

	file, err := os.Open(filepath.Join(s.root, cleaned))
	if err != nil {
		return nil, fmt.Errorf("failed to open stored file: %w", err)
	}

	return file, nil
}

// Remove deletes a stored file. Missing files are not an error.
func (s *FileStore) Remove(relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return fmt.Errorf("invalid storage path: %s", relPath)
	}

	err := os.Remove(filepath.Join(s.root, cleaned))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove stored file: %w", err)
	}

	return nil
}

func sanitizeExt(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if len(ext) > 10 {
		return ""
	}
	for _, r := range ext {
		if r != '.' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
