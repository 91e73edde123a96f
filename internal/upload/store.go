package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const MaxFileSize = 50 * 1024 * 1024 // 50 MB

// AllowedMimeTypes defines which file types are accepted for kitchen and
// service-request photos.
var AllowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Store accepts binary content and returns a retrievable URL.
type Store interface {
	Save(ctx context.Context, path string, content []byte, mimeType string) (string, error)
}

// DiskStore writes blobs to the local filesystem and serves them as static
// files under a URL prefix.
type DiskStore struct {
	baseDir    string
	staticBase string
}

func NewDiskStore(baseDir, staticBase string) *DiskStore {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if staticBase == "" {
		staticBase = "/static/uploads"
	}
	return &DiskStore{baseDir: baseDir, staticBase: staticBase}
}

func (s *DiskStore) BaseDir() string { return s.baseDir }

func (s *DiskStore) Save(ctx context.Context, path string, content []byte, mimeType string) (string, error) {
	if len(content) == 0 {
		return "", ErrEmptyFile
	}
	if len(content) > MaxFileSize {
		return "", ErrFileTooLarge
	}
	if !AllowedMimeTypes[mimeType] {
		return "", ErrInvalidMimeType
	}

	relPath := filepath.Join(filepath.Dir(path), uuid.New().String()+"_"+sanitizeName(filepath.Base(path)))
	absPath := filepath.Join(s.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	if err := os.WriteFile(absPath, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.staticBase + "/" + strings.ReplaceAll(relPath, "\\", "/"), nil
}

func sanitizeName(name string) string {
	name = strings.ToLower(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
