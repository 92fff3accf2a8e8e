package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// UploadStore places uploaded files in a fixed directory and hands back the
// relative path to record. It knows nothing about HTTP; callers pass bytes
// and a suggested name.
type UploadStore struct {
	dir string
}

// NewUploadStore creates the upload directory if needed.
func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create upload directory: %w", err)
	}
	return &UploadStore{dir: dir}, nil
}

// Save writes the reader's contents under a collision-avoiding name derived
// from the suggested one: '<base>-<unix millis><ext>'. Returns the stored
// path relative to the process root, always with forward slashes so it can
// be served as a URL path.
func (s *UploadStore) Save(r io.Reader, suggestedName string) (string, error) {
	base := filepath.Base(suggestedName)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	fileName := fmt.Sprintf("%s-%d%s", name, time.Now().UnixMilli(), ext)
	fullPath := filepath.Join(s.dir, fileName)

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("could not create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("could not write upload file: %w", err)
	}

	return path.Join(filepath.ToSlash(s.dir), fileName), nil
}

// Dir returns the directory uploads are written to.
func (s *UploadStore) Dir() string {
	return s.dir
}
