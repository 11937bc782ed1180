package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PublicPrefix is the URL prefix the server mounts the uploads dir under.
const PublicPrefix = "/uploads"

// LocalFiles stores uploaded images as individual files on local disk.
type LocalFiles struct {
	dir string
}

// NewLocalFiles ensures the upload directory exists.
func NewLocalFiles(dir string) (*LocalFiles, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("uploads dir: %w", err)
	}
	return &LocalFiles{dir: dir}, nil
}

// Dir returns the on-disk root, for mounting as a static file tree.
func (s *LocalFiles) Dir() string {
	return s.dir
}

// Save writes the stream under a fresh name keeping the original
// extension, and returns the public path the file is served back from.
func (s *LocalFiles) Save(originalName string, r io.Reader) (string, error) {
	name := uuid.New().String() + strings.ToLower(filepath.Ext(originalName))
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("save upload: %w", err)
	}
	return PublicPrefix + "/" + name, nil
}

// Remove deletes a stored file by its public path. Unknown paths are not
// an error.
func (s *LocalFiles) Remove(publicPath string) error {
	name := filepath.Base(publicPath)
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
