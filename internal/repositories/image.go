package repositories

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sbilibin2017/gw-api-tools/internal/logger"
)

// ImageFileRepository stores weather images as files in a single directory.
type ImageFileRepository struct {
	dir string
}

// NewImageFileRepository creates a repository rooted at dir.
// The directory is created on first save.
func NewImageFileRepository(dir string) *ImageFileRepository {
	return &ImageFileRepository{dir: dir}
}

// Path returns the location of the named image.
func (r *ImageFileRepository) Path(name string) string {
	return filepath.Join(r.dir, filepath.Base(name))
}

// Exists reports whether the named image has already been saved.
func (r *ImageFileRepository) Exists(name string) (bool, error) {
	_, err := os.Stat(r.Path(name))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// Save writes data to the named image, creating the directory if needed.
func (r *ImageFileRepository) Save(name string, data []byte) (string, error) {
	path := r.Path(name)

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create images directory: %w", err)
	}

	err := os.WriteFile(path, data, 0o644)

	logger.Log.Infow("save image",
		"path", path,
		"size", len(data),
		"error", err,
	)

	if err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return path, nil
}
