package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskImageStore stores uploaded images as files in a local directory.
// Stored files are served under the /uploads/ path, so the returned
// reference is always "uploads/<name>" regardless of the physical dir.
type DiskImageStore struct {
	// Dir is the directory where image files are written.
	Dir string
}

// Save writes the image payload to disk under a fresh uuid-based name,
// keeping the original extension, and returns the public relative path.
func (s DiskImageStore) Save(filename string, data io.Reader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	// The client-supplied name is untrusted; only its extension survives.
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	name := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return "uploads/" + name, nil
}
