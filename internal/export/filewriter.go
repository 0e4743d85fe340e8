package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter is the sync destination. Folders are keyed by customer
// id; ListFolders drives the skip list for already-synced groups.
type FileWriter interface {
	WriteFile(folder, name string, data []byte) error
	ListFolders() ([]string, error)
}

// LocalWriter implements FileWriter on the local filesystem.
type LocalWriter struct {
	basePath string
}

func NewLocalWriter(basePath string) (*LocalWriter, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &LocalWriter{basePath: basePath}, nil
}

func (l *LocalWriter) WriteFile(folder, name string, data []byte) error {
	dir := filepath.Join(l.basePath, folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating folder: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

func (l *LocalWriter) ListFolders() ([]string, error) {
	entries, err := os.ReadDir(l.basePath)
	if err != nil {
		return nil, fmt.Errorf("listing output directory: %w", err)
	}
	var folders []string
	for _, e := range entries {
		if e.IsDir() {
			folders = append(folders, e.Name())
		}
	}
	return folders, nil
}
