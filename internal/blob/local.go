package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStore implements Store on the local filesystem for offline
// runs. Asset ids are file names under the base path; image refs are
// absolute paths.
type LocalStore struct {
	basePath string
}

func NewLocalStore(basePath string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("creating blob directory: %w", err)
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}
	return &LocalStore{basePath: abs}, nil
}

func (l *LocalStore) Upload(_ context.Context, localPath string) (Asset, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return Asset{}, fmt.Errorf("read upload source: %w", err)
	}
	name := uuid.NewString() + filepath.Ext(localPath)
	dst := filepath.Join(l.basePath, name)
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return Asset{}, fmt.Errorf("store blob: %w", err)
	}
	return Asset{ID: name, URL: dst}, nil
}

func (l *LocalStore) Delete(_ context.Context, assetID string) error {
	if err := os.Remove(filepath.Join(l.basePath, assetID)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

func (l *LocalStore) Fetch(_ context.Context, url string) ([]byte, error) {
	return os.ReadFile(url)
}
