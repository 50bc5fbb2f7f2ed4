package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStorage writes each session's cart to <dir>/<session>.json. It is
// the durable local-storage analog for single-node deployments.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cart dir: %w", err)
	}
	return &FileStorage{dir: dir}, nil
}

func (f *FileStorage) path(sessionID string) string {
	// Session ids are UUIDs from our own middleware, but never trust them
	// as path components.
	return filepath.Join(f.dir, filepath.Base(sessionID)+".json")
}

func (f *FileStorage) Load(_ context.Context, sessionID string) (Cart, error) {
	data, err := os.ReadFile(f.path(sessionID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Cart{}, nil
		}
		return Cart{}, err
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (f *FileStorage) Save(_ context.Context, sessionID string, c Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write never corrupts the cart.
	tmp := f.path(sessionID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(sessionID))
}

func (f *FileStorage) Delete(_ context.Context, sessionID string) error {
	err := os.Remove(f.path(sessionID))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
