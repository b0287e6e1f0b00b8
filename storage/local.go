package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"wholesale-delivery/models"
)

// LocalStore writes images under a directory served at /uploads/.
type LocalStore struct {
	dir       string
	publicURL string
}

func NewLocalStore(dir, publicURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

// Dir is the directory served by the uploads route.
func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Save(_ context.Context, upload models.ImageUpload) (models.Image, error) {
	key := newKey(upload.Filename)
	f, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return models.Image{}, fmt.Errorf("create %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, upload.Body); err != nil {
		_ = os.Remove(f.Name())
		return models.Image{}, fmt.Errorf("write %s: %w", key, err)
	}
	return models.Image{
		URL:  s.publicURL + "/uploads/" + key,
		Name: upload.Filename,
		Key:  key,
	}, nil
}

func (s *LocalStore) Delete(_ context.Context, key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("invalid image key %q", key)
	}
	err := os.Remove(filepath.Join(s.dir, key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
