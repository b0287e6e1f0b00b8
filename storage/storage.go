// Package storage keeps uploaded inventory images.
package storage

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/lucsky/cuid"

	"wholesale-delivery/models"
)

// ImageStore persists image blobs and returns how to reach them.
type ImageStore interface {
	Save(ctx context.Context, upload models.ImageUpload) (models.Image, error)
	Delete(ctx context.Context, key string) error
}

// newKey names a blob after a collision-resistant id, keeping the
// uploaded extension.
func newKey(filename string) string {
	return cuid.New() + strings.ToLower(filepath.Ext(filename))
}
