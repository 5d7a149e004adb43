package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// URLPrefix is the web path under which stored images are served and the prefix
// of every path the store hands out.
const URLPrefix = "/schoolImages"

// BlobStore writes uploaded images into a fixed directory and serves them back
// by relative path. Deletion is advisory: failures are logged, never returned.
type BlobStore struct {
	root string
	log  *logrus.Logger
}

func NewBlobStore(root string, log *logrus.Logger) *BlobStore {
	return &BlobStore{root: root, log: log}
}

// Save writes the uploaded bytes under a generated unique name and returns the
// relative path to store alongside the record.
func (b *BlobStore) Save(r io.Reader, originalName string) (string, error) {
	if err := os.MkdirAll(b.root, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	ext := filepath.Ext(originalName)
	fileName := fmt.Sprintf("school_%d_%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
	diskPath := filepath.Join(b.root, fileName)

	f, err := os.Create(diskPath)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(diskPath)
		return "", fmt.Errorf("write image file: %w", err)
	}

	return URLPrefix + "/" + fileName, nil
}

// DeleteIfExists removes the blob behind a stored relative path. A missing file
// or a failed remove must not block deletion of the parent record, so both are
// swallowed after logging.
func (b *BlobStore) DeleteIfExists(relPath string) {
	if relPath == "" {
		return
	}
	fileName := filepath.Base(strings.TrimPrefix(relPath, URLPrefix+"/"))
	diskPath := filepath.Join(b.root, fileName)

	if err := os.Remove(diskPath); err != nil && !os.IsNotExist(err) {
		b.log.WithError(err).WithField("path", diskPath).Warn("failed to delete image file")
	}
}

// Dir returns the directory served under URLPrefix.
func (b *BlobStore) Dir() string {
	return b.root
}
