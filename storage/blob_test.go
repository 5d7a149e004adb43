package storage_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/sirupsen/logrus"

	"school-directory/storage"
)

func newTestBlobStore(t *testing.T) *storage.BlobStore {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return storage.NewBlobStore(filepath.Join(t.TempDir(), "schoolImages"), log)
}

func TestSaveWritesUniqueFile(t *testing.T) {
	c := qt.New(t)
	blobs := newTestBlobStore(t)

	relPath, err := blobs.Save(strings.NewReader("image-bytes"), "photo.png")
	c.Assert(err, qt.IsNil)
	c.Assert(strings.HasPrefix(relPath, storage.URLPrefix+"/school_"), qt.IsTrue)
	c.Assert(filepath.Ext(relPath), qt.Equals, ".png")

	data, err := os.ReadFile(filepath.Join(blobs.Dir(), filepath.Base(relPath)))
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Equals, "image-bytes")

	second, err := blobs.Save(strings.NewReader("more"), "photo.png")
	c.Assert(err, qt.IsNil)
	c.Assert(second, qt.Not(qt.Equals), relPath)
}

func TestSaveCreatesDirectory(t *testing.T) {
	c := qt.New(t)
	blobs := newTestBlobStore(t)

	// The directory does not exist until the first save.
	_, err := os.Stat(blobs.Dir())
	c.Assert(os.IsNotExist(err), qt.IsTrue)

	_, err = blobs.Save(strings.NewReader("x"), "a.jpg")
	c.Assert(err, qt.IsNil)

	info, err := os.Stat(blobs.Dir())
	c.Assert(err, qt.IsNil)
	c.Assert(info.IsDir(), qt.IsTrue)
}

func TestDeleteIfExists(t *testing.T) {
	c := qt.New(t)
	blobs := newTestBlobStore(t)

	relPath, err := blobs.Save(strings.NewReader("x"), "a.jpg")
	c.Assert(err, qt.IsNil)
	diskPath := filepath.Join(blobs.Dir(), filepath.Base(relPath))

	blobs.DeleteIfExists(relPath)
	_, err = os.Stat(diskPath)
	c.Assert(os.IsNotExist(err), qt.IsTrue)

	// Deleting again, or deleting nothing, must not blow up.
	blobs.DeleteIfExists(relPath)
	blobs.DeleteIfExists("")
	blobs.DeleteIfExists("/schoolImages/never_existed.png")
}
