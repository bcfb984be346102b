package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// VideoStore places uploaded video files in a flat directory.
//
// File placement is a best-effort side effect of intake: if the record
// insert fails after files were placed, the files stay on disk. There is
// no cleanup sweep.
type VideoStore struct {
	dir string
}

// StoredVideo reports where one upload ended up.
type StoredVideo struct {
	Filename string // original client-supplied name
	Path     string // durable path under the store directory
	Size     int64
}

// NewVideoStore creates the store directory (recursively) if missing.
func NewVideoStore(dir string) (*VideoStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &VideoStore{dir: dir}, nil
}

// Dir returns the store directory.
func (s *VideoStore) Dir() string {
	return s.dir
}

// Save writes r to a durable file and reports its final path and size.
// The storage key prepends a random uuid to the client's filename, so
// concurrent uploads of identically-named files cannot clobber each
// other; the original name is kept as metadata on the returned value.
func (s *VideoStore) Save(r io.Reader, originalName string) (StoredVideo, error) {
	name := filepath.Base(originalName)
	dest := filepath.Join(s.dir, uuid.New().String()+"_"+name)

	f, err := os.Create(dest)
	if err != nil {
		return StoredVideo{}, fmt.Errorf("create %s: %w", dest, err)
	}
	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dest)
		return StoredVideo{}, fmt.Errorf("write %s: %w", dest, err)
	}

	return StoredVideo{Filename: name, Path: dest, Size: size}, nil
}
