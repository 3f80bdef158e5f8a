// Package filekv stores each slot as <dir>/<key>.json on an afero filesystem.
//
// Writes go to a temporary file in the same directory which is then renamed
// over the slot, so readers never see a half written value.
package filekv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"grabgo/internal/core/ports"
	"grabgo/internal/pkg/errs"

	"github.com/spf13/afero"
)

const (
	fileExt  = ".json"
	dirPerm  = 0o755
	filePerm = 0o644
)

var _ ports.KeyValueStore = (*Store)(nil)

// Store is a file per key store rooted at dir.
type Store struct {
	fs  afero.Fs
	dir string
}

// New creates a store rooted at dir. The directory is created on first Put.
func New(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// NewOS creates a store on the local disk.
func NewOS(dir string) *Store {
	return New(afero.NewOsFs(), dir)
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	value, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errs.NewObjectNotFoundError("key", key)
		}
		return nil, fmt.Errorf("read slot %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err = s.fs.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("create slot dir: %w", err)
	}

	tmp, err := afero.TempFile(s.fs, s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err = writeAndClose(tmp, value); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("write slot %s: %w", key, err)
	}

	if err = s.fs.Chmod(tmpName, filePerm); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("chmod slot %s: %w", key, err)
	}

	if err = s.fs.Rename(tmpName, path); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("replace slot %s: %w", key, err)
	}

	return nil
}

func (s *Store) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", errs.NewValueIsInvalidErrorWithCause("key", fmt.Errorf("%q is not a valid slot key", key))
	}
	return filepath.Join(s.dir, key+fileExt), nil
}

func writeAndClose(f afero.File, value []byte) error {
	if _, err := f.Write(value); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
