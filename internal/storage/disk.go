package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const (
	// tempFilePrefix marks in-flight writes; ValidateName never resolves it.
	tempFilePrefix = ".hashnotes-tmp-"

	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// DiskStorage implements Storage as one file per key in a single directory.
// It is safe for concurrent use: writes go through a temporary file that is
// renamed into place, and reads go through an os.Root bound to the directory.
type DiskStorage struct {
	dir  string
	root *os.Root
}

var _ Storage = (*DiskStorage)(nil)

// NewDisk creates dir (and its parents) if needed and opens it for storage.
func NewDisk(dir string) (*DiskStorage, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is required")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open storage directory: %w", err)
	}
	return &DiskStorage{dir: dir, root: root}, nil
}

// Dir returns the storage directory.
func (d *DiskStorage) Dir() string {
	return d.dir
}

// Close releases the directory handle.
func (d *DiskStorage) Close() error {
	return d.root.Close()
}

// Put writes r to a temporary file, syncs it and renames it over key.
func (d *DiskStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	if err := ValidateName(key); err != nil {
		return ObjectInfo{}, err
	}
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, err
	}

	tmp, err := os.CreateTemp(d.dir, tempFilePrefix+"*")
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return ObjectInfo{}, fmt.Errorf("write temp file: %w", err)
	}
	if opt.Size >= 0 && n != opt.Size {
		tmp.Close()
		return ObjectInfo{}, fmt.Errorf("%w: wrote %d of %d bytes", ErrShortWrite, n, opt.Size)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return ObjectInfo{}, fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return ObjectInfo{}, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		return ObjectInfo{}, fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(d.dir, key)); err != nil {
		return ObjectInfo{}, fmt.Errorf("rename temp file to %s: %w", key, err)
	}

	return ObjectInfo{
		Key:          key,
		Size:         n,
		LastModified: time.Now(),
	}, nil
}

// Get opens the object stored under key.
func (d *DiskStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, ObjectInfo{}, err
	}
	if _, err := d.Resolve(key); err != nil {
		return nil, ObjectInfo{}, err
	}
	f, err := d.root.Open(key)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ObjectInfo{}, ErrNotFound
	}
	if err != nil {
		return nil, ObjectInfo{}, fmt.Errorf("open %s: %w", key, err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, fmt.Errorf("stat %s: %w", key, err)
	}
	if !fi.Mode().IsRegular() {
		f.Close()
		return nil, ObjectInfo{}, ErrNotFound
	}
	return f, ObjectInfo{
		Key:          key,
		Size:         fi.Size(),
		LastModified: fi.ModTime(),
	}, nil
}

// Stat resolves key and reports its size and modification time.
func (d *DiskStorage) Stat(ctx context.Context, key string) (ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, err
	}
	fi, err := d.lookup(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	return ObjectInfo{
		Key:          key,
		Size:         fi.Size(),
		LastModified: fi.ModTime(),
	}, nil
}

// Ping checks that the storage directory is still reachable by path.
func (d *DiskStorage) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fi, err := os.Stat(d.dir)
	if err != nil {
		return fmt.Errorf("stat storage directory: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("storage path %s is not a directory", d.dir)
	}
	return nil
}
