package storage

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ValidateName checks that name is a single flat file name that cannot
// leave the storage directory. Names starting with a dot are rejected too,
// which keeps "." and ".." out as well as in-flight temporary files.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidKey)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: contains NUL", ErrInvalidKey)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: contains a path separator", ErrInvalidKey)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: leading dot", ErrInvalidKey)
	case filepath.IsAbs(name) || filepath.VolumeName(name) != "":
		return fmt.Errorf("%w: absolute path", ErrInvalidKey)
	}
	return nil
}

// Resolve maps an untrusted name to the path of an existing object.
// Invalid names, missing objects, directories and anything the root handle
// refuses to follow all produce ErrNotFound.
func (d *DiskStorage) Resolve(name string) (string, error) {
	if _, err := d.lookup(name); err != nil {
		return "", err
	}
	return filepath.Join(d.dir, name), nil
}

func (d *DiskStorage) lookup(name string) (fs.FileInfo, error) {
	if err := ValidateName(name); err != nil {
		return nil, ErrNotFound
	}
	fi, err := d.root.Stat(name)
	if err != nil || !fi.Mode().IsRegular() {
		return nil, ErrNotFound
	}
	return fi, nil
}
