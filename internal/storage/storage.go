// Package storage holds the content-addressed object storage used for notes.
// Keys are flat names; there is no nesting and no sidecar metadata.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	// ErrNotFound is returned for keys that are missing or that cannot be
	// resolved safely. Callers cannot tell the two apart.
	ErrNotFound = errors.New("object not found")
	// ErrInvalidKey is returned by writes given a key that is not a single flat name.
	ErrInvalidKey = errors.New("invalid object key")
	// ErrShortWrite is returned when fewer bytes than PutObjectOptions.Size were stored.
	ErrShortWrite = errors.New("short write")
)

// PutObjectOptions define optional parameters for storing objects.
// Size should be the exact number of bytes if known; if unknown, set to -1.
// A known size is checked before the object becomes visible.
type PutObjectOptions struct {
	Size int64
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// Storage is the note object store.
type Storage interface {
	// Put stores the reader's content under key, replacing any previous object.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Stat returns an object's info without opening it.
	Stat(ctx context.Context, key string) (ObjectInfo, error)
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
