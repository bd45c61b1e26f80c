// Package digest derives the content address of a note.
package digest

import (
	"encoding/base64"

	sha256 "github.com/minio/sha256-simd"
)

// Size is the length of every digest string: a padded URL-safe base64
// rendering of a 32-byte SHA-256 sum.
var Size = base64.URLEncoding.EncodedLen(sha256.Size)

// Of returns the digest of content's UTF-8 bytes.
func Of(content string) string {
	return OfBytes([]byte(content))
}

// OfBytes returns the digest of b.
func OfBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return base64.URLEncoding.EncodeToString(sum[:])
}
