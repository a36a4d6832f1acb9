package service

import (
	"context"
	"io"
)

// ObjectStorage stores uploaded binary objects (product images) and returns
// publicly addressable URLs for them.
type ObjectStorage interface {
	// Upload writes the object under the given key and returns its public URL.
	Upload(ctx context.Context, key string, contentType string, r io.Reader) (string, error)
}
