package storage

import "context"

// ObjectStorage uploads raw document bytes to an object store.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
}
