package object

import "context"

// Store abstracts the bucket holding raw CSV attachments. Implementations
// own all transport concerns; callers see bytes and keys only.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	// URI returns the storage URI for a key, e.g. s3://bucket/key.
	URI(key string) string
	// Ping verifies the backing bucket is reachable.
	Ping(ctx context.Context) error
}
