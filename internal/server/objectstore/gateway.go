// Package objectstore is the system's gateway to the S3-compatible
// bucket: put, list, copy and delete against the single configured
// bucket. It is the only durable content storage.
package objectstore

import (
	"context"
	"io"
	"time"
)

// ObjectInfo describes one stored object as reported by a listing.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// Gateway abstracts the object-store primitives the services need.
// Implementations do not retry; callers surface failures as-is.
type Gateway interface {
	// Put writes body under key with the given content type.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error

	// List returns every object in the bucket in one unpaginated call.
	List(ctx context.Context) ([]ObjectInfo, error)

	// Copy duplicates srcKey to dstKey within the bucket.
	Copy(ctx context.Context, srcKey string, dstKey string) error

	// Delete removes the object at key.
	Delete(ctx context.Context, key string) error
}
