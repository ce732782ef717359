package domain

import "context"

// ObjectStore is the object-storage collaborator consumed by the dataset
// binder. Implemented by objectstore.S3Store; tests substitute a mock.
type ObjectStore interface {
	// Upload copies a local file to bucket/key, tagging it with metadata.
	Upload(ctx context.Context, localPath, bucket, key string, metadata map[string]string) error
	// ReadFirstLine returns the first line of a remote object, without the
	// trailing newline.
	ReadFirstLine(ctx context.Context, bucket, key string) (string, error)
}
