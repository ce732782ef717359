package domain

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DatasetKind distinguishes baseline datasets from production ones.
type DatasetKind string

// Dataset kinds.
const (
	DatasetReference DatasetKind = "reference"
	DatasetCurrent   DatasetKind = "current"
)

// ResolveObjectKey derives the canonical object-storage key for an upload.
// An explicit object name wins verbatim; the caller then owns full path
// control, collisions included. Otherwise the key is
// "{modelID}/{kind}/{basename(fileName)}". Pure, no network.
func ResolveObjectKey(modelID uuid.UUID, kind DatasetKind, fileName, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return fmt.Sprintf("%s/%s/%s", modelID, kind, filepath.Base(fileName))
}

// ObjectURL builds the canonical s3:// URL for a bucket and key.
func ObjectURL(bucket, key string) string {
	return fmt.Sprintf("s3://%s/%s", bucket, key)
}

// ParseObjectURL extracts bucket and key from an "s3://bucket/path/to/file"
// URL.
func ParseObjectURL(objectURL string) (bucket, key string, err error) {
	u, err := url.Parse(objectURL)
	if err != nil {
		return "", "", fmt.Errorf("parse object URL %q: %w", objectURL, err)
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("expected s3:// scheme, got %q in %q", u.Scheme, objectURL)
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("missing bucket or key in object URL %q", objectURL)
	}
	return bucket, key, nil
}
