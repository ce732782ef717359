// Package testutil provides hand-written mocks shared across package tests.
package testutil

import (
	"context"
	"sync"

	"driftlens/domain"
)

// UploadCall records the arguments of one MockObjectStore.Upload invocation.
type UploadCall struct {
	LocalPath string
	Bucket    string
	Key       string
	Metadata  map[string]string
}

// MockObjectStore implements domain.ObjectStore with per-method function
// fields and recorded calls.
type MockObjectStore struct {
	mu sync.Mutex

	UploadFn        func(ctx context.Context, localPath, bucket, key string, metadata map[string]string) error
	ReadFirstLineFn func(ctx context.Context, bucket, key string) (string, error)

	UploadCalls        []UploadCall
	ReadFirstLineCalls int
}

var _ domain.ObjectStore = (*MockObjectStore)(nil)

// Upload records the call and delegates to UploadFn (nil means success).
func (m *MockObjectStore) Upload(ctx context.Context, localPath, bucket, key string, metadata map[string]string) error {
	m.mu.Lock()
	m.UploadCalls = append(m.UploadCalls, UploadCall{
		LocalPath: localPath, Bucket: bucket, Key: key, Metadata: metadata,
	})
	m.mu.Unlock()
	if m.UploadFn == nil {
		return nil
	}
	return m.UploadFn(ctx, localPath, bucket, key, metadata)
}

// ReadFirstLine records the call and delegates to ReadFirstLineFn.
func (m *MockObjectStore) ReadFirstLine(ctx context.Context, bucket, key string) (string, error) {
	m.mu.Lock()
	m.ReadFirstLineCalls++
	m.mu.Unlock()
	if m.ReadFirstLineFn == nil {
		return "", nil
	}
	return m.ReadFirstLineFn(ctx, bucket, key)
}
