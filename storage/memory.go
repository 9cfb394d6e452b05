package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// MemoryUploader swallows uploads and mints fake references. Used in dev
// mode and in tests.
type MemoryUploader struct {
	mu    sync.Mutex
	count int

	// Fail forces Upload to error, for exercising the upload-failure path.
	Fail bool
}

// NewMemoryUploader creates an empty in-memory uploader.
func NewMemoryUploader() *MemoryUploader {
	return &MemoryUploader{}
}

func (u *MemoryUploader) Upload(_ context.Context, file io.Reader) (string, error) {
	if u.Fail {
		return "", fmt.Errorf("memory uploader: upload failed")
	}
	if _, err := io.Copy(io.Discard, file); err != nil {
		return "", err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.count++
	return fmt.Sprintf("mem://payment-proofs/%d", u.count), nil
}
