package testutil

import (
	"context"
	"fmt"
	"sync"

	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/s3"
)

var _ s3.Service = (*MockS3Service)(nil)

// MockS3Service is an in-memory stand-in for object storage. Individual
// object keys can be primed to fail so tests can exercise partial-failure
// paths in cleanup and deletion flows.
type MockS3Service struct {
	mu       sync.RWMutex
	objects  map[string][]byte
	failKeys map[string]bool
}

// NewMockS3Service creates a new mock S3 service
func NewMockS3Service() *MockS3Service {
	return &MockS3Service{
		objects:  make(map[string][]byte),
		failKeys: make(map[string]bool),
	}
}

// FailKey makes every operation on the given object key return an error
func (s *MockS3Service) FailKey(objectKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failKeys[objectKey] = true
}

// HasObject reports whether the object key is currently stored
func (s *MockS3Service) HasObject(objectKey string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[objectKey]
	return ok
}

// PutObject seeds an object directly, bypassing failure injection
func (s *MockS3Service) PutObject(objectKey string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectKey] = data
}

func (s *MockS3Service) UploadSignature(ctx context.Context, image *s3.SignatureImage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failKeys[image.ObjectKey] {
		return s.failure(image.ObjectKey)
	}
	s.objects[image.ObjectKey] = image.Data
	return nil
}

func (s *MockS3Service) GetSignature(ctx context.Context, objectKey string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failKeys[objectKey] {
		return nil, s.failure(objectKey)
	}
	data, ok := s.objects[objectKey]
	if !ok {
		return nil, ierr.NewErrorf("object %s not found", objectKey).
			Mark(ierr.ErrNotFound)
	}
	return data, nil
}

func (s *MockS3Service) GetPresignedUrl(ctx context.Context, objectKey string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failKeys[objectKey] {
		return "", s.failure(objectKey)
	}
	return fmt.Sprintf("https://storage.test/%s", objectKey), nil
}

func (s *MockS3Service) DeleteObject(ctx context.Context, objectKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failKeys[objectKey] {
		return s.failure(objectKey)
	}
	delete(s.objects, objectKey)
	return nil
}

func (s *MockS3Service) Exists(ctx context.Context, objectKey string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failKeys[objectKey] {
		return false, s.failure(objectKey)
	}
	_, ok := s.objects[objectKey]
	return ok, nil
}

func (s *MockS3Service) failure(objectKey string) error {
	return ierr.NewErrorf("injected storage failure for %s", objectKey).
		Mark(ierr.ErrSystem)
}
