package storage

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// ErrObjectNotFound is returned by MemoryStorage for unknown keys.
var ErrObjectNotFound = errors.New("object not found in storage")

// StoredObject is an object held by MemoryStorage.
type StoredObject struct {
	ContentType string
	Body        []byte
}

// MemoryStorage is an in-process FileStorage for local runs and tests. Its
// "presigned" URLs use the memory:// scheme and are not fetchable over HTTP.
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string]StoredObject
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string]StoredObject)}
}

func (m *MemoryStorage) PutObject(_ context.Context, objectKey string, contentType string, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[objectKey] = StoredObject{ContentType: contentType, Body: append([]byte(nil), body...)}
	return nil
}

func (m *MemoryStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, expires time.Duration) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.objects[objectKey]; !ok {
		return "", ErrObjectNotFound
	}
	if expires <= 0 {
		expires = DefaultPresignedURLExpiry
	}
	u := url.URL{
		Scheme:   "memory",
		Path:     "/" + objectKey,
		RawQuery: "expires=" + strconv.FormatInt(time.Now().Add(expires).Unix(), 10),
	}
	return u.String(), nil
}

func (m *MemoryStorage) DeleteObject(_ context.Context, objectKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[objectKey]; !ok {
		return ErrObjectNotFound
	}
	delete(m.objects, objectKey)
	return nil
}

// Get returns a stored object.
func (m *MemoryStorage) Get(objectKey string) (StoredObject, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[objectKey]
	return obj, ok
}

// Len reports how many objects are stored.
func (m *MemoryStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
