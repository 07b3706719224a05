package client

import (
	"fmt"
	"sync"
	"time"
)

// DocumentCache is the local persisted tier of the fallback chain:
// the last collection payload seen per filename.
type DocumentCache interface {
	Get(filename string) ([]byte, error)
	Put(filename string, payload []byte) error
	Delete(filename string) error
	Close() error
}

// MemoryCache backs the fallback chain when SQLite cannot be opened.
// Contents do not survive the process.
type MemoryCache struct {
	mu   sync.RWMutex
	docs map[string]memoryDoc
}

type memoryDoc struct {
	payload   []byte
	updatedAt time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		docs: make(map[string]memoryDoc),
	}
}

func (m *MemoryCache) Get(filename string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, exists := m.docs[filename]
	if !exists {
		return nil, fmt.Errorf("document not cached: %s", filename)
	}
	return doc.payload, nil
}

func (m *MemoryCache) Put(filename string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]byte, len(payload))
	copy(cp, payload)
	m.docs[filename] = memoryDoc{payload: cp, updatedAt: time.Now()}
	return nil
}

func (m *MemoryCache) Delete(filename string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.docs, filename)
	return nil
}

func (m *MemoryCache) Close() error { return nil }
