package store

import (
	"context"
	"fmt"
	"sync"
)

// DefaultQuotaBytes mirrors the ~5MB budget of the browser storage the
// original deployment ran on.
const DefaultQuotaBytes = 5 * 1024 * 1024

// MemoryStore is an in-process Store with an optional byte quota. Usage is
// counted as key length plus document length per kind, so swapping in a
// smaller document frees quota.
type MemoryStore struct {
	mu    sync.RWMutex
	docs  map[Kind][]byte
	quota int
}

type MemoryOption func(*MemoryStore)

// WithQuota caps total stored bytes. A non-positive quota means unlimited.
func WithQuota(bytes int) MemoryOption {
	return func(m *MemoryStore) {
		m.quota = bytes
	}
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	m := &MemoryStore{
		docs:  make(map[Kind][]byte),
		quota: DefaultQuotaBytes,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MemoryStore) Read(_ context.Context, kind Kind) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[kind]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (m *MemoryStore) Write(_ context.Context, kind Kind, doc []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.quota > 0 {
		used := 0
		for k, d := range m.docs {
			if k == kind {
				continue
			}
			used += len(k) + len(d)
		}
		if used+len(kind)+len(doc) > m.quota {
			return fmt.Errorf("%w: writing %d bytes to %s", ErrQuotaExhausted, len(doc), kind)
		}
	}

	stored := make([]byte, len(doc))
	copy(stored, doc)
	m.docs[kind] = stored
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, kind Kind) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.docs, kind)
	return nil
}

func (m *MemoryStore) ClearAll(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs = make(map[Kind][]byte)
	return nil
}
