package store

import (
	"context"
	"sync"

	"github.com/serroba/dropbin/internal/files"
)

// MemoryFileStore is an in-memory implementation of files.Store.
type MemoryFileStore struct {
	mu      sync.RWMutex
	records []files.FileRecord
}

// NewMemoryFileStore creates a new in-memory file metadata store.
func NewMemoryFileStore() *MemoryFileStore {
	return &MemoryFileStore{}
}

func (m *MemoryFileStore) SaveFile(_ context.Context, record *files.FileRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = append(m.records, *record)

	return nil
}

func (m *MemoryFileStore) ListByUser(_ context.Context, userID string) ([]files.FileRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []files.FileRecord

	for _, record := range m.records {
		if record.UserID == userID {
			out = append(out, record)
		}
	}

	return out, nil
}

// Compile-time check.
var _ files.Store = (*MemoryFileStore)(nil)
