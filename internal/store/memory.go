package store

import (
	"context"
	"sync"

	"github.com/serroba/dropbin/internal/shortener"
)

// MemoryLinkStore is an in-memory implementation of shortener.Repository.
type MemoryLinkStore struct {
	mu    sync.RWMutex
	links map[shortener.Code]*shortener.ShortLink
}

// NewMemoryLinkStore creates a new in-memory link store.
func NewMemoryLinkStore() *MemoryLinkStore {
	return &MemoryLinkStore{
		links: make(map[shortener.Code]*shortener.ShortLink),
	}
}

func (m *MemoryLinkStore) Save(_ context.Context, link *shortener.ShortLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.links[link.Code]; ok {
		return shortener.ErrCodeTaken
	}

	stored := *link
	m.links[link.Code] = &stored

	return nil
}

func (m *MemoryLinkStore) Get(_ context.Context, code shortener.Code) (*shortener.ShortLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	link, ok := m.links[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	found := *link

	return &found, nil
}

// Compile-time check.
var _ shortener.Repository = (*MemoryLinkStore)(nil)
