package memory

import (
	"context"
	"sort"
	"sync"

	"sheetlens/domain/catalog"
	"sheetlens/domain/core"
	"sheetlens/internal/errors"
	"sheetlens/ports"
)

// catalogStore is the in-process CatalogStore used when no database is
// configured. Entries do not survive a restart.
type catalogStore struct {
	mu      sync.RWMutex
	entries map[core.DatasetID]*catalog.Entry
}

// NewCatalogStore creates an empty in-memory catalog store
func NewCatalogStore() ports.CatalogStore {
	return &catalogStore{entries: make(map[core.DatasetID]*catalog.Entry)}
}

func (s *catalogStore) Save(_ context.Context, entry *catalog.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.ID] = entry
	return nil
}

func (s *catalogStore) Get(_ context.Context, id core.DatasetID) (*catalog.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[id]
	if !ok {
		return nil, errors.NotFound("dataset not found: " + id.String())
	}
	return entry, nil
}

func (s *catalogStore) List(_ context.Context) ([]*catalog.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]*catalog.Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, entry)
	}
	// Newest first, matching the postgres adapter's ordering
	sort.Slice(entries, func(i, j int) bool {
		return entries[j].CreatedAt.Before(entries[i].CreatedAt)
	})
	return entries, nil
}

func (s *catalogStore) Delete(_ context.Context, id core.DatasetID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return errors.NotFound("dataset not found: " + id.String())
	}
	delete(s.entries, id)
	return nil
}
