// File: services/settings/memory.go
package settings

import (
	"context"
	"sync"

	"detailify/models"
)

// MemoryStore is an in-memory Store for tests and local development.
type MemoryStore struct {
	mu       sync.RWMutex
	settings *models.BusinessSettings
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (*models.BusinessSettings, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return nil, false, nil
	}
	copied := *s.settings
	return &copied, true, nil
}

func (s *MemoryStore) Save(ctx context.Context, settings models.BusinessSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = &settings
	return nil
}
