// Package memory holds the in-process variants of the persistence ports,
// used in sheets mode where no database is configured.
package memory

import (
	"context"
	"sync"

	"github.com/koleso24/cabinet-api/internal/core/domain"
)

// SettingsStore keeps the field-visibility snapshot in process memory.
// Writers are serialized behind the mutex; readers get value copies, so a
// torn snapshot is impossible. State is lost on shutdown.
type SettingsStore struct {
	mu       sync.RWMutex
	settings domain.FieldVisibility
}

// NewSettingsStore starts from the hardcoded defaults.
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{settings: domain.DefaultFieldVisibility()}
}

func (s *SettingsStore) Get(_ context.Context) (domain.FieldVisibility, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, nil
}

func (s *SettingsStore) Put(_ context.Context, settings domain.FieldVisibility) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return nil
}
