package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/custodia-labs/servico/internal/core/domain"
	"github.com/custodia-labs/servico/internal/core/ports/driven"
)

// Ensure ServiceStore implements the interface.
var _ driven.ServiceStore = (*ServiceStore)(nil)

// ServiceStore is an in-memory implementation of driven.ServiceStore.
type ServiceStore struct {
	mu      sync.RWMutex
	records []domain.ServiceRecord
	saves   int
	saveErr error
}

// NewServiceStore creates a new in-memory service store seeded with records.
func NewServiceStore(records ...domain.ServiceRecord) *ServiceStore {
	return &ServiceStore{records: slices.Clone(records)}
}

// Load returns a copy of the stored service records.
func (s *ServiceStore) Load(_ context.Context) ([]domain.ServiceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.records == nil {
		return []domain.ServiceRecord{}, nil
	}
	return slices.Clone(s.records), nil
}

// Save replaces the stored records, or returns the error set by FailSaves.
func (s *ServiceStore) Save(_ context.Context, records []domain.ServiceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.records = slices.Clone(records)
	s.saves++
	return nil
}

// FailSaves makes every following Save return err. A nil err clears it.
func (s *ServiceStore) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// Saves returns the number of successful Save calls.
func (s *ServiceStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
