package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/custodia-labs/servico/internal/core/domain"
	"github.com/custodia-labs/servico/internal/core/ports/driven"
)

// Ensure UserStore implements the interface.
var _ driven.UserStore = (*UserStore)(nil)

// UserStore is an in-memory implementation of driven.UserStore.
type UserStore struct {
	mu      sync.RWMutex
	users   []domain.User
	saves   int
	saveErr error
}

// NewUserStore creates a new in-memory user store seeded with users.
func NewUserStore(users ...domain.User) *UserStore {
	return &UserStore{users: slices.Clone(users)}
}

// Load returns a copy of the stored users.
func (s *UserStore) Load(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.users == nil {
		return []domain.User{}, nil
	}
	return slices.Clone(s.users), nil
}

// Save replaces the stored users, or returns the error set by FailSaves.
func (s *UserStore) Save(_ context.Context, users []domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.users = slices.Clone(users)
	s.saves++
	return nil
}

// FailSaves makes every following Save return err. A nil err clears it.
func (s *UserStore) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// Saves returns the number of successful Save calls.
func (s *UserStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
