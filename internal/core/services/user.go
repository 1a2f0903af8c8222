package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/servico/internal/core/domain"
	"github.com/custodia-labs/servico/internal/core/ports/driven"
	"github.com/custodia-labs/servico/internal/core/ports/driving"
	"github.com/custodia-labs/servico/internal/logger"
)

// Ensure UserService implements the interfaces.
var (
	_ driving.UserService  = (*UserService)(nil)
	_ driven.UserDirectory = (*UserService)(nil)
)

// UserService owns the in-memory user collection and keeps it in step with
// its store.
type UserService struct {
	mu    sync.RWMutex
	store driven.UserStore
	ids   driven.IDGenerator
	users []domain.User
}

// NewUserService loads the stored users and returns a service over them.
// A nil ids uses sequential ids.
func NewUserService(ctx context.Context, store driven.UserStore, ids driven.IDGenerator) (*UserService, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: user store is required", domain.ErrInvalidInput)
	}
	if ids == nil {
		ids = SequentialIDs{}
	}

	users, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	logger.Debug("Loaded %d users", len(users))

	return &UserService{store: store, ids: ids, users: users}, nil
}

// List returns every user in insertion order.
func (s *UserService) List(_ context.Context) ([]domain.UserView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]domain.UserView, len(s.users))
	for i, u := range s.users {
		views[i] = u.View()
	}
	return views, nil
}

// Get retrieves a user by ID.
func (s *UserService) Get(_ context.Context, id int64) (domain.UserView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.find(id)
	if !ok {
		return domain.UserView{}, domain.NotFound(MsgUserNotFound)
	}
	return u.View(), nil
}

// LookupUser returns the stored user with id.
func (s *UserService) LookupUser(_ context.Context, id int64) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.find(id)
}

// Count returns the number of users.
func (s *UserService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// find must be called with mu held.
func (s *UserService) find(id int64) (domain.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

// Create validates and stores a new user.
//
// Checks run in order and the first failure is returned: email shape,
// national ID checksum, then national ID uniqueness. The national ID is
// stored without punctuation. If the store rejects the write the user is
// not kept in memory either.
func (s *UserService) Create(ctx context.Context, in domain.NewUser) (*driving.UserCreated, error) {
	if !domain.ValidEmail(in.Email) {
		return nil, domain.InvalidArgument(MsgInvalidEmail)
	}
	if !domain.ValidNationalID(in.NationalID) {
		return nil, domain.InvalidArgument(MsgInvalidNationalID)
	}
	nationalID := domain.StripNonDigits(in.NationalID)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if domain.StripNonDigits(u.NationalID) == nationalID {
			return nil, domain.AlreadyExists(MsgNationalIDTaken)
		}
	}

	id, err := s.ids.Next(userIDs(s.users))
	if err != nil {
		return nil, err
	}

	user := domain.User{
		ID:         id,
		Name:       in.Name,
		Email:      in.Email,
		NationalID: nationalID,
	}

	n := len(s.users)
	next := append(s.users[:n:n], user)
	if err := s.store.Save(ctx, next); err != nil {
		logger.Error(err, "Persisting users failed, user %d discarded", id)
		return nil, domain.Internal(MsgUsersPersistFailed, err)
	}
	s.users = next

	logger.Info("Created user %d", id)
	return &driving.UserCreated{Message: MsgUserCreated, User: user.View()}, nil
}
