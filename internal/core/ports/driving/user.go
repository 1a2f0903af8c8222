package driving

import (
	"context"

	"github.com/custodia-labs/servico/internal/core/domain"
)

// UserService manages registered users.
type UserService interface {
	// List returns every user in insertion order, national IDs formatted.
	List(ctx context.Context) ([]domain.UserView, error)

	// Get retrieves a user by ID.
	// Returns a domain.KindNotFound error if no user has the ID.
	Get(ctx context.Context, id int64) (domain.UserView, error)

	// Create validates and stores a new user.
	Create(ctx context.Context, user domain.NewUser) (*UserCreated, error)
}

// UserCreated is the result of a successful UserService.Create.
type UserCreated struct {
	Message string
	User    domain.UserView
}
