package driven

import (
	"context"

	"github.com/custodia-labs/servico/internal/core/domain"
)

// UserStore persists the user collection.
//
// The collection is always read and written whole. Load returns records in
// insertion order; Save replaces everything previously stored.
type UserStore interface {
	// Load returns every stored user. A store with no data yet returns an
	// empty slice and no error.
	Load(ctx context.Context) ([]domain.User, error)

	// Save rewrites the collection with users.
	Save(ctx context.Context, users []domain.User) error
}

// ServiceStore persists the service record collection.
type ServiceStore interface {
	// Load returns every stored service record in insertion order.
	Load(ctx context.Context) ([]domain.ServiceRecord, error)

	// Save rewrites the collection with records.
	Save(ctx context.Context, records []domain.ServiceRecord) error
}

// UserDirectory resolves user ids for other repositories.
type UserDirectory interface {
	// LookupUser returns the user with id and whether it exists.
	LookupUser(ctx context.Context, id int64) (domain.User, bool)
}
