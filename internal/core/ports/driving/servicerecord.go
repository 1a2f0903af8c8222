package driving

import (
	"context"

	"github.com/custodia-labs/servico/internal/core/domain"
)

// ServiceRecordService manages service records.
type ServiceRecordService interface {
	// List returns every service record enriched for display.
	List(ctx context.Context) ([]domain.ServiceView, error)

	// Get retrieves an enriched service record by ID.
	Get(ctx context.Context, id int64) (domain.ServiceView, error)

	// Create validates and stores a new service record. The owner must
	// exist and the status is always set to awaiting.
	Create(ctx context.Context, record domain.NewServiceRecord) (*ServiceCreated, error)
}

// ServiceCreated is the result of a successful ServiceRecordService.Create.
type ServiceCreated struct {
	Message string
	Service domain.ServiceView
}
