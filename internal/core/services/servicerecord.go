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

// Ensure ServiceRecordService implements the interface.
var _ driving.ServiceRecordService = (*ServiceRecordService)(nil)

// ServiceRecordService owns the in-memory service record collection.
type ServiceRecordService struct {
	mu      sync.RWMutex
	store   driven.ServiceStore
	users   driven.UserDirectory
	ids     driven.IDGenerator
	labels  domain.Labels
	records []domain.ServiceRecord
}

// NewServiceRecordService loads the stored service records. users resolves
// owners at creation time and names in views. A nil ids uses sequential
// ids.
func NewServiceRecordService(
	ctx context.Context,
	store driven.ServiceStore,
	users driven.UserDirectory,
	ids driven.IDGenerator,
) (*ServiceRecordService, error) {
	if store == nil || users == nil {
		return nil, fmt.Errorf("%w: service store and user directory are required", domain.ErrInvalidInput)
	}
	if ids == nil {
		ids = SequentialIDs{}
	}

	records, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}
	logger.Debug("Loaded %d service records", len(records))

	return &ServiceRecordService{
		store:   store,
		users:   users,
		ids:     ids,
		labels:  domain.DefaultLabels(),
		records: records,
	}, nil
}

// SetLabels sets the label tables used for views.
func (s *ServiceRecordService) SetLabels(labels domain.Labels) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels = labels
}

// List returns every service record enriched for display.
func (s *ServiceRecordService) List(ctx context.Context) ([]domain.ServiceView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]domain.ServiceView, len(s.records))
	for i, r := range s.records {
		views[i] = s.view(ctx, r)
	}
	return views, nil
}

// Get retrieves an enriched service record by ID.
func (s *ServiceRecordService) Get(ctx context.Context, id int64) (domain.ServiceView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			return s.view(ctx, r), nil
		}
	}
	return domain.ServiceView{}, domain.NotFound(MsgServiceNotFound)
}

// Count returns the number of service records.
func (s *ServiceRecordService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// view must be called with mu held.
func (s *ServiceRecordService) view(ctx context.Context, r domain.ServiceRecord) domain.ServiceView {
	name := s.labels.UnknownUser()
	if u, ok := s.users.LookupUser(ctx, r.UserID); ok {
		name = u.Name
	}
	return domain.ServiceView{
		ServiceRecord: r,
		UserName:      name,
		CategoryLabel: s.labels.Category(r.Category),
		StatusLabel:   s.labels.Status(r.Status),
	}
}

// Create validates and stores a new service record.
//
// Checks run in order and the first failure is returned: the owner exists,
// the category is in range, both dates have the DD/MM/YYYY shape, both
// dates are real days and the start is strictly before the end.
func (s *ServiceRecordService) Create(ctx context.Context, in domain.NewServiceRecord) (*driving.ServiceCreated, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users.LookupUser(ctx, in.UserID); !ok {
		return nil, domain.NotFound(MsgOwnerNotFound)
	}
	if !in.Category.IsValid() {
		return nil, domain.InvalidArgument(MsgInvalidCategory)
	}
	if !domain.ValidDate(in.StartDate) || !domain.ValidDate(in.EndDate) {
		return nil, domain.InvalidArgument(MsgInvalidDateFormat)
	}
	start, err := domain.ParseDate(in.StartDate)
	if err != nil {
		return nil, domain.InvalidArgument(MsgInvalidDate)
	}
	end, err := domain.ParseDate(in.EndDate)
	if err != nil {
		return nil, domain.InvalidArgument(MsgInvalidDate)
	}
	if !start.Before(end) {
		return nil, domain.InvalidArgument(MsgInvalidDateRange)
	}

	id, err := s.ids.Next(serviceIDs(s.records))
	if err != nil {
		return nil, err
	}

	record := domain.ServiceRecord{
		ID:        id,
		UserID:    in.UserID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Price:     in.Price,
		Category:  in.Category,
		Status:    domain.StatusAwaiting,
	}

	n := len(s.records)
	next := append(s.records[:n:n], record)
	if err := s.store.Save(ctx, next); err != nil {
		logger.Error(err, "Persisting services failed, service %d discarded", id)
		return nil, domain.Internal(MsgServicesPersistFailed, err)
	}
	s.records = next

	logger.Info("Created service %d for user %d", id, in.UserID)
	return &driving.ServiceCreated{Message: MsgServiceCreated, Service: s.view(ctx, record)}, nil
}
