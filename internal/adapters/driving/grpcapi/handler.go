package grpcapi

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/custodia-labs/servico/internal/core/domain"
	"github.com/custodia-labs/servico/internal/core/ports/driving"
)

// Ensure Handler implements both server APIs.
var (
	_ UserServer    = (*Handler)(nil)
	_ ServiceServer = (*Handler)(nil)
)

// Handler serves both RPC services from the driving ports.
type Handler struct {
	users    driving.UserService
	services driving.ServiceRecordService
}

// NewHandler creates a handler over the given services.
func NewHandler(users driving.UserService, services driving.ServiceRecordService) *Handler {
	return &Handler{users: users, services: services}
}

// GetAllUsers returns every user.
func (h *Handler) GetAllUsers(ctx context.Context, _ *Empty) (*UserList, error) {
	views, err := h.users.List(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	out := &UserList{Users: make([]User, len(views))}
	for i, v := range views {
		out.Users[i] = userFromView(v)
	}
	return out, nil
}

// GetUserById returns one user.
func (h *Handler) GetUserById(ctx context.Context, req *IDRequest) (*User, error) {
	v, err := h.users.Get(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	u := userFromView(v)
	return &u, nil
}

// CreateUser creates a user.
func (h *Handler) CreateUser(ctx context.Context, req *CreateUserRequest) (*CreateUserResponse, error) {
	res, err := h.users.Create(ctx, domain.NewUser{
		Name:       req.Name,
		Email:      req.Email,
		NationalID: req.NationalID,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &CreateUserResponse{Message: res.Message, User: userFromView(res.User)}, nil
}

// GetAllServices returns every service record.
func (h *Handler) GetAllServices(ctx context.Context, _ *Empty) (*ServiceList, error) {
	views, err := h.services.List(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	out := &ServiceList{Services: make([]Service, len(views))}
	for i, v := range views {
		out.Services[i] = serviceFromView(v)
	}
	return out, nil
}

// GetServiceById returns one service record.
func (h *Handler) GetServiceById(ctx context.Context, req *IDRequest) (*Service, error) {
	v, err := h.services.Get(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	s := serviceFromView(v)
	return &s, nil
}

// CreateService creates a service record.
func (h *Handler) CreateService(ctx context.Context, req *CreateServiceRequest) (*CreateServiceResponse, error) {
	res, err := h.services.Create(ctx, domain.NewServiceRecord{
		UserID:    req.UserID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Price:     req.Price,
		Category:  domain.Category(req.Category),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &CreateServiceResponse{Message: res.Message, Service: serviceFromView(res.Service)}, nil
}

// codeFor maps error kinds to gRPC codes.
func codeFor(k domain.Kind) codes.Code {
	switch k {
	case domain.KindNotFound:
		return codes.NotFound
	case domain.KindInvalidArgument:
		return codes.InvalidArgument
	case domain.KindAlreadyExists:
		return codes.AlreadyExists
	default:
		return codes.Internal
	}
}

// toStatus converts a service error into a gRPC status carrying only the
// client message.
func toStatus(err error) error {
	return status.Error(codeFor(domain.KindOf(err)), domain.MessageOf(err))
}
