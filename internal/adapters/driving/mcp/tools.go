package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shopspring/decimal"

	"github.com/custodia-labs/servico/internal/core/domain"
	"github.com/custodia-labs/servico/internal/logger"
)

// IDInput is the input schema of the get tools.
type IDInput struct {
	ID int64 `json:"id" jsonschema:"the record id"`
}

// UserOutput is a user as returned by the tools.
type UserOutput struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	NationalID string `json:"national_id"`
}

// UserListOutput is the output schema of list_users.
type UserListOutput struct {
	Users []UserOutput `json:"users"`
	Count int          `json:"count"`
}

// CreateUserInput is the input schema of create_user.
type CreateUserInput struct {
	Name       string `json:"name" jsonschema:"full name of the user"`
	Email      string `json:"email" jsonschema:"email address"`
	NationalID string `json:"national_id" jsonschema:"CPF, with or without punctuation"`
}

// CreateUserOutput is the output schema of create_user.
type CreateUserOutput struct {
	Message string     `json:"message"`
	User    UserOutput `json:"user"`
}

// ServiceOutput is an enriched service record as returned by the tools.
type ServiceOutput struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Price         string `json:"price"`
	Category      int    `json:"category"`
	Status        int    `json:"status"`
	UserName      string `json:"user_name"`
	CategoryLabel string `json:"category_label"`
	StatusLabel   string `json:"status_label"`
}

// ServiceListOutput is the output schema of list_services.
type ServiceListOutput struct {
	Services []ServiceOutput `json:"services"`
	Count    int             `json:"count"`
}

// CreateServiceInput is the input schema of create_service.
type CreateServiceInput struct {
	UserID    int64  `json:"user_id" jsonschema:"id of the user who owns the service"`
	StartDate string `json:"start_date" jsonschema:"start date as dd/mm/yyyy"`
	EndDate   string `json:"end_date" jsonschema:"end date as dd/mm/yyyy, after the start date"`
	Price     string `json:"price,omitempty" jsonschema:"decimal price such as 150.00"`
	Category  int    `json:"category" jsonschema:"1 maintenance, 2 installation, 3 repair, 4 cleaning, 5 other"`
}

// CreateServiceOutput is the output schema of create_service.
type CreateServiceOutput struct {
	Message string        `json:"message"`
	Service ServiceOutput `json:"service"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_users",
		Description: "List every registered user",
	}, s.handleListUsers)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_user",
		Description: "Get a user by id",
	}, s.handleGetUser)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_user",
		Description: "Register a user with a unique, valid CPF",
	}, s.handleCreateUser)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_services",
		Description: "List every service record with owner name and labels",
	}, s.handleListServices)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_service",
		Description: "Get a service record by id",
	}, s.handleGetService)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_service",
		Description: "Create a service record for an existing user; status starts as awaiting",
	}, s.handleCreateService)
}

func (s *Server) handleListUsers(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, UserListOutput, error) {
	users, err := s.ports.Users.List(ctx)
	if err != nil {
		return nil, UserListOutput{}, toolError(err)
	}
	out := UserListOutput{Users: make([]UserOutput, len(users)), Count: len(users)}
	for i, u := range users {
		out.Users[i] = userOutput(u)
	}
	return nil, out, nil
}

func (s *Server) handleGetUser(ctx context.Context, _ *mcp.CallToolRequest, in IDInput) (*mcp.CallToolResult, UserOutput, error) {
	u, err := s.ports.Users.Get(ctx, in.ID)
	if err != nil {
		return nil, UserOutput{}, toolError(err)
	}
	return nil, userOutput(u), nil
}

func (s *Server) handleCreateUser(ctx context.Context, _ *mcp.CallToolRequest, in CreateUserInput) (*mcp.CallToolResult, CreateUserOutput, error) {
	res, err := s.ports.Users.Create(ctx, domain.NewUser{
		Name:       in.Name,
		Email:      in.Email,
		NationalID: in.NationalID,
	})
	if err != nil {
		return nil, CreateUserOutput{}, toolError(err)
	}
	logger.Debug("MCP created user %d", res.User.ID)
	return nil, CreateUserOutput{Message: res.Message, User: userOutput(res.User)}, nil
}

func (s *Server) handleListServices(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, ServiceListOutput, error) {
	records, err := s.ports.Services.List(ctx)
	if err != nil {
		return nil, ServiceListOutput{}, toolError(err)
	}
	out := ServiceListOutput{Services: make([]ServiceOutput, len(records)), Count: len(records)}
	for i := range records {
		out.Services[i] = serviceOutput(records[i])
	}
	return nil, out, nil
}

func (s *Server) handleGetService(ctx context.Context, _ *mcp.CallToolRequest, in IDInput) (*mcp.CallToolResult, ServiceOutput, error) {
	v, err := s.ports.Services.Get(ctx, in.ID)
	if err != nil {
		return nil, ServiceOutput{}, toolError(err)
	}
	return nil, serviceOutput(v), nil
}

func (s *Server) handleCreateService(ctx context.Context, _ *mcp.CallToolRequest, in CreateServiceInput) (*mcp.CallToolResult, CreateServiceOutput, error) {
	price := decimal.Zero
	if in.Price != "" {
		p, err := decimal.NewFromString(in.Price)
		if err != nil {
			return nil, CreateServiceOutput{}, fmt.Errorf("invalid price %q", in.Price)
		}
		price = p
	}

	res, err := s.ports.Services.Create(ctx, domain.NewServiceRecord{
		UserID:    in.UserID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Price:     price,
		Category:  domain.Category(in.Category),
	})
	if err != nil {
		return nil, CreateServiceOutput{}, toolError(err)
	}
	logger.Debug("MCP created service %d", res.Service.ID)
	return nil, CreateServiceOutput{Message: res.Message, Service: serviceOutput(res.Service)}, nil
}

func userOutput(v domain.UserView) UserOutput {
	return UserOutput{ID: v.ID, Name: v.Name, Email: v.Email, NationalID: v.NationalID}
}

func serviceOutput(v domain.ServiceView) ServiceOutput {
	return ServiceOutput{
		ID:            v.ID,
		UserID:        v.UserID,
		StartDate:     v.StartDate,
		EndDate:       v.EndDate,
		Price:         v.Price.StringFixed(2),
		Category:      int(v.Category),
		Status:        int(v.Status),
		UserName:      v.UserName,
		CategoryLabel: v.CategoryLabel,
		StatusLabel:   v.StatusLabel,
	}
}
