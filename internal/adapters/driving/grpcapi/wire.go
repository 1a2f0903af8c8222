package grpcapi

import (
	"github.com/shopspring/decimal"

	"github.com/custodia-labs/servico/internal/core/domain"
)

// Empty is the request of the list methods.
type Empty struct{}

// IDRequest selects a record by id.
type IDRequest struct {
	ID int64 `json:"id"`
}

// User is a user as sent to clients, national ID punctuated.
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	NationalID string `json:"nationalId"`
}

// UserList is the response of GetAllUsers.
type UserList struct {
	Users []User `json:"users"`
}

// CreateUserRequest carries the fields of a new user.
type CreateUserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	NationalID string `json:"nationalId"`
}

// CreateUserResponse is the response of CreateUser.
type CreateUserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// Service is an enriched service record as sent to clients.
type Service struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"userId"`
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
	Price         decimal.Decimal `json:"price"`
	Category      int32           `json:"category"`
	Status        int32           `json:"status"`
	UserName      string          `json:"userName"`
	CategoryLabel string          `json:"categoryLabel"`
	StatusLabel   string          `json:"statusLabel"`
}

// ServiceList is the response of GetAllServices.
type ServiceList struct {
	Services []Service `json:"services"`
}

// CreateServiceRequest carries the fields of a new service record. Status
// is not accepted; new records always start awaiting.
type CreateServiceRequest struct {
	UserID    int64           `json:"userId"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	Price     decimal.Decimal `json:"price"`
	Category  int32           `json:"category"`
}

// CreateServiceResponse is the response of CreateService.
type CreateServiceResponse struct {
	Message string  `json:"message"`
	Service Service `json:"service"`
}

func userFromView(v domain.UserView) User {
	return User{ID: v.ID, Name: v.Name, Email: v.Email, NationalID: v.NationalID}
}

func serviceFromView(v domain.ServiceView) Service {
	return Service{
		ID:            v.ID,
		UserID:        v.UserID,
		StartDate:     v.StartDate,
		EndDate:       v.EndDate,
		Price:         v.Price,
		Category:      int32(v.Category),
		Status:        int32(v.Status),
		UserName:      v.UserName,
		CategoryLabel: v.CategoryLabel,
		StatusLabel:   v.StatusLabel,
	}
}
