package mcp

import (
	"context"

	"github.com/custodia-labs/servico/internal/core/domain"
	"github.com/custodia-labs/servico/internal/core/ports/driving"
)

type mockUserService struct {
	users   []domain.UserView
	created *driving.UserCreated
	got     domain.NewUser
	err     error
}

func (m *mockUserService) List(_ context.Context) ([]domain.UserView, error) {
	return m.users, m.err
}

func (m *mockUserService) Get(_ context.Context, id int64) (domain.UserView, error) {
	if m.err != nil {
		return domain.UserView{}, m.err
	}
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.UserView{}, domain.NotFound("User not found")
}

func (m *mockUserService) Create(_ context.Context, u domain.NewUser) (*driving.UserCreated, error) {
	m.got = u
	return m.created, m.err
}

type mockServiceRecordService struct {
	services []domain.ServiceView
	created  *driving.ServiceCreated
	got      domain.NewServiceRecord
	err      error
}

func (m *mockServiceRecordService) List(_ context.Context) ([]domain.ServiceView, error) {
	return m.services, m.err
}

func (m *mockServiceRecordService) Get(_ context.Context, id int64) (domain.ServiceView, error) {
	if m.err != nil {
		return domain.ServiceView{}, m.err
	}
	for _, s := range m.services {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.ServiceView{}, domain.NotFound("Service not found")
}

func (m *mockServiceRecordService) Create(_ context.Context, r domain.NewServiceRecord) (*driving.ServiceCreated, error) {
	m.got = r
	return m.created, m.err
}
