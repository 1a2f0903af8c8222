package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/servico/internal/core/domain"
	"github.com/custodia-labs/servico/internal/core/ports/driving"
)

func newTestServer(t *testing.T, users *mockUserService, records *mockServiceRecordService) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Users: users, Services: records})
	require.NoError(t, err)
	return server
}

func sampleService() domain.ServiceView {
	return domain.ServiceView{
		ServiceRecord: domain.ServiceRecord{
			ID:        3,
			UserID:    1,
			StartDate: "01/02/2024",
			EndDate:   "05/02/2024",
			Price:     decimal.RequireFromString("150"),
			Category:  domain.CategoryRepair,
			Status:    domain.StatusAwaiting,
		},
		UserName:      "Ana",
		CategoryLabel: "Repair",
		StatusLabel:   "Awaiting",
	}
}

func TestServer_handleListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("returns users", func(t *testing.T) {
		users := &mockUserService{users: []domain.UserView{
			{ID: 1, Name: "Ana", Email: "ana@test.com", NationalID: "529.982.247-25"},
		}}
		server := newTestServer(t, users, &mockServiceRecordService{})

		_, out, err := server.handleListUsers(ctx, nil, struct{}{})

		require.NoError(t, err)
		assert.Equal(t, 1, out.Count)
		assert.Equal(t, "529.982.247-25", out.Users[0].NationalID)
	})

	t.Run("hides internal causes", func(t *testing.T) {
		users := &mockUserService{err: domain.Internal("failed to load users", errors.New("disk on fire"))}
		server := newTestServer(t, users, &mockServiceRecordService{})

		_, _, err := server.handleListUsers(ctx, nil, struct{}{})

		require.Error(t, err)
		assert.Equal(t, "failed to load users", err.Error())
	})
}

func TestServer_handleGetUser(t *testing.T) {
	server := newTestServer(t, &mockUserService{}, &mockServiceRecordService{})

	_, _, err := server.handleGetUser(context.Background(), nil, IDInput{ID: 4})

	require.Error(t, err)
	assert.Equal(t, "User not found", err.Error())
}

func TestServer_handleCreateUser(t *testing.T) {
	users := &mockUserService{created: &driving.UserCreated{
		Message: "User created successfully",
		User:    domain.UserView{ID: 1, Name: "Ana", Email: "ana@test.com", NationalID: "529.982.247-25"},
	}}
	server := newTestServer(t, users, &mockServiceRecordService{})

	_, out, err := server.handleCreateUser(context.Background(), nil, CreateUserInput{
		Name: "Ana", Email: "ana@test.com", NationalID: "52998224725",
	})

	require.NoError(t, err)
	assert.Equal(t, "User created successfully", out.Message)
	assert.Equal(t, int64(1), out.User.ID)
	assert.Equal(t, domain.NewUser{Name: "Ana", Email: "ana@test.com", NationalID: "52998224725"}, users.got)
}

func TestServer_handleListServices(t *testing.T) {
	records := &mockServiceRecordService{services: []domain.ServiceView{sampleService()}}
	server := newTestServer(t, &mockUserService{}, records)

	_, out, err := server.handleListServices(context.Background(), nil, struct{}{})

	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, ServiceOutput{
		ID:            3,
		UserID:        1,
		StartDate:     "01/02/2024",
		EndDate:       "05/02/2024",
		Price:         "150.00",
		Category:      3,
		Status:        1,
		UserName:      "Ana",
		CategoryLabel: "Repair",
		StatusLabel:   "Awaiting",
	}, out.Services[0])
}

func TestServer_handleGetService(t *testing.T) {
	records := &mockServiceRecordService{services: []domain.ServiceView{sampleService()}}
	server := newTestServer(t, &mockUserService{}, records)

	_, out, err := server.handleGetService(context.Background(), nil, IDInput{ID: 3})
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.UserName)

	_, _, err = server.handleGetService(context.Background(), nil, IDInput{ID: 4})
	assert.EqualError(t, err, "Service not found")
}

func TestServer_handleCreateService(t *testing.T) {
	ctx := context.Background()

	t.Run("passes fields through", func(t *testing.T) {
		records := &mockServiceRecordService{created: &driving.ServiceCreated{
			Message: "Service created successfully",
			Service: sampleService(),
		}}
		server := newTestServer(t, &mockUserService{}, records)

		_, out, err := server.handleCreateService(ctx, nil, CreateServiceInput{
			UserID: 1, StartDate: "01/02/2024", EndDate: "05/02/2024", Price: "150", Category: 3,
		})

		require.NoError(t, err)
		assert.Equal(t, "Service created successfully", out.Message)
		assert.Equal(t, domain.CategoryRepair, records.got.Category)
		assert.True(t, decimal.NewFromInt(150).Equal(records.got.Price))
	})

	t.Run("empty price is zero", func(t *testing.T) {
		records := &mockServiceRecordService{created: &driving.ServiceCreated{Service: sampleService()}}
		server := newTestServer(t, &mockUserService{}, records)

		_, _, err := server.handleCreateService(ctx, nil, CreateServiceInput{UserID: 1, Category: 1})

		require.NoError(t, err)
		assert.True(t, records.got.Price.IsZero())
	})

	t.Run("rejects malformed price", func(t *testing.T) {
		records := &mockServiceRecordService{}
		server := newTestServer(t, &mockUserService{}, records)

		_, _, err := server.handleCreateService(ctx, nil, CreateServiceInput{UserID: 1, Price: "ten", Category: 1})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid price")
	})

	t.Run("returns validation message", func(t *testing.T) {
		records := &mockServiceRecordService{err: domain.InvalidArgument("Invalid date format. Use dd/mm/yyyy.")}
		server := newTestServer(t, &mockUserService{}, records)

		_, _, err := server.handleCreateService(ctx, nil, CreateServiceInput{UserID: 1, StartDate: "2024-01-01", Category: 1})

		assert.EqualError(t, err, "Invalid date format. Use dd/mm/yyyy.")
	})
}
