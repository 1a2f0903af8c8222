package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/servico/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/servico/internal/core/services"
)

func TestNewServer(t *testing.T) {
	t.Run("missing user service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Services: &mockServiceRecordService{}})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingUserService)
	})

	t.Run("missing service service returns error", func(t *testing.T) {
		_, err := NewServer(&Ports{Users: &mockUserService{}})
		assert.ErrorIs(t, err, ErrMissingServiceService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Users:    &mockUserService{},
			Services: &mockServiceRecordService{},
		})
		require.NoError(t, err)
		assert.NotNil(t, server)
		assert.NotNil(t, server.Handler())
	})
}

// connect runs the server against real services over in-memory transports.
func connect(t *testing.T) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	users, err := services.NewUserService(ctx, memory.NewUserStore(), nil)
	require.NoError(t, err)
	records, err := services.NewServiceRecordService(ctx, memory.NewServiceStore(), users, nil)
	require.NoError(t, err)

	server, err := NewServer(&Ports{Users: users, Services: records})
	require.NoError(t, err)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "test", Version: "0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = session.Close()
		_ = serverSession.Wait()
	})
	return session
}

func TestServer_Session(t *testing.T) {
	ctx := context.Background()
	session := connect(t)

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"list_users", "get_user", "create_user",
		"list_services", "get_service", "create_service",
	}, names)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "create_user",
		Arguments: map[string]any{
			"name":        "Ana",
			"email":       "ana@test.com",
			"national_id": "52998224725",
		},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name: "create_service",
		Arguments: map[string]any{
			"user_id":    1,
			"start_date": "01/02/2024",
			"end_date":   "05/02/2024",
			"price":      "99.90",
			"category":   4,
		},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_user",
		Arguments: map[string]any{"id": 9},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)

	read, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: "servico://services"})
	require.NoError(t, err)
	require.Len(t, read.Contents, 1)
	assert.Contains(t, read.Contents[0].Text, `"category_label": "Cleaning"`)
	assert.Contains(t, read.Contents[0].Text, `"price": "99.90"`)

	read, err = session.ReadResource(ctx, &mcp.ReadResourceParams{URI: "servico://users/1"})
	require.NoError(t, err)
	assert.Contains(t, read.Contents[0].Text, `"national_id": "529.982.247-25"`)
}
