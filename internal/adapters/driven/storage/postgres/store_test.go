package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/servico/internal/core/domain"
)

// setupTestStore connects to the database named by SERVICO_TEST_POSTGRES_DSN
// and empties both tables. Tests are skipped when it is unset.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("SERVICO_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("SERVICO_TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	store, err := NewStore(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	require.NoError(t, store.UserStore().Save(ctx, nil))
	require.NoError(t, store.ServiceStore().Save(ctx, nil))
	return store
}

func TestNewStore_RequiresDSN(t *testing.T) {
	_, err := NewStore(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewStore_BadDSN(t *testing.T) {
	_, err := NewStore(context.Background(), "postgres://%zz")
	assert.Error(t, err)
}

func TestUserStore_RoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	empty, err := store.UserStore().Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	users := []domain.User{
		{ID: 12, Name: "Bia", Email: "bia@test.com", NationalID: "11144477735"},
		{ID: 3, Name: "Ana", Email: "ana@test.com", NationalID: "52998224725"},
	}
	require.NoError(t, store.UserStore().Save(ctx, users))

	got, err := store.UserStore().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestServiceStore_RoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	records := []domain.ServiceRecord{{
		ID: 1, UserID: 3, StartDate: "01/02/2024", EndDate: "05/02/2024",
		Price: decimal.RequireFromString("99.90"), Category: domain.CategoryCleaning,
		Status: domain.StatusAwaiting,
	}}
	require.NoError(t, store.ServiceStore().Save(ctx, records))

	got, err := store.ServiceStore().Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, records[0].Price.Equal(got[0].Price))
	assert.Equal(t, domain.CategoryCleaning, got[0].Category)
	assert.Equal(t, "05/02/2024", got[0].EndDate)
}

func TestUserStore_FailedSaveKeepsPreviousRows(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.UserStore().Save(ctx, []domain.User{{ID: 1, Name: "A"}}))
	err := store.UserStore().Save(ctx, []domain.User{{ID: 2}, {ID: 2}})
	require.Error(t, err)

	got, err := store.UserStore().Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)
}
