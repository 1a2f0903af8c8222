package sqlite

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/servico/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/servico/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func TestNewStore(t *testing.T) {
	store := setupTestStore(t)

	assert.FileExists(t, store.Path())

	var version int
	require.NoError(t, store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)
}

func TestNewStore_RequiresDir(t *testing.T) {
	_, err := NewStore("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.UserStore().Save(ctx, []domain.User{{ID: 1, Name: "Ana", Email: "a@b.com", NationalID: "52998224725"}}))
	require.NoError(t, store.Close())

	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	users, err := store.UserStore().Load(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Ana", users[0].Name)
}

func TestUserStore_EmptyLoad(t *testing.T) {
	store := setupTestStore(t)

	users, err := store.UserStore().Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserStore_SaveKeepsOrder(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	users := []domain.User{
		{ID: 90210, Name: "Zé", Email: "ze@test.com", NationalID: "11144477735"},
		{ID: 3, Name: "Ana", Email: "ana@test.com", NationalID: "52998224725"},
	}

	require.NoError(t, store.UserStore().Save(ctx, users))

	got, err := store.UserStore().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUserStore_SaveReplaces(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.UserStore().Save(ctx, []domain.User{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}))
	require.NoError(t, store.UserStore().Save(ctx, []domain.User{{ID: 3, Name: "C"}}))

	got, err := store.UserStore().Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestUserStore_DuplicateIDRollsBack(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.UserStore().Save(ctx, []domain.User{{ID: 1, Name: "A"}}))

	err := store.UserStore().Save(ctx, []domain.User{{ID: 2, Name: "B"}, {ID: 2, Name: "B again"}})
	require.Error(t, err)

	got, err := store.UserStore().Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)
}

func TestServiceStore_RoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	records := []domain.ServiceRecord{
		{
			ID: 1, UserID: 1, StartDate: "01/02/2024", EndDate: "05/02/2024",
			Price: decimal.RequireFromString("1234.56"), Category: domain.CategoryRepair,
			Status: domain.StatusAwaiting,
		},
		{
			ID: 2, UserID: 404, StartDate: "01/03/2024", EndDate: "02/03/2024",
			Price: decimal.Zero, Category: domain.CategoryOther, Status: domain.StatusFinished,
		},
	}

	require.NoError(t, store.ServiceStore().Save(ctx, records))

	got, err := store.ServiceStore().Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range records {
		assert.True(t, records[i].Price.Equal(got[i].Price), "price %d", i)
		got[i].Price = records[i].Price
	}
	assert.Equal(t, records, got)
}

func TestMigrate_Idempotent(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.migrate(migrations.FS))

	var count int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)
}
