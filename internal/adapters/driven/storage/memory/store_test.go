package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/servico/internal/core/domain"
)

func TestUserStore_EmptyLoad(t *testing.T) {
	store := NewUserStore()

	users, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserStore_SaveAndLoad(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	in := []domain.User{
		{ID: 2, Name: "Bia", Email: "bia@test.com", NationalID: "11144477735"},
		{ID: 1, Name: "Ana", Email: "ana@test.com", NationalID: "52998224725"},
	}
	require.NoError(t, store.Save(ctx, in))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Equal(t, 1, store.Saves())

	// Loaded slices are copies
	out[0].Name = "changed"
	again, _ := store.Load(ctx)
	assert.Equal(t, "Bia", again[0].Name)
}

func TestUserStore_FailSaves(t *testing.T) {
	seed := domain.User{ID: 1, Name: "Ana"}
	store := NewUserStore(seed)
	ctx := context.Background()
	boom := errors.New("disk full")

	store.FailSaves(boom)
	err := store.Save(ctx, nil)
	assert.ErrorIs(t, err, boom)

	users, _ := store.Load(ctx)
	assert.Equal(t, []domain.User{seed}, users)
	assert.Zero(t, store.Saves())

	store.FailSaves(nil)
	assert.NoError(t, store.Save(ctx, nil))
}

func TestServiceStore_SaveAndLoad(t *testing.T) {
	store := NewServiceStore()
	ctx := context.Background()

	in := []domain.ServiceRecord{{
		ID:        1,
		UserID:    1,
		StartDate: "01/02/2024",
		EndDate:   "05/02/2024",
		Price:     decimal.RequireFromString("150.50"),
		Category:  domain.CategoryRepair,
		Status:    domain.StatusAwaiting,
	}}
	require.NoError(t, store.Save(ctx, in))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestServiceStore_FailSaves(t *testing.T) {
	store := NewServiceStore()
	store.FailSaves(errors.New("read-only"))

	assert.Error(t, store.Save(context.Background(), []domain.ServiceRecord{{ID: 1}}))

	records, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
