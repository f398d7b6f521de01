package kv_test

import (
	"context"
	"testing"
	"time"

	"bezgo/internal/domain/entity"
	"bezgo/internal/domain/repository"
	"bezgo/internal/infra/persistence/kv"
	"bezgo/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (repository.StateRepository, kv.Store) {
	t.Helper()
	store := memory.New()

	return kv.NewStateRepository(store), store
}

func TestStateRepository_EmptyStore(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	user, err := repo.GetUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	cart, err := repo.GetCart(ctx)
	require.NoError(t, err)
	assert.NotNil(t, cart)
	assert.Empty(t, cart)

	orders, err := repo.GetOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	theme, err := repo.GetTheme(ctx)
	require.NoError(t, err)
	assert.Nil(t, theme)

	onboarded, err := repo.IsOnboarded(ctx)
	require.NoError(t, err)
	assert.False(t, onboarded)
}

func TestStateRepository_SaveAndLoad(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	user := &entity.UserData{Phone: "9876543210", FirstName: "Asha", LastName: "Menon"}
	cart := []entity.CartItem{{ID: "p1", Name: "Tomato", Price: 40, Qty: 2, Weight: "1kg", Vendor: "Fresh Farm", VendorID: "v1"}}
	orders := []entity.OrderHistoryItem{{
		ID:        "BZG123456",
		Cart:      cart,
		Total:     80,
		Vendors:   []string{"Fresh Farm"},
		Timestamp: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		Status:    entity.OrderStatusActive,
	}}

	require.NoError(t, repo.SaveUser(ctx, user))
	require.NoError(t, repo.SaveCart(ctx, cart))
	require.NoError(t, repo.SaveOrders(ctx, orders))
	require.NoError(t, repo.SaveTheme(ctx, entity.Theme{IsDark: true, BrandColor: "#FF5722"}))
	require.NoError(t, repo.SetOnboarded(ctx))

	gotUser, err := repo.GetUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, gotUser)

	gotCart, err := repo.GetCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, cart, gotCart)

	gotOrders, err := repo.GetOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, orders, gotOrders)

	gotTheme, err := repo.GetTheme(ctx)
	require.NoError(t, err)
	require.NotNil(t, gotTheme)
	assert.True(t, gotTheme.IsDark)
	assert.Equal(t, "#FF5722", gotTheme.BrandColor)

	onboarded, err := repo.IsOnboarded(ctx)
	require.NoError(t, err)
	assert.True(t, onboarded)
}

func TestStateRepository_ClearAll(t *testing.T) {
	repo, store := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveUser(ctx, &entity.UserData{Phone: "9876543210", FirstName: "Asha"}))
	require.NoError(t, repo.SetOnboarded(ctx))
	require.NoError(t, repo.ClearAll(ctx))

	for _, key := range repository.AllKeys {
		_, ok, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
}

func TestStateRepository_CorruptValue(t *testing.T) {
	repo, store := newRepo(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, repository.KeyCart, []byte("{not json")))

	_, err := repo.GetCart(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrCorruptState)
}
