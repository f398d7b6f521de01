package redisstore

import (
	"context"
	"testing"

	"bezgo/internal/domain/entity"
	"bezgo/internal/domain/repository"
	"bezgo/internal/infra/persistence/kv"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*miniredis.Miniredis, *Store) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := New(client, "bezgo:")
	t.Cleanup(func() { _ = s.Close() })

	return mr, s
}

func TestStore_PrefixesKeys(t *testing.T) {
	mr, s := setup(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, repository.KeyUser, []byte(`{"phone":"9876543210"}`)))

	assert.True(t, mr.Exists("bezgo:"+repository.KeyUser))
	raw, err := mr.Get("bezgo:" + repository.KeyUser)
	require.NoError(t, err)
	assert.JSONEq(t, `{"phone":"9876543210"}`, raw)
}

func TestStore_MissingKey(t *testing.T) {
	_, s := setup(t)

	_, ok, err := s.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_ClearAllThroughRepository(t *testing.T) {
	mr, s := setup(t)
	ctx := context.Background()
	repo := kv.NewStateRepository(s)

	require.NoError(t, repo.SaveUser(ctx, &entity.UserData{Phone: "9876543210", FirstName: "Asha"}))
	require.NoError(t, repo.SaveOrders(ctx, []entity.OrderHistoryItem{{ID: "BZG000001", Status: entity.OrderStatusDelivered}}))
	require.NoError(t, repo.SetOnboarded(ctx))
	require.NoError(t, mr.Set("unrelated", "keep"))

	require.NoError(t, repo.ClearAll(ctx))

	for _, key := range repository.AllKeys {
		assert.False(t, mr.Exists("bezgo:"+key), key)
	}
	assert.True(t, mr.Exists("unrelated"))
}

func TestStore_ServerError(t *testing.T) {
	mr, s := setup(t)
	mr.SetError("LOADING")

	_, _, err := s.Get(context.Background(), repository.KeyCart)
	assert.Error(t, err)
}

func TestDial_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = Dial(context.Background(), addr, "", 0, "")
	assert.Error(t, err)
}
