package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bezgo/config"
	"bezgo/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func params(t *testing.T, lc *fxtest.Lifecycle, storage *config.StorageConfig) RepositoryParams {
	t.Helper()

	return RepositoryParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{Storage: storage},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewStateRepository_DefaultsToMemory(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	repo, err := NewStateRepository(params(t, lc, nil))
	require.NoError(t, err)

	require.NoError(t, repo.SetOnboarded(context.Background()))
	ok, err := repo.IsOnboarded(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewStateRepository_Blob(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	repo, err := NewStateRepository(params(t, lc, &config.StorageConfig{
		Provider:  ProviderBlob,
		BucketURL: "file://" + t.TempDir(),
	}))
	require.NoError(t, err)

	lc.RequireStart()
	require.NoError(t, repo.SaveTheme(context.Background(), entity.Theme{IsDark: true}))
	lc.RequireStop()
}

func TestNewStateRepository_Redis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	storage := &config.StorageConfig{Provider: ProviderRedis}
	storage.Redis.Addr = mr.Addr()
	storage.Redis.Prefix = "test:"

	lc := fxtest.NewLifecycle(t)
	repo, err := NewStateRepository(params(t, lc, storage))
	require.NoError(t, err)

	lc.RequireStart()
	require.NoError(t, repo.SetOnboarded(context.Background()))
	assert.True(t, mr.Exists("test:@bezgofresh_onboarded"))
	lc.RequireStop()
}

func TestNewStateRepository_InvalidConfig(t *testing.T) {
	cases := []struct {
		name    string
		storage *config.StorageConfig
	}{
		{name: "unknown provider", storage: &config.StorageConfig{Provider: "sqlite"}},
		{name: "blob without url", storage: &config.StorageConfig{Provider: ProviderBlob}},
		{name: "redis without addr", storage: &config.StorageConfig{Provider: ProviderRedis}},
		{name: "postgres without connection", storage: &config.StorageConfig{Provider: ProviderPostgres}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewStateRepository(params(t, fxtest.NewLifecycle(t), tc.storage))
			assert.Error(t, err)
		})
	}
}
