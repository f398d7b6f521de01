// Package persistence selects the device state backend from configuration.
package persistence

import (
	"context"
	"io"
	"log/slog"

	"bezgo/config"
	"bezgo/internal/domain/repository"
	"bezgo/internal/infra/persistence/blobstore"
	"bezgo/internal/infra/persistence/kv"
	"bezgo/internal/infra/persistence/memory"
	"bezgo/internal/infra/persistence/postgres"
	"bezgo/internal/infra/persistence/redisstore"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Storage provider names accepted in storage.provider.
const (
	ProviderMemory   = "memory"
	ProviderBlob     = "blob"
	ProviderRedis    = "redis"
	ProviderPostgres = "postgres"
)

// RepositoryParams holds dependencies for the StateRepository, injected by Fx
type RepositoryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewStateRepository opens the configured backend and wraps it in a
// StateRepository.
func NewStateRepository(params RepositoryParams) (repository.StateRepository, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	provider := ProviderMemory
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	var store kv.Store
	var closer io.Closer

	switch provider {
	case ProviderMemory:
		logger.Info("Using in-memory state storage")
		store = memory.New()

	case ProviderBlob:
		if cfg.BucketURL == "" {
			return nil, errors.New("bucket URL is required for blob provider")
		}
		logger.Info("Using blob state storage", slog.String("bucket_url", cfg.BucketURL))

		bs, err := blobstore.Open(params.Ctx, cfg.BucketURL, "")
		if err != nil {
			return nil, err
		}
		store, closer = bs, bs

	case ProviderRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}
		logger.Info("Using redis state storage",
			slog.String("addr", cfg.Redis.Addr),
			slog.Int("db", cfg.Redis.DB),
		)

		rs, err := redisstore.Dial(params.Ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Prefix)
		if err != nil {
			return nil, err
		}
		store, closer = rs, rs

	case ProviderPostgres:
		logger.Info("Using postgres state storage")

		ps, err := postgres.Open(params.Ctx, cfg.Postgres, logger, params.Config.Env.Debug)
		if err != nil {
			return nil, err
		}
		store, closer = ps, ps

	default:
		return nil, errors.Errorf("unknown storage provider: %s", provider)
	}

	if closer != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing state storage")

				return closer.Close()
			},
		})
	}

	return kv.NewStateRepository(store), nil
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStateRepository),
)
