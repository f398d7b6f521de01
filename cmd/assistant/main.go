package main

import (
	"context"
	"log/slog"
	"os"

	"bezgo/config"
	"bezgo/internal/delivery"
	"bezgo/internal/delivery/console"
	"bezgo/internal/domain/repository"
	"bezgo/internal/domain/service"
	"bezgo/internal/infra/catalog"
	logs "bezgo/internal/infra/log"
	"bezgo/internal/infra/persistence"
	"bezgo/internal/infra/pubsub"
	"bezgo/internal/infra/qrcode"
	"bezgo/internal/infra/random"
	"bezgo/internal/infra/scheduler"
	"bezgo/internal/store"
	"bezgo/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.NopLogger,
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			func(*store.Persister) {},
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			store.New,
			newPersister,
		),
		persistence.Module,
		pubsub.Module,
	)
}

// newPersister saves cart, orders and profile changes until the app stops.
func newPersister(lc fx.Lifecycle, s *store.Store, repo repository.StateRepository, logger *slog.Logger) *store.Persister {
	p := store.NewPersister(s, repo, logger)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			p.Close()

			return nil
		},
	})

	return p
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			catalog.NewCatalogService,
			scheduler.NewWithLifecycle,
			random.NewDeciderFromConfig,
			newQRCodeService,
			console.NewNavigator,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.Payment == nil || cfg.Payment.QRSize == 0 {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.Payment.QRSize, cfg.Payment.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewSessionService,
			impl.NewLifecycleService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			func() *console.Output { return console.NewOutput(os.Stdout) },
			fx.Annotate(
				console.NewConsole,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start console", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
