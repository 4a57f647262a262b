package main

import (
	"context"
	"log/slog"
	"os"

	"activator/config"
	"activator/internal/delivery"
	"activator/internal/delivery/api"
	"activator/internal/delivery/api/middleware"
	"activator/internal/delivery/api/router/handler"
	"activator/internal/domain/service"
	"activator/internal/infra/auth"
	"activator/internal/infra/keygen"
	logs "activator/internal/infra/log"
	"activator/internal/infra/metrics"
	"activator/internal/infra/persistence/postgres"
	"activator/internal/infra/pubsub"
	"activator/internal/infra/qrcode"
	"activator/internal/usecase/impl"
	"activator/internal/util"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
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
			postgres.New,
		),
		metrics.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewAdminRepository,
			postgres.NewDeviceRepository,
			postgres.NewDeviceEventRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			keygen.NewGenerator,
			qrcode.NewQRCodeService,
			newClock,
		),
	)
}

// newClock reads license dates in the configured time zone.
func newClock(cfg *config.Config) (service.Clock, error) {
	loc, err := util.LoadLocation(cfg.License.Timezone)
	if err != nil {
		return nil, err
	}

	return service.NewSystemClock(loc), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAdminService,
			impl.NewDeviceService,
			impl.NewActivationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAdminHandler,
			handler.NewDeviceHandler,
			handler.NewActivationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
