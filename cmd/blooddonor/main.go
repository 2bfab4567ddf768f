package main

import (
	"context"
	"log/slog"
	"os"

	"blooddonor/config"
	"blooddonor/internal/delivery"
	"blooddonor/internal/delivery/http"
	"blooddonor/internal/delivery/http/middleware"
	"blooddonor/internal/delivery/http/router/handler"
	"blooddonor/internal/infra/auth"
	logs "blooddonor/internal/infra/log"
	"blooddonor/internal/infra/persistence/postgres"
	"blooddonor/internal/usecase"
	"blooddonor/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
			ensureDefaultAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDonorRepository,
			postgres.NewHospitalRepository,
			postgres.NewAdminRepository,
			postgres.NewDonationRepository,
			postgres.NewInventoryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDonorService,
			impl.NewHospitalService,
			impl.NewAdminService,
			impl.NewInventoryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDonorHandler,
			handler.NewHospitalHandler,
			handler.NewDonationHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// ensureDefaultAdmin creates the configured bootstrap admin before the
// server accepts requests.
func ensureDefaultAdmin(ctx context.Context, cfg *config.Config, adminUC usecase.AdminUsecase) error {
	if cfg.Admin == nil {
		return nil
	}

	return adminUC.EnsureDefaultAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
