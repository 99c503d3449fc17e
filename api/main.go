package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/pallium-care/console/assignments"
	"github.com/pallium-care/console/auth"
	"github.com/pallium-care/console/authz"
	"github.com/pallium-care/console/backend"
	"github.com/pallium-care/console/config"
	"github.com/pallium-care/console/donations"
	"github.com/pallium-care/console/equipment"
	"github.com/pallium-care/console/logger"
	"github.com/pallium-care/console/patients"
	"github.com/pallium-care/console/schedules"
	"github.com/pallium-care/console/statistics"
	"github.com/pallium-care/console/tasks"
	"github.com/pallium-care/console/vcm"
)

func Start(e *echo.Echo, cfg *config.Config, lifecycle fx.Lifecycle, logger *zap.SugaredLogger) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(cfg.ListenAddress()); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Errorw("console server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, client *backend.Client, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// The backend client is a dependency of this hook, so it is
			// configured by the time the probe reports ready.
			healthCheck.SetReady(client != nil)
			return nil
		},
	})
}

func statisticsFetcher(client *backend.Client) statistics.Fetcher {
	return client
}

// Dependencies returns the graph shared by the console server and clinicctl.
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			logger.NewProductionLogger,
			logger.Suggar,
			config.NewConfig,
			backend.NewConfig,
			backend.NewClientFromConfig,
			patients.NewRecords,
			patients.NewService,
			patients.NewInNeedRecords,
			patients.NewInNeedService,
			vcm.NewRecords,
			vcm.NewService,
			equipment.NewRecords,
			equipment.NewService,
			schedules.NewRecords,
			schedules.NewService,
			tasks.NewRecords,
			tasks.NewService,
			assignments.NewRecords,
			assignments.NewService,
			donations.NewRecords,
			donations.NewService,
			statisticsFetcher,
			statistics.NewService,
			auth.NewAuthenticator,
			authz.NewRequestAuthorizer,
			NewRenderer,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
	}
}

func MainLoop() {
	deps := append(Dependencies(),
		fx.Invoke(SetReady),
		fx.Invoke(Start),
	)
	fx.New(deps...).Run()
}
