package main

import (
	"context"
	"log/slog"
	"os"

	"authgate/config"
	"authgate/internal/auth"
	"authgate/internal/delivery"
	"authgate/internal/delivery/http"
	"authgate/internal/delivery/http/middleware"
	"authgate/internal/delivery/http/router/handler"
	deliverymiddleware "authgate/internal/delivery/middleware"
	"authgate/internal/domain/repository"
	infraauth "authgate/internal/infra/auth"
	logs "authgate/internal/infra/log"
	"authgate/internal/infra/persistence/memory"
	"authgate/internal/infra/persistence/postgres"
	"authgate/internal/usecase/impl"

	"github.com/thejerf/abtime"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type repositories struct {
	fx.Out

	Users    repository.UserRepository
	Sessions repository.SessionRepository
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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newClock,
	)
}

func newClock() abtime.AbstractTime {
	return abtime.NewRealTime()
}

func injectRepo() fx.Option {
	return fx.Provide(newRepositories)
}

// newRepositories picks the storage named by persistence.driver. The
// postgres connection is only opened when it is selected.
func newRepositories(params postgres.Params) (repositories, error) {
	if params.Config.Persistence.Driver != config.DriverPostgres {
		return repositories{
			Users:    memory.NewUserRepository(),
			Sessions: memory.NewSessionRepository(),
		}, nil
	}

	db, err := postgres.New(params)
	if err != nil {
		return repositories{}, err
	}

	return repositories{
		Users:    postgres.NewUserRepository(db),
		Sessions: postgres.NewSessionRepository(db),
	}, nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			infraauth.NewBcryptHasher,
			infraauth.NewResetTokenGenerator,
			auth.NewSessionManager,
			auth.NewStrategy,
			auth.NewGate,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewStatusHandler,
			handler.NewUserHandler,
			handler.NewSessionHandler,
			handler.NewPasswordHandler,
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
