package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"fleetflow/internal/config"
	"fleetflow/internal/http/handlers"
	"fleetflow/internal/http/middleware/ratelimit"
	"fleetflow/internal/http/router"
	"fleetflow/internal/logx"
	"fleetflow/internal/repository"
	"fleetflow/internal/service/auth"
	"fleetflow/internal/service/fleet"
	"fleetflow/internal/service/reports"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
		provideMetrics,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
	)
}

// registerDb provides the connection pool. Schema migration and demo seeding
// run once here so every consumer sees a ready database.
func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		pool, err := dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return nil, err
		}
		if err := repository.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		if err := repository.Seed(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
		return pool, nil
	}
	return provideAll(container, providerDB)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewVehicleRepo,
		repository.NewExpenseRepo,
		repository.NewUserRepo,
		repository.NewStateRepo,
		repository.NewDispatchRepo,
		func() time.Duration { return 3 * time.Second },
		newDispatchService,
		func(
			v *repository.VehicleRepo,
			e *repository.ExpenseRepo,
			st *repository.StateRepo,
			timeout time.Duration,
		) *fleet.Service {
			return fleet.NewService(v, e, st, timeout)
		},
		func(users *repository.UserRepo, timeout time.Duration) *auth.Service {
			return auth.NewService(users, timeout)
		},
		func(st *repository.StateRepo, timeout time.Duration) *reports.Service {
			return reports.NewService(st, timeout)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	routerProvider := func(
		cfg *config.Config,
		logger logx.Logger,
		rl *ratelimit.Middleware,
		base *handlers.Handlers,
		state *handlers.StateHandler,
		authH *handlers.AuthHandler,
		vehicles *handlers.VehicleHandler,
		trips *handlers.TripHandler,
		maintenances *handlers.MaintenanceHandler,
		expenses *handlers.ExpenseHandler,
		reportsH *handlers.ReportsHandler,
	) http.Handler {
		return router.New(
			router.Config{CORSOrigin: cfg.CORSOrigin},
			router.Deps{
				Logger:       logger,
				RateLimit:    rl.Handler(),
				Base:         base,
				State:        state,
				Auth:         authH,
				Vehicles:     vehicles,
				Trips:        trips,
				Maintenances: maintenances,
				Expenses:     expenses,
				Reports:      reportsH,
			},
		)
	}
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewDispatchUsecase,
		handlers.NewFleetUsecase,
		handlers.NewAuthUsecase,
		handlers.NewReportsUsecase,
		handlers.NewStateHandler,
		handlers.NewAuthHandler,
		handlers.NewVehicleHandler,
		handlers.NewTripHandler,
		handlers.NewMaintenanceHandler,
		handlers.NewExpenseHandler,
		handlers.NewReportsHandler,
		routerProvider,
		serverProvider,
	)
}
