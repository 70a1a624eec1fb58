package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/you-humble/pc-builder/internal/config"
	partrepo "github.com/you-humble/pc-builder/internal/repository/part"
	"github.com/you-humble/pc-builder/internal/transport/http/health"
	"github.com/you-humble/pc-builder/internal/transport/http/middleware"
	"github.com/you-humble/pc-builder/platform/closer"
	"github.com/you-humble/pc-builder/platform/logger"
)

type app struct {
	di     *di
	server *http.Server
	grpcLn net.Listener
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initTables,
		a.initCatalog,
		a.initServer,
		a.initGRPC,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initTables(ctx context.Context) error {
	if err := a.di.Migrator(ctx).Up(); err != nil {
		logger.Error(ctx, "failed to apply migrations", logger.ErrorF(err))
		return err
	}

	if err := a.di.PartRepository(ctx).EnsureIndexes(ctx); err != nil {
		logger.Error(ctx, "failed to ensure part indexes", logger.ErrorF(err))
		return err
	}
	return nil
}

// initCatalog seeds an empty parts collection when bootstrap is enabled and
// loads the first catalog snapshot.
func (a *app) initCatalog(ctx context.Context) error {
	repo := a.di.PartRepository(ctx)

	if config.C().Catalog.Bootstrap() {
		n, err := repo.Count(ctx)
		if err != nil {
			logger.Error(ctx, "failed to count parts", logger.ErrorF(err))
			return err
		}
		if n == 0 {
			if err := partrepo.PartsBootstrap(ctx, repo); err != nil {
				logger.Error(ctx, "failed to bootstrap catalog", logger.ErrorF(err))
				return err
			}
			logger.Info(ctx, "catalog bootstrapped from bundled documents")
		}
	}

	if err := a.di.CatalogService(ctx).Load(ctx); err != nil {
		logger.Error(ctx, "failed to load catalog", logger.ErrorF(err))
		return err
	}
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		chimw.RequestID,
		middleware.RequestID,
		chimw.Recoverer,
		chimw.Logger,
	)
	a.di.BuildHandler(ctx).Routes(r)

	r.Get("/health", health.Handler(a.di.CatalogService(ctx)))

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}

	closer.AddNamed("HTTP server", func(ctx context.Context) error {
		return a.server.Shutdown(ctx)
	})
	return nil
}

func (a *app) initGRPC(ctx context.Context) error {
	ln, err := net.Listen("tcp", config.C().GRPC.Address())
	if err != nil {
		logger.Error(ctx, "failed to listen grpc", logger.ErrorF(err))
		return fmt.Errorf("listen %s: %w", config.C().GRPC.Address(), err)
	}
	a.grpcLn = ln

	s := a.di.GRPCServer(ctx)
	closer.AddNamed("gRPC server", func(ctx context.Context) error {
		a.di.GRPCHealth(ctx).SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		s.GracefulStop()
		return nil
	})
	return nil
}

func (a *app) run(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 catalog consumer running",
			logger.Strings("kafka_brokers", config.C().Kafka.Brokers()),
		)
		err := a.di.CatalogConsumer(egCtx).RunCatalogUpdatedConsume(egCtx)
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 pc-builder http server listening",
			logger.String("address", config.C().Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 grpc health server listening",
			logger.String("address", config.C().GRPC.Address()),
		)
		return a.di.GRPCServer(egCtx).Serve(a.grpcLn)
	})

	eg.Go(func() error {
		<-egCtx.Done()
		gracefulShutdown()
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
