package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"phishguard/internal/api"
	"phishguard/internal/api/handler/v1handler"
	"phishguard/internal/assessor"
	"phishguard/internal/config"
	"phishguard/internal/worker"
	"phishguard/pkg/logger"
	"phishguard/pkg/metrics"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

func setupServer(
	ctx context.Context,
	cfg *config.Config,
	a assessor.Assessor,
	mp metric.MeterProvider) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps:          v1handler.Deps{Assessor: a},
		MeterProvider: mp,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorkers(ctx context.Context, cfg *config.Config, deps *registryDeps) func(ctx context.Context) {
	if !cfg.Worker.Enabled || deps.cache == nil || deps.pg == nil {
		return func(context.Context) {}
	}

	riverClient, err := worker.Start(ctx, deps.pg.Pool, deps.cache, worker.Options{
		MaxWorkers:       cfg.Worker.MaxWorkers,
		RefreshTimeout:   cfg.Worker.RefreshTimeout,
		QueriesPerMinute: cfg.Worker.QueriesPerMinute,
		PruneInterval:    cfg.Worker.PruneInterval,
		Retention:        cfg.Registry.Cache.Retention,
	})
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}
	logger.Info(ctx, "workers started", zap.Int("maxWorkers", cfg.Worker.MaxWorkers))

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.Setup(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not setup metrics", zap.Error(err))
			}

			deps, err := buildRegistry(ctx, cfg, cfg.Worker.Enabled)
			if err != nil {
				logger.Fatal(ctx, "could not setup registration lookups", zap.Error(err))
			}
			defer deps.close()

			runtime, err := buildAssessor(ctx, cfg, deps.registry)
			if err != nil {
				logger.Fatal(ctx, "could not start assessment runtime", zap.Error(err))
			}
			if runtime.Ready() {
				logger.Info(ctx, "model loaded", zap.String("model", runtime.ModelName()))
			}

			stopWorkers := setupWorkers(ctx, cfg, deps)
			stopWebserver := setupServer(ctx, cfg, runtime, mp)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not stop meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
