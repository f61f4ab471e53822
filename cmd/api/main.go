package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/myezz/restaurant-api/api/routes"
	"github.com/myezz/restaurant-api/internal/datasource"
	"github.com/myezz/restaurant-api/internal/menu"
	"github.com/myezz/restaurant-api/internal/orders"
	"github.com/myezz/restaurant-api/internal/reports"
	"github.com/myezz/restaurant-api/internal/restaurants"
	"github.com/myezz/restaurant-api/pkg/config"
	"github.com/myezz/restaurant-api/pkg/db"
	"github.com/myezz/restaurant-api/pkg/instance"
	"github.com/myezz/restaurant-api/pkg/logger"
	"github.com/myezz/restaurant-api/pkg/metrics"
	"github.com/myezz/restaurant-api/pkg/migrate"
	"github.com/myezz/restaurant-api/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, err := datasource.Select(ctx, cfg, logg, datasource.Options{
		Migrate: func(ctx context.Context, store datasource.Store) error {
			client, ok := store.(*db.Client)
			if !ok {
				return nil
			}
			return migrate.MaybeRunDev(ctx, cfg, logg, client)
		},
	})
	if err != nil {
		logg.Error(ctx, "failed to select datasource", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			logg.Warn(logg.WithField(ctx, "error", err.Error()), "redis unavailable, idempotency and rate limiting disabled")
			redisClient = nil
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	reportsService, err := reports.NewService(source.Orders, reports.Options{
		Metrics:      metrics.NewReportMetrics(reg),
		QueryTimeout: cfg.Reports.QueryTimeout,
	})
	if err != nil {
		logg.Error(ctx, "failed to create reports service", err)
		os.Exit(1)
	}

	ordersService, err := orders.NewService(source.Orders, nil)
	if err != nil {
		logg.Error(ctx, "failed to create orders service", err)
		os.Exit(1)
	}

	menuService, err := menu.NewService(source.Menu)
	if err != nil {
		logg.Error(ctx, "failed to create menu service", err)
		os.Exit(1)
	}

	restaurantService, err := restaurants.NewService(source.Restaurants)
	if err != nil {
		logg.Error(ctx, "failed to create restaurant service", err)
		os.Exit(1)
	}

	router := routes.NewRouter(
		cfg,
		logg,
		source,
		redisClient,
		reg,
		metrics.NewHTTPMetrics(reg),
		reportsService,
		ordersService,
		menuService,
		restaurantService,
	)

	port := cfg.App.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	startCtx := logg.WithFields(ctx, map[string]any{
		"port":        port,
		"instance_id": instance.GetID(),
		"env":         cfg.App.Env,
		"mode":        source.Mode,
	})
	logg.Info(startCtx, "starting api server")

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	exitCode := 0
	select {
	case err := <-serveErr:
		if err != nil {
			logg.Error(startCtx, "server exited", err)
			exitCode = 1
		}
	case <-ctx.Done():
		logg.Info(startCtx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	err = multierr.Append(err, source.Close())
	if redisClient != nil {
		err = multierr.Append(err, redisClient.Close())
	}
	if err != nil {
		logg.Error(startCtx, "error during shutdown", err)
		exitCode = 1
	}
	logg.Info(startCtx, "api server stopped")

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
