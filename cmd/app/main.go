package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MyteScripts/investbot/internal/config"
	"github.com/MyteScripts/investbot/internal/database"
	"github.com/MyteScripts/investbot/internal/database/postgres"
	"github.com/MyteScripts/investbot/internal/event"
	"github.com/MyteScripts/investbot/internal/handler"
	"github.com/MyteScripts/investbot/internal/metrics"
	"github.com/MyteScripts/investbot/internal/scheduler"
	"github.com/MyteScripts/investbot/internal/server"
	"github.com/MyteScripts/investbot/internal/user"
	"github.com/MyteScripts/investbot/internal/venture"
	"github.com/MyteScripts/investbot/internal/wallet"
	"github.com/MyteScripts/investbot/internal/worker"
)

// Connection pool and worker sizing
const (
	dbMaxConnections = 10
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute

	workerCount     = 4
	workerQueueSize = 16

	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	initLogger(cfg)
	handler.InitValidator()

	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		return err
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConnections, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	walletRepo := postgres.NewWalletRepository(dbPool)
	ventureRepo := postgres.NewVentureRepository(dbPool)

	// Event bus with metrics subscription
	eventBus := event.NewMemoryBus()
	if err := metrics.NewEventMetricsCollector().Register(eventBus); err != nil {
		return err
	}

	// Services
	userService := user.NewService(userRepo, walletRepo)
	walletService := wallet.NewService(walletRepo, userRepo)
	ventureService := venture.NewService(ventureRepo, userRepo, eventBus)

	// Background sweep: a worker pool drains scheduled jobs so a slow
	// sweep never blocks the scheduler tick
	pool := worker.NewPool(workerCount, workerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.SweepInterval, worker.NewSweepJob(ventureService))
	slog.Info("Sweep scheduled", "interval", cfg.SweepInterval)

	srv := server.NewServer(cfg.Port, cfg.APIKey, dbPool, userService, walletService, ventureService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for a termination signal or a server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Stop accepting requests first, then drain background work
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	sched.Stop()
	pool.Stop()

	slog.Info("Shutdown complete")
	return nil
}
