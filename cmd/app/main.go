package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pointmotion/engage-backend/internal/activity"
	"github.com/pointmotion/engage-backend/internal/badge"
	"github.com/pointmotion/engage-backend/internal/bootstrap"
	"github.com/pointmotion/engage-backend/internal/config"
	"github.com/pointmotion/engage-backend/internal/database"
	"github.com/pointmotion/engage-backend/internal/goal"
	"github.com/pointmotion/engage-backend/internal/patient"
	"github.com/pointmotion/engage-backend/internal/scheduler"
	"github.com/pointmotion/engage-backend/internal/server"
	"github.com/pointmotion/engage-backend/internal/worker"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	patientService := patient.NewService(repos.Patient, publisher)
	badgeService := badge.NewService(repos.Badge, repos.Patient, publisher)
	goalService := goal.NewService(repos.Goal, badgeService, publisher)
	activityService := activity.NewService(repos.Activity, repos.Patient, publisher)

	// Subscribers register on the inner bus; the resilient publisher
	// delegates delivery to it.
	if err := bootstrap.RegisterEventHandlers(cfg, eventBus); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	workerPool := worker.NewPool(2, 16)
	workerPool.Start()

	sched := scheduler.New(workerPool)
	sched.Schedule(cfg.GoalSweepInterval, worker.NewGoalSweepJob(goalService))
	slog.Info("Goal expiry sweep scheduled", "interval", cfg.GoalSweepInterval)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, patientService, goalService, activityService, badgeService)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: workerPool,
	})
}
