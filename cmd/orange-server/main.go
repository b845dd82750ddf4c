// Package main is the entry point for the Orange Not Lemons game server.
// It only handles dependency injection and server initialization.
// NO business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/satiregames/orangenotlemons/server/internal/config"
	"github.com/satiregames/orangenotlemons/server/internal/content"
	"github.com/satiregames/orangenotlemons/server/internal/engine"
	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/infra/storage"
	"github.com/satiregames/orangenotlemons/server/internal/network"
	"github.com/satiregames/orangenotlemons/server/internal/platform/entropy"
	"github.com/satiregames/orangenotlemons/server/internal/platform/logger"
	"github.com/satiregames/orangenotlemons/server/internal/platform/metrics"
)

func main() {
	log.Println("[ORANGE-SERVER] Initializing 'Orange Not Lemons' authoritative server...")

	appLogger := logger.NewLogger()

	configPath := os.Getenv("ORANGE_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		appLogger.Error("Failed to load config: " + err.Error())
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		appLogger.Error("Invalid config: " + err.Error())
		os.Exit(1)
	}

	var (
		db        *sql.DB
		eventRepo storage.EventRepository
		scoreRepo storage.ScoreRepository
	)
	switch cfg.Database.Driver {
	case "postgres":
		appLogger.Info("Connecting to PostgreSQL...")
		db, err = sql.Open("postgres", cfg.Database.PostgresDSN)
		if err == nil {
			err = storage.InitPostgresSchema(db)
		}
		if err != nil {
			appLogger.Error("Failed to initialize PostgreSQL: " + err.Error())
			os.Exit(1)
		}
		eventRepo = storage.NewPostgresEventRepository(db)
		scoreRepo = storage.NewPostgresScoreRepository(db)
	default:
		appLogger.Info("Initializing SQLite database '" + cfg.Database.SQLitePath + "'...")
		db, err = storage.InitSQLite(cfg.Database.SQLitePath)
		if err != nil {
			appLogger.Error("Failed to initialize SQLite: " + err.Error())
			os.Exit(1)
		}
		eventRepo = storage.NewSQLiteEventRepository(db)
		scoreRepo = storage.NewSQLiteScoreRepository(db)
	}
	defer db.Close()

	appLogger.Info("Bootstrapping EventLog...")
	eventLog := events.NewEventLog(storage.NewEventPersisterAdapter(eventRepo))

	appLogger.Info("Loading content catalog...")
	catalog, err := content.Load()
	if err != nil {
		appLogger.Error("Invalid content catalog: " + err.Error())
		os.Exit(1)
	}

	appLogger.Info("Bootstrapping game session...")
	session, err := engine.NewSession(
		catalog,
		eventLog,
		appLogger,
		entropy.New(cfg.Game.Seed),
		storage.NewHighScoreAdapter(scoreRepo),
	)
	if err != nil {
		appLogger.Error("Failed to build session: " + err.Error())
		os.Exit(1)
	}
	session.StartRun()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appLogger.Info("Bootstrapping WebSocket Hub...")
	hub := network.NewHub(session, appLogger)
	go hub.Run(ctx)
	hub.StartEventPoller(ctx)

	// Scheduled database backups (SQLite only; Postgres deployments use
	// their own tooling).
	scheduler := cron.New(cron.WithSeconds())
	if cfg.Database.Driver == "sqlite" {
		_, err = scheduler.AddFunc(cfg.Database.BackupCron, func() {
			dest, err := storage.BackupSQLite(db, cfg.Database.BackupDir)
			if err != nil {
				appLogger.Error("Backup failed: " + err.Error())
				return
			}
			appLogger.Info("Database backed up to " + dest)
		})
		if err != nil {
			appLogger.Error("Invalid backup schedule: " + err.Error())
			os.Exit(1)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// API routes
	mux := http.NewServeMux()
	api := network.NewGameAPI(session, scoreRepo, storage.NewReconstructor(eventRepo), hub, appLogger)
	api.RegisterRoutes(mux)
	replay := network.NewReplayHandler(session.EventLog(), appLogger)
	replay.RegisterRoutes(mux)
	mux.HandleFunc("/ws", hub.ServeWS)
	mux.HandleFunc("/metrics", metrics.Handler())
	mux.HandleFunc("/metrics/prometheus", metrics.PrometheusHandler())

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: mux,
	}

	go func() {
		log.Printf("[ORANGE-SERVER] HTTP API & WS server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	log.Println("[ORANGE-SERVER] Server running. Press Ctrl+C to exit.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[ORANGE-SERVER] Shutting down...")
	session.Close()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Forced shutdown: " + err.Error())
	}
}
