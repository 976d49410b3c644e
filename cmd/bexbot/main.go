package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bexbot-lab/bexbot-console/internal/analytics"
	"github.com/bexbot-lab/bexbot-console/internal/bots"
	corecfg "github.com/bexbot-lab/bexbot-console/internal/core/config"
	"github.com/bexbot-lab/bexbot-console/internal/core/storage/postgres"
	"github.com/bexbot-lab/bexbot-console/internal/export"
	"github.com/bexbot-lab/bexbot-console/internal/ingestion"
	"github.com/bexbot-lab/bexbot-console/internal/integrations"
	"github.com/bexbot-lab/bexbot-console/internal/migrations"
	"github.com/bexbot-lab/bexbot-console/internal/server"
)

func main() {
	configPath := flag.String("config", "bexbot.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config", "config", cfg)

	displayLoc, err := cfg.Analytics.DisplayLocation()
	if err != nil {
		slog.Error("Invalid display timezone", "value", cfg.Analytics.DisplayTimezone, "error", err)
		os.Exit(1)
	}

	// 2. Initialize Storage (PostgreSQL)
	dbAdapter, err := postgres.NewAdapter(
		cfg.Database.DSN,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
	)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbAdapter.Close()

	// 2.1. Run Database Migrations
	if err := migrations.RunMigrations(dbAdapter.DB(), cfg.Database.AutoMigrate); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	// Secondary adapters share the primary connection pool.
	botStore := postgres.NewBotAdapter(dbAdapter.DB())
	historyStore := postgres.NewHistoryAdapter(dbAdapter.DB())
	integrationStore := postgres.NewIntegrationAdapter(dbAdapter.DB())

	// 3. Initialize Services
	ingestionSvc := ingestion.NewService(dbAdapter, cfg.Server.MaxBodySizeMB)
	analyticsSvc := analytics.NewService(dbAdapter, botStore, displayLoc, cfg.Analytics.DashboardWindowDays)
	exportSvc := export.NewService(analyticsSvc)
	botsSvc := bots.NewService(botStore, historyStore)
	integrationsSvc := integrations.NewService(integrationStore)

	// 4. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), dbAdapter.DB(), cfg.Server.Mode)
	ingestionSvc.RegisterRoutes(srv.Engine)
	analyticsSvc.RegisterRoutes(srv.Engine)
	exportSvc.RegisterRoutes(srv.Engine)
	botsSvc.RegisterRoutes(srv.Engine)
	integrationsSvc.RegisterRoutes(srv.Engine)

	// 5. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler → triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
