// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-sim/internal/config"
	"github.com/yourusername/prop-sim/internal/logger"
	"github.com/yourusername/prop-sim/internal/metrics"
	"github.com/yourusername/prop-sim/internal/profile"
	"github.com/yourusername/prop-sim/internal/server"
	"github.com/yourusername/prop-sim/internal/simulation"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLog := logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
	}).Info("Prop simulation server starting")

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	simConfig, err := simulation.FromConfig(cfg)
	if err != nil {
		appLog.WithError(err).Fatal("Invalid simulation config")
	}
	engine, err := simulation.NewEngine(simConfig, appLog)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to create engine")
	}

	store, err := profile.NewStore(ctx, cfg, appLog)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to open profile store")
	}

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}

	srv := server.NewServer(server.Config{
		ServiceName: cfg.App.Name,
		Port:        cfg.Server.Port,
		Engine:      engine,
		Store:       store,
		Defaults:    cfg.Defaults.Inputs(),
		Logger:      appLog,
		MetricsPath: metricsPath,
	})

	if err := srv.Start(ctx); err != nil {
		appLog.WithError(err).Fatal("Failed to start server")
	}

	<-ctx.Done()
	appLog.Info("Shutdown signal received")

	if err := srv.Shutdown(); err != nil {
		appLog.WithError(err).Error("Server shutdown error")
	}
}
