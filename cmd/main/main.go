package main

import (
	"context"
	"os/signal"
	"syscall"

	"fabricshop/bot/internal/config"
	"fabricshop/bot/internal/container"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.Info("Starting fabric shop bot...")

	// Load configuration using viper
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Info("Configuration loaded successfully")

	// Initialize container with all dependencies
	app, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Run the application
	if err := app.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("Application exited with error: %v", err)
	}

	log.Info("Application finished successfully")
}
