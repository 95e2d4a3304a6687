package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"store-status-service/internal/config"
	"store-status-service/internal/logging"
	"store-status-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, stop, ".env"); err != nil {
		stop()
		os.Exit(1)
	}
}

// run loads .env and configuration, then serves until ctx is cancelled.
func run(ctx context.Context, stop context.CancelFunc, envFile string) error {
	// A missing .env is normal outside local development.
	envErr := godotenv.Load(envFile)

	cfg := config.Load()
	logger := newLogger(cfg)
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Warn("failed to load .env", "err", envErr)
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return err
	}
	srv.Run(ctx, stop)
	return nil
}

func newLogger(cfg config.Config) *slog.Logger {
	version := cfg.Logging.Version
	if version == "" {
		version = appVersion
	}
	return logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: cfg.Metrics.ServiceName,
		Version: version,
	})
}
