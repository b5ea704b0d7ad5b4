package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/fifa-dashboard-service/internal/config"
	"github.com/preston-bernstein/fifa-dashboard-service/internal/logging"
	"github.com/preston-bernstein/fifa-dashboard-service/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "fifa-dashboard-service"
)

var exit = os.Exit

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	exit(run())
}

func run() int {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: appVersion,
	})

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "startup failed", err, logging.FieldSource, cfg.DataFile)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv.Run(ctx, stop)
	return 0
}
