package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"sdnscreen/internal/platform/config"
	"sdnscreen/internal/platform/httpserver"
	"sdnscreen/internal/platform/logger"
	"sdnscreen/internal/platform/metrics"
	screeningMetrics "sdnscreen/internal/screening/metrics"
	"sdnscreen/internal/screening/service"
	"sdnscreen/internal/source"
	httptransport "sdnscreen/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := metrics.NewRegistry()
	svc := service.New(source.FileOpener{Path: cfg.Source.Path}, log, screeningMetrics.New(reg))
	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(svc, log, reg))

	log.Info("starting sdnscreen", "addr", cfg.Addr, "sdn_path", cfg.Source.Path)
	if err := httpserver.Run(ctx, srv, log); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
