package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/bootstrap"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/config"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/optimizer"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/server"
)

// @title PSO Quest Optimizer API
// @version 1.0
// @description Expected PD value of PSO items and quest runs, quest ranking and item hunting.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	for _, w := range warnings {
		slog.Warn(w)
	}
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info(bootstrap.LogMsgLoadingData, "data_dir", cfg.DataDir)
	svc, err := optimizer.Load(ctx, cfg.OptimizerConfig())
	if err != nil {
		slog.Error("Failed to load optimizer data", "error", err)
		os.Exit(1)
	}
	slog.Info(bootstrap.LogMsgDataLoaded)

	if err := bootstrap.RegisterCacheMetrics(prometheus.DefaultRegisterer, svc); err != nil {
		slog.Error(bootstrap.ErrMsgFailedRegisterMetrics, "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(server.Options{
		Port:                 cfg.Port,
		APIKey:               cfg.APIKey,
		TrustedProxies:       cfg.TrustedProxies,
		MaxRequestsPerWindow: cfg.RateLimit,
	}, svc)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, srv, logFile)
}
