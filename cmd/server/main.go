package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/advisorkit/advisor/internal/advisor"
	"github.com/advisorkit/advisor/internal/api"
	"github.com/advisorkit/advisor/internal/config"
	"github.com/advisorkit/advisor/internal/logging"
	"github.com/advisorkit/advisor/internal/metrics"
	"github.com/advisorkit/advisor/internal/server"
	"github.com/joho/godotenv"
	"log/slog"
)

func main() {
	// Best effort: a missing .env file is fine in deployed environments
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).Error("failed to init logger", "error", err)
		os.Exit(1)
	}

	logger.Info("starting investment allocation service")

	// Missing credentials are recorded, not fatal: the service starts and
	// every allocation request fails fast instead.
	var completions advisor.CompletionClient
	client, initErr := advisor.NewOpenAIClient(cfg.Completion, logger)
	if initErr != nil {
		logger.Error("completion client unavailable, allocation requests will fail", "error", initErr)
	} else {
		completions = client
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	collector, err := metrics.NewHTTPCollector()
	if err != nil {
		logger.Error("failed to init metrics", "error", err)
		os.Exit(1)
	}
	mux.Handle("/metrics", collector.Handler())

	api.SetupRoutes(mux, completions, initErr, logger)

	handler := server.StaticMiddleware(collector.InstrumentHandler(mux), "./static", "./static/index.html")
	handler = server.RequestLogger(handler, logger)

	srv := server.New(cfg.Server, logger, handler)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	logger.Info("investment allocation service started", "port", cfg.Server.Port)

	waitForSignal(logger)

	logger.Info("shutting down")
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("shutdown complete")
}

func waitForSignal(logger *slog.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	sig := <-c
	logger.Info("received signal", "signal", sig.String())
	signal.Stop(c)
	close(c)
}
