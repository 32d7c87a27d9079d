// Package serve implements the HTTP API server command.
package serve

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/Hariharasudhan07/FinanceApp/cmd/root"
	"github.com/Hariharasudhan07/FinanceApp/internal/api"
	"github.com/Hariharasudhan07/FinanceApp/internal/config"
	"github.com/Hariharasudhan07/FinanceApp/internal/container"
	"github.com/Hariharasudhan07/FinanceApp/internal/logging"
)

const shutdownGrace = 10 * time.Second

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve exposes the parser over HTTP: GET /api/ping for health checks,
POST /api/parse for single messages, and /metrics for Prometheus when enabled.`,
	Run: serveFunc,
}

func serveFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	cfg := config.GetGlobalConfig()

	c, err := container.NewContainer(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize application", logging.Field{Key: "error", Value: err})
	}

	var reg *prometheus.Registry
	var metrics *api.Metrics
	if cfg.Server.MetricsEnabled {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = api.NewMetrics(reg)
	}

	handler := api.NewHandler(c.Parser(), metrics)
	server := api.NewServer(cfg, handler, reg)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", logging.Field{Key: "addr", Value: server.Addr})
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", logging.Field{Key: "error", Value: err})
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", logging.Field{Key: "error", Value: err})
		}
	}
}
