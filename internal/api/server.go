package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Hariharasudhan07/FinanceApp/internal/config"
)

// SetupRoutes configures the API routes on the given engine. The metrics
// registry is only mounted when reg is non-nil.
func SetupRoutes(router *gin.Engine, handler *Handler, reg *prometheus.Registry) {
	api := router.Group("/api")
	{
		api.GET("/ping", handler.Ping)
		api.POST("/parse", handler.Parse)
	}

	if reg != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}
}

// NewServer builds the HTTP server from configuration. Gin runs in release
// mode unless debug logging is configured.
func NewServer(cfg *config.Config, handler *Handler, reg *prometheus.Registry) *http.Server {
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	SetupRoutes(router, handler, reg)

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}
}
