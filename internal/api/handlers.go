// Package api exposes the parser over HTTP: a health endpoint, a parse
// endpoint mirroring the CLI semantics, and Prometheus metrics.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Hariharasudhan07/FinanceApp/internal/logging"
	"github.com/Hariharasudhan07/FinanceApp/internal/models"
	"github.com/Hariharasudhan07/FinanceApp/internal/parser"
	"github.com/Hariharasudhan07/FinanceApp/internal/parsererror"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Handler handles HTTP requests for the parse API.
type Handler struct {
	parser  *parser.Parser
	metrics *Metrics
}

// NewHandler creates a new API handler. Metrics may be nil when the metrics
// endpoint is disabled.
func NewHandler(p *parser.Parser, metrics *Metrics) *Handler {
	return &Handler{parser: p, metrics: metrics}
}

// ParseRequest is the body of POST /api/parse. Timestamp anchors relative
// dates in the message and defaults to the current time.
type ParseRequest struct {
	Message   string `json:"message" binding:"required"`
	Timestamp string `json:"timestamp"`
}

// ParseResponse wraps a parsed record or an error message.
type ParseResponse struct {
	Success bool                      `json:"success"`
	Data    *models.TransactionRecord `json:"data,omitempty"`
	Error   string                    `json:"error,omitempty"`
}

// Ping reports that the server is up.
func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Server is running"})
}

// Parse classifies and extracts one SMS message.
func (h *Handler) Parse(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.countFailure("bad_request")
		c.JSON(http.StatusBadRequest, ParseResponse{Success: false, Error: err.Error()})
		return
	}

	var reference time.Time
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			h.countFailure("bad_timestamp")
			c.JSON(http.StatusBadRequest, ParseResponse{Success: false, Error: "timestamp must be RFC3339"})
			return
		}
		reference = parsed
	}

	start := time.Now()
	record, err := h.parser.Parse(req.Message, reference)
	if h.metrics != nil {
		h.metrics.ParseDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		var inputErr *parsererror.InputError
		if errors.As(err, &inputErr) {
			h.countFailure("input")
			c.JSON(http.StatusBadRequest, ParseResponse{Success: false, Error: inputErr.Error()})
			return
		}
		h.countFailure("processing")
		log.WithError(err).Error("parse request failed")
		c.JSON(http.StatusInternalServerError, ParseResponse{Success: false, Error: "Internal server error"})
		return
	}

	if h.metrics != nil {
		h.metrics.MessagesParsed.WithLabelValues(record.Category).Inc()
	}
	log.WithFields(logrus.Fields{
		logging.FieldCategory:   record.Category,
		logging.FieldConfidence: record.Confidence,
	}).Debug("parse request served")

	c.JSON(http.StatusOK, ParseResponse{Success: true, Data: record})
}

func (h *Handler) countFailure(reason string) {
	if h.metrics != nil {
		h.metrics.ParseFailures.WithLabelValues(reason).Inc()
	}
}
