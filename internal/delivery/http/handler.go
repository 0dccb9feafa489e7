package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nutriquery/backend/internal/domain"
	"go.uber.org/zap"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// maxBodyBytes bounds the analyze request body
const maxBodyBytes = 64 << 10

// Error kinds returned in the "error" field
const (
	kindBadRequest       = "bad_request"
	kindMethodNotAllowed = "method_not_allowed"
	kindNotFound         = "not_found"
	kindRateLimited      = "rate_limited"
	kindNetwork          = "network_error"
	kindUpstreamStatus   = "off_http_error"
	kindUpstreamBadJSON  = "off_bad_json"
	kindInternal         = "internal_error"
)

// User facing messages; the API speaks Spanish
const (
	msgContentType      = "Content-Type debe ser application/json"
	msgInvalidJSON      = "JSON inválido en el cuerpo"
	msgBodyTooLarge     = "Cuerpo demasiado grande"
	msgQueryRequired    = "query requerido (string no vacío)"
	msgMethodNotAllowed = "Usa POST"
	msgNotFound         = "Ruta no encontrada"
	msgRateLimited      = "Demasiadas solicitudes, inténtalo más tarde"
	msgNetwork          = "Fallo al contactar Open Food Facts"
	msgUpstreamStatus   = "Open Food Facts respondió con error"
	msgUpstreamBadJSON  = "Respuesta inválida de Open Food Facts"
	msgInternal         = "Error inesperado"
)

// Analyzer resolves free-form food queries
type Analyzer interface {
	Analyze(ctx context.Context, query string) (*domain.AnalysisResult, error)
	CatalogSize() int
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	analyzer Analyzer
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(analyzer Analyzer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{analyzer: analyzer, logger: logger.Named("http")}
}

func errorBody(kind, message string) gin.H {
	return gin.H{"error": kind, "message": message}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	size := 0
	if h.analyzer != nil {
		size = h.analyzer.CatalogSize()
	}
	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"service":      "nutriquery-backend",
		"version":      Version,
		"catalog_size": size,
	})
}

// Analyze handles POST {query} and returns per-item and total nutrition
func (h *Handler) Analyze(c *gin.Context) {
	if !strings.Contains(strings.ToLower(c.ContentType()), "application/json") {
		c.JSON(http.StatusBadRequest, errorBody(kindBadRequest, msgContentType))
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var req domain.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusBadRequest, errorBody(kindBadRequest, msgBodyTooLarge))
			return
		}
		c.JSON(http.StatusBadRequest, errorBody(kindBadRequest, msgInvalidJSON))
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		c.JSON(http.StatusBadRequest, errorBody(kindBadRequest, msgQueryRequired))
		return
	}

	if h.analyzer == nil {
		h.logger.Error("analyzer not configured")
		c.JSON(http.StatusInternalServerError, errorBody(kindInternal, msgInternal))
		return
	}

	result, err := h.analyzer.Analyze(c.Request.Context(), query)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// MethodNotAllowed answers known routes hit with the wrong method
func (h *Handler) MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, errorBody(kindMethodNotAllowed, msgMethodNotAllowed))
}

// NotFound answers unknown routes
func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, errorBody(kindNotFound, msgNotFound))
}

// respondError maps analysis failures onto the error response table
func (h *Handler) respondError(c *gin.Context, err error) {
	h.logger.Warn("analysis failed",
		zap.String("request_id", requestID(c)),
		zap.Error(err))

	var upstream *domain.UpstreamStatusError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, errorBody(kindBadRequest, msgQueryRequired))
	case errors.As(err, &upstream):
		body := errorBody(kindUpstreamStatus, msgUpstreamStatus)
		body["status"] = upstream.StatusCode
		body["detail"] = upstream.Body
		c.JSON(http.StatusBadGateway, body)
	case errors.Is(err, domain.ErrNetwork):
		body := errorBody(kindNetwork, msgNetwork)
		body["detail"] = err.Error()
		c.JSON(http.StatusBadGateway, body)
	case errors.Is(err, domain.ErrUpstreamBadJSON):
		c.JSON(http.StatusBadGateway, errorBody(kindUpstreamBadJSON, msgUpstreamBadJSON))
	default:
		c.JSON(http.StatusInternalServerError, errorBody(kindInternal, msgInternal))
	}
}
