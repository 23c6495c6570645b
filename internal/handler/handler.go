package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"retroexchange/backend/internal/common"
	"retroexchange/backend/internal/service"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// Handler serves the exchange's HTTP endpoints.
type Handler struct {
	users *service.UserService
	games *service.GameService
	log   zerolog.Logger
}

// New creates a Handler.
func New(users *service.UserService, games *service.GameService, log zerolog.Logger) *Handler {
	return &Handler{users: users, games: games, log: log}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrConflict),
		errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with its mapped status. Unexpected errors are logged and
// hidden from the client.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := statusFor(err)

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		h.log.Error().Err(err).Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}

	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// badRequest reports a request that failed binding.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
