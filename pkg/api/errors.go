package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astraforge/astraforge/pkg/sandbox"
	"github.com/astraforge/astraforge/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}
	var quotaErr *services.QuotaExceededError
	if errors.As(err, &quotaErr) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":   quotaErr.Error(),
			"limit":   quotaErr.Limit,
			"current": quotaErr.Current,
			"max":     quotaErr.Max,
		})
		return
	}
	var notReady *sandbox.NotReadyError
	if errors.As(err, &notReady) {
		c.JSON(http.StatusConflict, gin.H{"error": notReady.Error()})
		return
	}
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, sandbox.ErrSessionNotFound),
		errors.Is(err, sandbox.ErrSnapshotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		// Unexpected error
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
