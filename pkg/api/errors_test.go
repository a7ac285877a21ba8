package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/astraforge/astraforge/pkg/sandbox"
	"github.com/astraforge/astraforge/pkg/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation", services.NewValidationError("goal", "required"), http.StatusBadRequest},
		{"quota", &services.QuotaExceededError{Limit: "requests_per_month", Current: 500, Max: 500}, http.StatusTooManyRequests},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"session not found", sandbox.ErrSessionNotFound, http.StatusNotFound},
		{"snapshot not found", sandbox.ErrSnapshotNotFound, http.StatusNotFound},
		{"not ready", &sandbox.NotReadyError{SessionID: "s1", Status: "terminated"}, http.StatusConflict},
		{"invalid transition", services.ErrInvalidTransition, http.StatusConflict},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"unauthorized", services.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", services.ErrForbidden, http.StatusForbidden},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			mapServiceError(c, tt.err)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestMapServiceError_WrappedErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	wrapped := errors.Join(errors.New("outer"), services.ErrNotFound)
	mapServiceError(c, wrapped)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlaceholderPNGSignature(t *testing.T) {
	// Fallback screenshot bytes must be a valid PNG header
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, placeholderPNG[:8])
}
