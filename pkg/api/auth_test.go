package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/astraforge/astraforge/pkg/services"
)

func TestRequireAPIKey_MissingKey(t *testing.T) {
	s := &Server{apiKeys: services.NewAPIKeyService(nil)}

	router := gin.New()
	router.GET("/protected", s.requireAPIKey(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": callerID(c)})
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "unauthorized")
}

func TestCallerID_Unset(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	assert.Empty(t, callerID(c))
}
