package api

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFrame(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	s := &Server{}

	ok := s.writeFrame(c, rec, []byte(`{"type":"status","status":"running"}`))
	require.True(t, ok)
	assert.Equal(t, "event: message\ndata: {\"type\":\"status\",\"status\":\"running\"}\n\n", rec.Body.String())
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	s := &Server{}

	ok := s.writeJSON(c, rec, map[string]any{"type": "heartbeat", "message": "stream_ready"})
	require.True(t, ok)
	assert.Contains(t, rec.Body.String(), "event: message\n")
	assert.Contains(t, rec.Body.String(), `"message":"stream_ready"`)
	assert.Contains(t, rec.Body.String(), "\n\n")
}
