package api

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/astraforge/astraforge/pkg/models"
	"github.com/astraforge/astraforge/pkg/services"
)

// maxRawUploadBytes caps the raw binary upload endpoint.
const maxRawUploadBytes = 50 << 20

// placeholderPNG is a 1x1 transparent PNG, served when the sandbox has no
// screenshot tooling so clients always get valid image bytes.
var placeholderPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

// ownedSession loads a session and verifies the caller owns it.
func (s *Server) ownedSession(c *gin.Context, sessionID string) (string, bool) {
	sess, err := s.sessions.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		mapServiceError(c, err)
		return "", false
	}
	if sess.UserID != callerID(c) {
		mapServiceError(c, services.ErrForbidden)
		return "", false
	}
	return sess.ID, true
}

// CreateSandbox handles POST /sandbox/sessions/.
func (s *Server) CreateSandbox(c *gin.Context) {
	var req models.CreateSandboxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.UserID = callerID(c)

	if err := s.quotas.ConsumeSandboxCreate(c.Request.Context(), req.WorkspaceID); err != nil {
		mapServiceError(c, err)
		return
	}

	sess, err := s.sessions.CreateSession(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	// Provision synchronously so the response carries the live status
	if provisioned, provErr := s.manager.Provision(c.Request.Context(), sess.ID); provErr != nil {
		s.logger.Warn("sandbox provisioning failed at create", "session_id", sess.ID, "error", provErr)
	} else {
		sess = provisioned
	}

	c.JSON(http.StatusCreated, models.SandboxResponse{SandboxSession: sess})
}

// ListSandboxes handles GET /sandbox/sessions/.
func (s *Server) ListSandboxes(c *gin.Context) {
	filters := models.SandboxFilters{
		Status:      c.Query("status"),
		WorkspaceID: c.Query("workspace_id"),
		UserID:      callerID(c),
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filters.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil {
		filters.Offset = offset
	}

	resp, err := s.sessions.ListSessions(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSandbox handles GET /sandbox/sessions/:id/.
func (s *Server) GetSandbox(c *gin.Context) {
	sessionID := c.Param("id")
	if _, ok := s.ownedSession(c, sessionID); !ok {
		return
	}
	sess, err := s.sessions.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SandboxResponse{SandboxSession: sess})
}

// TerminateSandbox handles DELETE /sandbox/sessions/:id/.
func (s *Server) TerminateSandbox(c *gin.Context) {
	sessionID := c.Param("id")
	if _, ok := s.ownedSession(c, sessionID); !ok {
		return
	}
	if err := s.manager.Terminate(c.Request.Context(), sessionID, "user_request"); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExecCommand handles POST /sandbox/sessions/:id/shell/ (alias /exec/).
func (s *Server) ExecCommand(c *gin.Context) {
	sessionID := c.Param("id")
	if _, ok := s.ownedSession(c, sessionID); !ok {
		return
	}

	var req models.ExecRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Command == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "command is required"})
		return
	}

	result, err := s.manager.Execute(c.Request.Context(), sessionID, req.Command, req.Cwd, req.TimeoutSec, nil)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ExecResponse{
		ExitCode:    result.ExitCode,
		Stdout:      result.Output,
		Stderr:      "",
		Truncated:   result.Truncated,
		DurationSec: result.Duration.Seconds(),
	})
}

// UploadFile handles POST /sandbox/sessions/:id/upload/ (base64 body).
func (s *Server) UploadFile(c *gin.Context) {
	sessionID := c.Param("id")
	if _, ok := s.ownedSession(c, sessionID); !ok {
		return
	}

	var req models.UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
		return
	}
	content, err := base64.StdEncoding.DecodeString(req.ContentBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content_base64 is not valid base64"})
		return
	}

	if err := s.manager.Upload(c.Request.Context(), sessionID, req.Path, content); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": req.Path, "size_bytes": len(content)})
}

// UploadFileRaw handles POST /sandbox/sessions/:id/files/upload (raw body,
// target path in the "path" query parameter).
func (s *Server) UploadFileRaw(c *gin.Context) {
	sessionID := c.Param("id")
	if _, ok := s.ownedSession(c, sessionID); !ok {
		return
	}

	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path query parameter is required"})
		return
	}

	content, err := io.ReadAll(io.LimitReader(c.Request.Body, maxRawUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}
	if len(content) > maxRawUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("upload exceeds %d bytes", maxRawUploadBytes)})
		return
	}

	if err := s.manager.Upload(c.Request.Context(), sessionID, path, content); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path, "size_bytes": len(content)})
}

// FileContent handles GET /sandbox/sessions/:id/files/content?path=...
func (s *Server) FileContent(c *gin.Context) {
	sessionID := c.Param("id")
	if _, ok := s.ownedSession(c, sessionID); !ok {
		return
	}

	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path query parameter is required"})
		return
	}

	var maxBytes int64
	if raw := c.Query("max_bytes"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			maxBytes = n
		}
	}

	content, truncated, err := s.manager.ReadFile(c.Request.Context(), sessionID, path, maxBytes)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if truncated {
		c.Header("X-Content-Truncated", "true")
	}
	c.Data(http.StatusOK, "application/octet-stream", content)
}

// ExportFile handles POST /sandbox/sessions/:id/files/export.
func (s *Server) ExportFile(c *gin.Context) {
	sessionID := c.Param("id")
	if _, ok := s.ownedSession(c, sessionID); !ok {
		return
	}

	var req struct {
		Path        string `json:"path"`
		Filename    string `json:"filename,omitempty"`
		ContentType string `json:"content_type,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
		return
	}

	artifact, err := s.manager.ExportFile(c.Request.Context(), sessionID, req.Path, req.Filename, req.ContentType)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, artifact)
}

// CreateSnapshot handles POST /sandbox/sessions/:id/snapshot(s).
func (s *Server) CreateSnapshot(c *gin.Context) {
	sessionID := c.Param("id")
	if _, ok := s.ownedSession(c, sessionID); !ok {
		return
	}

	var req struct {
		Label        string   `json:"label,omitempty"`
		IncludePaths []string `json:"include_paths,omitempty"`
		ExcludePaths []string `json:"exclude_paths,omitempty"`
	}
	// Empty bodies are fine; all fields are optional
	_ = c.ShouldBindJSON(&req)

	sess, err := s.sessions.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	snap, err := s.manager.Snapshots().Create(c.Request.Context(), sess, req.IncludePaths, req.ExcludePaths, req.Label)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// ListSnapshots handles GET /sandbox/sessions/:id/snapshots.
func (s *Server) ListSnapshots(c *gin.Context) {
	sessionID := c.Param("id")
	if _, ok := s.ownedSession(c, sessionID); !ok {
		return
	}
	snaps, err := s.manager.Snapshots().List(c.Request.Context(), sessionID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshots": snaps})
}

// ListArtifacts handles GET /sandbox/sessions/:id/artifacts.
func (s *Server) ListArtifacts(c *gin.Context) {
	sessionID := c.Param("id")
	if _, ok := s.ownedSession(c, sessionID); !ok {
		return
	}
	artifacts, err := s.sessions.ListArtifacts(c.Request.Context(), sessionID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"artifacts": artifacts})
}

// DownloadArtifact handles GET /sandbox/sessions/:id/artifacts/:artifact_id.
func (s *Server) DownloadArtifact(c *gin.Context) {
	sessionID := c.Param("id")
	if _, ok := s.ownedSession(c, sessionID); !ok {
		return
	}
	artifact, err := s.sessions.GetArtifact(c.Request.Context(), sessionID, c.Param("artifact_id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	content, err := os.ReadFile(artifact.StoragePath)
	if err != nil {
		s.logger.Error("artifact file missing", "artifact_id", artifact.ID, "path", artifact.StoragePath, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "artifact content not found"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, content)
}

// SandboxHeartbeat handles POST /sandbox/sessions/:id/heartbeat.
func (s *Server) SandboxHeartbeat(c *gin.Context) {
	sessionID := c.Param("id")
	if _, ok := s.ownedSession(c, sessionID); !ok {
		return
	}
	if err := s.manager.Heartbeat(c.Request.Context(), sessionID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Screenshot handles GET /sandbox/sessions/:id/screenshot. Capture failures
// degrade to a 1x1 placeholder so image consumers never break.
func (s *Server) Screenshot(c *gin.Context) {
	sessionID := c.Param("id")
	if _, ok := s.ownedSession(c, sessionID); !ok {
		return
	}
	png, err := s.manager.CaptureScreenshot(c.Request.Context(), sessionID)
	if err != nil {
		s.logger.Warn("screenshot capture failed, serving placeholder", "session_id", sessionID, "error", err)
		png = placeholderPNG
	}
	c.Data(http.StatusOK, "image/png", png)
}
