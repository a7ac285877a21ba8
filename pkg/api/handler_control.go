package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/astraforge/astraforge/ent"
	"github.com/astraforge/astraforge/pkg/events"
	"github.com/astraforge/astraforge/pkg/graph"
	"github.com/astraforge/astraforge/pkg/models"
	"github.com/astraforge/astraforge/pkg/services"
)

// ownedRun loads a conversation and verifies the caller owns it.
func (s *Server) ownedRun(c *gin.Context, runID string) (*ent.Conversation, bool) {
	conv, err := s.conversations.Get(c.Request.Context(), runID)
	if err != nil {
		mapServiceError(c, err)
		return nil, false
	}
	if conv.UserID != callerID(c) {
		mapServiceError(c, services.ErrForbidden)
		return nil, false
	}
	return conv, true
}

// CreateRun handles POST /astra-control/sessions/.
func (s *Server) CreateRun(c *gin.Context) {
	var req models.CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.UserID = callerID(c)

	if err := s.quotas.ConsumeRunRequest(c.Request.Context(), req.WorkspaceID); err != nil {
		mapServiceError(c, err)
		return
	}

	conv, err := s.conversations.Create(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.RunResponse{Conversation: conv})
}

// ListRuns handles GET /astra-control/sessions/.
func (s *Server) ListRuns(c *gin.Context) {
	filters := models.RunFilters{
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

	resp, err := s.conversations.List(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetRun handles GET /astra-control/sessions/:id/.
func (s *Server) GetRun(c *gin.Context) {
	conv, ok := s.ownedRun(c, c.Param("id"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.RunResponse{Conversation: conv})
}

// ResumeRun handles POST /astra-control/sessions/:id/resume. Unblocks a
// paused run's interrupt wait without a reply text.
func (s *Server) ResumeRun(c *gin.Context) {
	conv, ok := s.ownedRun(c, c.Param("id"))
	if !ok {
		return
	}
	switch conv.Status.String() {
	case models.RunStatusPaused, models.RunStatusAwaitingAck:
	default:
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("run is %s, not paused", conv.Status)})
		return
	}

	if !s.inbox.Push(conv.ID, graph.SentinelUserDone) {
		c.JSON(http.StatusConflict, gin.H{"error": "run inbox is full"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "resuming"})
}

// CancelRun handles POST /astra-control/sessions/:id/cancel.
func (s *Server) CancelRun(c *gin.Context) {
	conv, ok := s.ownedRun(c, c.Param("id"))
	if !ok {
		return
	}
	if models.IsTerminalRunStatus(conv.Status.String()) {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("run already %s", conv.Status)})
		return
	}

	if err := s.conversations.SetStatus(c.Request.Context(), conv.ID, models.RunStatusCancelled); err != nil {
		mapServiceError(c, err)
		return
	}

	// Unblock an interrupt wait and cancel the run context on this pod; a
	// driver on another pod notices via its pre-node status read.
	s.inbox.Push(conv.ID, graph.SentinelCancel)
	if s.canceller != nil {
		s.canceller.CancelRun(conv.ID)
	}
	c.JSON(http.StatusOK, gin.H{"status": models.RunStatusCancelled})
}

// SendMessage handles POST /astra-control/sessions/:id/message. A paused run
// receives the text through its interrupt inbox; a terminal run is
// re-dispatched with the message as the new goal.
func (s *Server) SendMessage(c *gin.Context) {
	conv, ok := s.ownedRun(c, c.Param("id"))
	if !ok {
		return
	}

	var req models.UserMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	payload := events.MessagePayload{
		Base:    events.NewBase(events.EventTypeUserMessage, conv.ID),
		Content: req.Content,
	}
	if err := s.publisher.Publish(c.Request.Context(), conv.ID, payload); err != nil {
		s.logger.Warn("failed to publish user message", "run_id", conv.ID, "error", err)
	}

	switch {
	case conv.Status.String() == models.RunStatusPaused || conv.Status.String() == models.RunStatusAwaitingAck:
		if !s.inbox.Push(conv.ID, req.Content) {
			c.JSON(http.StatusConflict, gin.H{"error": "run inbox is full"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "delivered"})
	case models.IsTerminalRunStatus(conv.Status.String()):
		if _, err := s.conversations.Redispatch(c.Request.Context(), conv.ID, req.Content); err != nil {
			mapServiceError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"status": "redispatched"})
	default:
		// Queued or running: the transcript event is all the driver needs
		c.JSON(http.StatusAccepted, gin.H{"status": "recorded"})
	}
}

// UploadDocument handles POST /astra-control/sessions/:id/upload_document
// (multipart). A paused run is auto-resumed with a note about the upload.
func (s *Server) UploadDocument(c *gin.Context) {
	conv, ok := s.ownedRun(c, c.Param("id"))
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file form field is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}

	doc, err := s.documents.Upload(c.Request.Context(), conv.ID, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), content)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	payload := events.DocumentPayload{
		Base:       events.NewBase(events.EventTypeDocumentUploaded, conv.ID),
		DocumentID: doc.ID,
		Filename:   doc.Filename,
		SizeBytes:  doc.SizeBytes,
	}
	if err := s.publisher.Publish(c.Request.Context(), conv.ID, payload); err != nil {
		s.logger.Warn("failed to publish document event", "run_id", conv.ID, "error", err)
	}

	if conv.Status.String() == models.RunStatusPaused {
		note := fmt.Sprintf("The user uploaded a document: %s (%d bytes). It is available in the workspace uploads directory.", doc.Filename, doc.SizeBytes)
		s.inbox.Push(conv.ID, note)
	}

	c.JSON(http.StatusCreated, models.DocumentResponse{Document: doc})
}
