package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/astraforge/astraforge/pkg/events"
	"github.com/astraforge/astraforge/pkg/models"
	"github.com/astraforge/astraforge/pkg/services"
)

// sseHeartbeatInterval is the idle interval between keepalive comments.
const sseHeartbeatInterval = 15 * time.Second

// statusPollInterval bounds how stale the terminal-status check can be for
// clients whose stream carries no terminal event (crashed worker).
const statusPollInterval = 30 * time.Second

// Stream handles GET /astra-control/sessions/:id/stream and
// GET /runs/:id/logs/stream: the per-session SSE event stream.
//
// Protocol: stream_ready handshake, status snapshot, backlog replay, then
// live delivery with keepalive comments. Terminal events close the stream.
func (s *Server) Stream(c *gin.Context) {
	runID := c.Param("id")

	status, err := s.streamStatus(c, runID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	// Subscribe before the backlog read so no event can fall between them
	channel := events.StreamChannel(runID)
	sub, err := s.hub.Subscribe(c.Request.Context(), channel)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to subscribe"})
		return
	}
	defer s.hub.Unsubscribe(sub)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)

	writeEvent := func(payload any) bool {
		data, err := json.Marshal(payload)
		if err != nil {
			s.logger.Warn("failed to marshal stream event", "run_id", runID, "error", err)
			return true
		}
		return s.writeFrame(c, flusher, data)
	}

	// Handshake and status snapshot
	handshake := map[string]any{"type": events.EventTypeHeartbeat, "message": "stream_ready", "session_id": runID}
	if !s.writeJSON(c, flusher, handshake) {
		return
	}
	snapshot := events.StatusPayload{
		Base:   events.NewBase(events.EventTypeStatus, runID),
		Entity: "run",
		Status: status,
	}
	if !writeEvent(snapshot) {
		return
	}

	// Backlog catchup from the client's last seen seq
	var sinceSeq int64
	if raw := c.GetHeader("Last-Event-ID"); raw != "" {
		sinceSeq, _ = strconv.ParseInt(raw, 10, 64)
	} else if raw := c.Query("since"); raw != "" {
		sinceSeq, _ = strconv.ParseInt(raw, 10, 64)
	}
	backlog, err := s.backlog.EventsSince(c.Request.Context(), channel, sinceSeq, 0)
	if err != nil {
		s.logger.Warn("backlog replay failed", "run_id", runID, "error", err)
	}
	for _, evt := range backlog {
		if !writeEvent(evt.Payload) {
			return
		}
		if t, ok := evt.Payload["type"].(string); ok && events.IsTerminalEventType(t) {
			return
		}
	}

	heartbeat := time.NewTicker(sseHeartbeatInterval)
	defer heartbeat.Stop()
	statusPoll := time.NewTicker(statusPollInterval)
	defer statusPoll.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return

		case raw, open := <-sub.Events():
			if !open {
				// Lagged or hub shutdown; the client reconnects with its seq
				return
			}
			if !s.writeFrame(c, flusher, raw) {
				return
			}
			var envelope struct {
				Type string `json:"type"`
			}
			if json.Unmarshal(raw, &envelope) == nil && events.IsTerminalEventType(envelope.Type) {
				return
			}

		case <-heartbeat.C:
			if _, err := fmt.Fprint(c.Writer, ": heartbeat\n\n"); err != nil {
				return
			}
			flusher.Flush()

		case <-statusPoll.C:
			current, err := s.streamStatus(c, runID)
			if err != nil {
				continue
			}
			if models.IsTerminalRunStatus(current) || models.IsTerminalSessionStatus(current) {
				writeEvent(events.StatusPayload{
					Base:   events.NewBase(events.EventTypeStatus, runID),
					Entity: "run",
					Status: current,
				})
				return
			}
		}
	}
}

// streamStatus resolves the stream subject's current status with ownership
// enforced. Sessions without a conversation stream their sandbox status.
func (s *Server) streamStatus(c *gin.Context, runID string) (string, error) {
	conv, err := s.conversations.Get(c.Request.Context(), runID)
	if err == nil {
		if conv.UserID != callerID(c) {
			return "", services.ErrForbidden
		}
		return conv.Status.String(), nil
	}
	if !errors.Is(err, services.ErrNotFound) {
		return "", err
	}

	sess, err := s.sessions.GetSession(c.Request.Context(), runID)
	if err != nil {
		return "", err
	}
	if sess.UserID != callerID(c) {
		return "", services.ErrForbidden
	}
	return sess.Status.String(), nil
}

// writeFrame emits one SSE frame. Returns false when the client is gone.
func (s *Server) writeFrame(c *gin.Context, flusher http.Flusher, data []byte) bool {
	if _, err := fmt.Fprintf(c.Writer, "event: message\ndata: %s\n\n", data); err != nil {
		return false
	}
	flusher.Flush()
	return true
}

// writeJSON marshals and emits one SSE frame.
func (s *Server) writeJSON(c *gin.Context, flusher http.Flusher, payload any) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		return true
	}
	return s.writeFrame(c, flusher, data)
}
