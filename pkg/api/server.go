// Package api provides the HTTP surface: sandbox session REST, agent run
// control, and the SSE event stream.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astraforge/astraforge/pkg/database"
	"github.com/astraforge/astraforge/pkg/events"
	"github.com/astraforge/astraforge/pkg/graph"
	"github.com/astraforge/astraforge/pkg/sandbox"
	"github.com/astraforge/astraforge/pkg/services"
	"github.com/astraforge/astraforge/pkg/version"
)

// RunCanceller cancels an in-flight run on this pod. Implemented by the
// worker pool; nil disables local cancellation (multi-replica setups rely on
// the status poll in the driver).
type RunCanceller interface {
	CancelRun(runID string) bool
}

// Server wires the HTTP handlers to the service layer.
type Server struct {
	db            *database.Client
	sessions      *services.SessionService
	conversations *services.ConversationService
	documents     *services.DocumentService
	quotas        *services.QuotaService
	apiKeys       *services.APIKeyService
	manager       *sandbox.Manager
	publisher     events.Publisher
	backlog       events.Backlog
	hub           *events.Hub
	inbox         *graph.Inbox
	canceller     RunCanceller
	logger        *slog.Logger
}

// NewServer creates a new API server. canceller may be nil.
func NewServer(
	db *database.Client,
	sessions *services.SessionService,
	conversations *services.ConversationService,
	documents *services.DocumentService,
	quotas *services.QuotaService,
	apiKeys *services.APIKeyService,
	manager *sandbox.Manager,
	publisher events.Publisher,
	backlog events.Backlog,
	hub *events.Hub,
	inbox *graph.Inbox,
	canceller RunCanceller,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		db:            db,
		sessions:      sessions,
		conversations: conversations,
		documents:     documents,
		quotas:        quotas,
		apiKeys:       apiKeys,
		manager:       manager,
		publisher:     publisher,
		backlog:       backlog,
		hub:           hub,
		inbox:         inbox,
		canceller:     canceller,
		logger:        logger.With("component", "api"),
	}
}

// RegisterRoutes attaches all handlers to the router.
func (s *Server) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", s.Health)

	v1 := router.Group("/api/v1", s.requireAPIKey())

	sb := v1.Group("/sandbox/sessions")
	sb.POST("/", s.CreateSandbox)
	sb.GET("/", s.ListSandboxes)
	sb.GET("/:id/", s.GetSandbox)
	sb.DELETE("/:id/", s.TerminateSandbox)
	sb.POST("/:id/shell/", s.ExecCommand)
	sb.POST("/:id/exec/", s.ExecCommand)
	sb.POST("/:id/upload/", s.UploadFile)
	sb.POST("/:id/files/upload", s.UploadFileRaw)
	sb.GET("/:id/files/content", s.FileContent)
	sb.POST("/:id/files/export", s.ExportFile)
	sb.POST("/:id/snapshot", s.CreateSnapshot)
	sb.POST("/:id/snapshots", s.CreateSnapshot)
	sb.GET("/:id/snapshots", s.ListSnapshots)
	sb.GET("/:id/artifacts", s.ListArtifacts)
	sb.GET("/:id/artifacts/:artifact_id", s.DownloadArtifact)
	sb.POST("/:id/heartbeat", s.SandboxHeartbeat)
	sb.GET("/:id/screenshot", s.Screenshot)

	ctl := v1.Group("/astra-control/sessions")
	ctl.POST("/", s.CreateRun)
	ctl.GET("/", s.ListRuns)
	ctl.GET("/:id/", s.GetRun)
	ctl.POST("/:id/resume", s.ResumeRun)
	ctl.POST("/:id/cancel", s.CancelRun)
	ctl.POST("/:id/message", s.SendMessage)
	ctl.POST("/:id/upload_document", s.UploadDocument)
	ctl.GET("/:id/stream", s.Stream)

	v1.GET("/runs/:id/logs/stream", s.Stream)
}

// Health handles GET /health.
func (s *Server) Health(c *gin.Context) {
	if err := s.db.DB().PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": version.Full()})
}
