// AstraForge orchestrator server. Hosts the sandbox/run HTTP API, the queue
// workers that drive agent graphs, the reaper, and the event streaming
// infrastructure.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/astraforge/astraforge/pkg/api"
	"github.com/astraforge/astraforge/pkg/config"
	"github.com/astraforge/astraforge/pkg/database"
	"github.com/astraforge/astraforge/pkg/events"
	"github.com/astraforge/astraforge/pkg/graph"
	"github.com/astraforge/astraforge/pkg/llm"
	"github.com/astraforge/astraforge/pkg/queue"
	"github.com/astraforge/astraforge/pkg/runner"
	"github.com/astraforge/astraforge/pkg/runtime"
	"github.com/astraforge/astraforge/pkg/sandbox"
	"github.com/astraforge/astraforge/pkg/services"
	"github.com/astraforge/astraforge/pkg/version"
)

// clusterReadyTimeout bounds how long a cluster pod may take to reach Running
// during provisioning.
const clusterReadyTimeout = 2 * time.Minute

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting AstraForge",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup: runs this pod claimed before a
	// previous crash are failed so they can be re-dispatched.
	if err := queue.CleanupStartupOrphans(ctx, dbClient, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal, continue
	}

	// 4. Event infrastructure. The hub fans events out to local SSE
	// subscribers; the backend decides how events cross process boundaries.
	hub := events.NewHub()
	defer hub.Close()

	var (
		publisher events.Publisher
		backlog   events.Backlog
		pruner    sandbox.EventPruner
	)
	switch busBackend := getEnv("EVENTS_BUS", "postgres"); busBackend {
	case "postgres":
		publisher = events.NewPostgresPublisher(dbClient.DB())
		backlog = services.NewEventService(dbClient.DB())

		notifyListener := events.NewNotifyListener(dbConfig.DSN(), hub)
		if err := notifyListener.Start(ctx); err != nil {
			slog.Error("Failed to start NotifyListener", "error", err)
			os.Exit(1)
		}
		defer notifyListener.Stop(ctx)
		hub.SetListener(notifyListener)
		slog.Info("Event bus initialized", "backend", "postgres")
	case "memory":
		bus := events.NewMemoryBus(hub, cfg.Events.BacklogSize, cfg.Events.TopicTTL)
		publisher = bus
		backlog = bus
		pruner = bus
		slog.Info("Event bus initialized", "backend", "memory",
			"backlog_size", cfg.Events.BacklogSize, "topic_ttl", cfg.Events.TopicTTL)
	default:
		slog.Error("Unknown EVENTS_BUS backend", "backend", busBackend)
		os.Exit(1)
	}

	// 5. Sandbox runtime: command runner, per-backend adapters, snapshot
	// store (with optional S3 offload), lifecycle manager.
	cmdRunner := runner.New(cfg.Sandbox.ExecuteCommands, slog.Default())
	if !cmdRunner.Executing() {
		slog.Warn("Command runner in dry-run mode, set ASTRAFORGE_EXECUTE_COMMANDS=true for real sandboxes")
	}
	adapters := map[string]runtime.Adapter{
		string(config.BackendLocal): runtime.NewDockerAdapter(cmdRunner, slog.Default()),
		string(config.BackendCluster): runtime.NewKubernetesAdapter(
			cmdRunner, cfg.Sandbox.ClusterNamespace, clusterReadyTimeout, slog.Default()),
	}

	var objects *sandbox.ObjectStore
	if cfg.ObjectStore.Enabled() {
		objects, err = sandbox.NewObjectStore(ctx, cfg.ObjectStore)
		if err != nil {
			slog.Error("Failed to initialize object store", "error", err)
			os.Exit(1)
		}
		slog.Info("Snapshot offload enabled", "bucket", cfg.ObjectStore.Bucket)
	}

	snapshots := sandbox.NewSnapshotStore(dbClient, adapters, objects, slog.Default())
	manager := sandbox.NewManager(dbClient, adapters, publisher, snapshots, cfg.Sandbox, slog.Default())

	// 6. Domain services
	sessionService := services.NewSessionService(dbClient, cfg.Sandbox)
	conversationService := services.NewConversationService(dbClient, cfg.Sandbox, slog.Default())
	quotaService := services.NewQuotaService(dbClient, cfg.Quota, conversationService, sessionService)
	documentService := services.NewDocumentService(dbClient, cfg.Quota, manager, cfg.Sandbox.WorkspacePath)
	apiKeyService := services.NewAPIKeyService(dbClient)
	slog.Info("Services initialized")

	// 7. LLM client and graph plumbing
	llmClient, err := llm.NewAnthropicClient(cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	inbox := graph.NewInbox()
	checkpointer := graph.NewEntCheckpointer(dbClient)

	// 8. Worker pool (before the HTTP server, so queued runs resume first)
	executor := queue.NewGraphExecutor(
		manager, conversationService, checkpointer, inbox,
		publisher, llmClient, cfg.ComputerUse, slog.Default())
	workerPool := queue.NewWorkerPool(podID, dbClient, cfg.Queue, executor, publisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Reaper
	reaper := sandbox.NewReaper(cfg.Reaper, dbClient, manager, pruner)
	reaper.Start(ctx)

	// 10. HTTP server
	if getEnv("GIN_MODE", "") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	server := api.NewServer(
		dbClient, sessionService, conversationService, documentService,
		quotaService, apiKeyService, manager, publisher, backlog, hub,
		inbox, workerPool, slog.Default())
	server.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("AstraForge started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: reaper first, then drain the worker pool, then
	// the HTTP server with its own budget.
	reaper.Stop()

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete runs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
