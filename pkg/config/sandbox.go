package config

import "time"

// Backend identifies a sandbox runtime backend.
type Backend string

// Supported sandbox backends.
const (
	BackendLocal   Backend = "local"
	BackendCluster Backend = "cluster"
)

// SandboxConfig controls sandbox provisioning and lifecycle defaults.
type SandboxConfig struct {
	// Image is the container image used for new sandboxes.
	Image string

	// DefaultBackend is used when a create request does not name one.
	DefaultBackend Backend

	// WorkspacePath is the absolute workspace path inside the sandbox.
	WorkspacePath string

	// ExecuteCommands gates real runtime calls. When false (the default in
	// development), the command runner operates in dry-run mode and never
	// touches the host.
	ExecuteCommands bool

	// Docker backend knobs.
	DockerNetwork   string
	DockerUser      string
	DockerReadOnly  bool
	DockerPidsLimit int
	DockerCPULimit  string
	DockerMemLimit  string

	// Cluster backend knobs.
	ClusterNamespace string
	ClusterRunAsUser int

	// Lifecycle defaults applied when a create request omits them.
	DefaultIdleTimeout time.Duration
	DefaultMaxLifetime time.Duration

	// ArtifactBaseURL, when set, is used to build artifact download URLs
	// instead of the standard API path.
	ArtifactBaseURL string

	// DataDir is the server-side directory for exported artifacts and
	// uploaded documents.
	DataDir string
}

// LoadSandboxConfig reads sandbox configuration from the environment.
func LoadSandboxConfig() *SandboxConfig {
	return &SandboxConfig{
		Image:              getEnvOrDefault("SANDBOX_IMAGE", "astraforge-sandbox:latest"),
		DefaultBackend:     Backend(getEnvOrDefault("SANDBOX_BACKEND", string(BackendLocal))),
		WorkspacePath:      getEnvOrDefault("SANDBOX_WORKSPACE_PATH", "/workspace"),
		ExecuteCommands:    getEnvBool("ASTRAFORGE_EXECUTE_COMMANDS", false),
		DockerNetwork:      getEnvOrDefault("SANDBOX_DOCKER_NETWORK", ""),
		DockerUser:         getEnvOrDefault("SANDBOX_DOCKER_USER", ""),
		DockerReadOnly:     getEnvBool("SANDBOX_DOCKER_READ_ONLY", false),
		DockerPidsLimit:    getEnvInt("SANDBOX_DOCKER_PIDS_LIMIT", 256),
		DockerCPULimit:     getEnvOrDefault("SANDBOX_DOCKER_CPUS", "1"),
		DockerMemLimit:     getEnvOrDefault("SANDBOX_DOCKER_MEMORY", "1g"),
		ClusterNamespace:   getEnvOrDefault("SANDBOX_K8S_NAMESPACE", "astraforge-sandboxes"),
		ClusterRunAsUser:   getEnvInt("SANDBOX_K8S_RUN_AS_USER", 1000),
		DefaultIdleTimeout: getEnvDuration("SANDBOX_IDLE_TIMEOUT", 30*time.Minute),
		DefaultMaxLifetime: getEnvDuration("SANDBOX_MAX_LIFETIME", 4*time.Hour),
		ArtifactBaseURL:    getEnvOrDefault("SANDBOX_ARTIFACT_BASE_URL", ""),
		DataDir:            getEnvOrDefault("ASTRAFORGE_DATA_DIR", "./data"),
	}
}

// Validate checks that required values are present and enums are known.
func (c *SandboxConfig) Validate() error {
	if c.Image == "" {
		return NewConfigError("SANDBOX_IMAGE", "required")
	}
	switch c.DefaultBackend {
	case BackendLocal, BackendCluster:
	default:
		return NewConfigError("SANDBOX_BACKEND", "must be 'local' or 'cluster'")
	}
	return nil
}
