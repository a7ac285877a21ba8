// Package runtime abstracts the container backends that host sandboxes. The
// local backend drives the docker CLI; the cluster backend drives kubectl.
// Both build plain argv vectors and execute them through the command runner,
// so the adapters stay testable without a daemon.
package runtime

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/astraforge/astraforge/pkg/runner"
)

// Backend identifiers, persisted on the session row.
const (
	BackendLocal   = "local"
	BackendCluster = "cluster"
)

// Instance is a handle to a running sandbox container or pod. Ref round-trips
// through the database so a restarted server can re-adopt live sandboxes.
type Instance struct {
	Backend   string
	Name      string // container name or pod name
	Namespace string // cluster backend only
}

// Ref encodes the instance as local://<container> or cluster://<ns>/<pod>.
func (i *Instance) Ref() string {
	if i.Backend == BackendCluster {
		return fmt.Sprintf("cluster://%s/%s", i.Namespace, i.Name)
	}
	return fmt.Sprintf("local://%s", i.Name)
}

// ParseRef decodes a stored backend ref back into an Instance.
func ParseRef(ref string) (*Instance, error) {
	switch {
	case strings.HasPrefix(ref, "local://"):
		name := strings.TrimPrefix(ref, "local://")
		if name == "" {
			return nil, fmt.Errorf("invalid backend ref %q: empty container name", ref)
		}
		return &Instance{Backend: BackendLocal, Name: name}, nil
	case strings.HasPrefix(ref, "cluster://"):
		rest := strings.TrimPrefix(ref, "cluster://")
		ns, pod, ok := strings.Cut(rest, "/")
		if !ok || ns == "" || pod == "" {
			return nil, fmt.Errorf("invalid backend ref %q: want cluster://<namespace>/<pod>", ref)
		}
		return &Instance{Backend: BackendCluster, Name: pod, Namespace: ns}, nil
	default:
		return nil, fmt.Errorf("invalid backend ref %q: unknown scheme", ref)
	}
}

// ProvisionSpec describes the sandbox to create.
type ProvisionSpec struct {
	SessionID     string
	Image         string
	CPULimit      string
	MemoryLimit   string
	WorkspacePath string
	Labels        map[string]string
	Env           map[string]string

	// Hardening knobs. Both backends drop capabilities and forbid privilege
	// escalation unconditionally; these tune the rest.
	ReadOnlyRoot bool
	PidsLimit    int
	Network      string // docker network, empty for the default
	User         string // docker --user, empty for the image default
	RunAsUser    int    // cluster runAsUser, 0 for the image default
}

// ExecOptions controls command execution inside a sandbox.
type ExecOptions struct {
	Cwd     string
	Timeout time.Duration
	Stream  func(line string)
	// AllowFailure passes non-zero exits back as results instead of errors.
	AllowFailure bool
	Stdin        io.Reader
	// MaxOutputBytes overrides the runner's captured-output cap. Snapshot
	// offload reads whole archives through exec and needs a higher cap.
	MaxOutputBytes int
}

// Adapter provisions and drives sandbox instances on one backend.
type Adapter interface {
	// Provision creates (or adopts) the sandbox for a session. Provisioning
	// the same session twice returns the live instance.
	Provision(ctx context.Context, spec ProvisionSpec) (*Instance, error)
	// Exec runs a shell command inside the sandbox workspace.
	Exec(ctx context.Context, inst *Instance, command string, opts ExecOptions) (*runner.Result, error)
	// CopyTo copies a local file into the sandbox filesystem.
	CopyTo(ctx context.Context, inst *Instance, localPath, remotePath string) error
	// CopyFrom copies a sandbox file to the local filesystem.
	CopyFrom(ctx context.Context, inst *Instance, remotePath, localPath string) error
	// Alive reports whether the instance is still running.
	Alive(ctx context.Context, inst *Instance) (bool, error)
	// Destroy removes the instance. Destroying a missing instance is not an
	// error.
	Destroy(ctx context.Context, inst *Instance) error
}

// instanceName derives the stable container/pod name for a session. The name
// is a function of the session id alone, which is what makes provisioning
// idempotent across server restarts.
func instanceName(sessionID string) string {
	sum := sha256.Sum256([]byte(sessionID))
	return "sandbox-" + hex.EncodeToString(sum[:])[:12]
}

// shellCommand wraps a user command so it runs from the workspace directory.
func shellCommand(cwd, command string) string {
	if cwd == "" {
		return command
	}
	return fmt.Sprintf("cd %s && %s", ShellQuote(cwd), command)
}

// ShellQuote single-quotes a string for POSIX sh.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
