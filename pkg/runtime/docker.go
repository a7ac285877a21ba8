package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/astraforge/astraforge/pkg/runner"
)

// sessionLabel marks containers owned by this service; the value is the
// session id, which is how a restarted server re-adopts live sandboxes.
const sessionLabel = "astraforge.session"

// DockerAdapter runs sandboxes as local docker containers.
type DockerAdapter struct {
	runner *runner.Runner
	logger *slog.Logger
}

// NewDockerAdapter creates the local backend adapter.
func NewDockerAdapter(r *runner.Runner, logger *slog.Logger) *DockerAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &DockerAdapter{runner: r, logger: logger}
}

// dockerRunArgs builds the docker run argv for a provision spec.
func dockerRunArgs(name string, spec ProvisionSpec) []string {
	args := []string{
		"docker", "run", "-d",
		"--name", name,
		"--label", sessionLabel + "=" + spec.SessionID,
		"--cap-drop", "ALL",
		"--security-opt", "no-new-privileges",
	}
	if spec.ReadOnlyRoot {
		args = append(args, "--read-only")
	}
	if spec.WorkspacePath != "" {
		args = append(args, "--tmpfs", spec.WorkspacePath+":exec")
	}
	if spec.PidsLimit > 0 {
		args = append(args, "--pids-limit", strconv.Itoa(spec.PidsLimit))
	}
	if spec.Network != "" {
		args = append(args, "--network", spec.Network)
	}
	if spec.User != "" {
		args = append(args, "--user", spec.User)
	}
	labelKeys := make([]string, 0, len(spec.Labels))
	for k := range spec.Labels {
		labelKeys = append(labelKeys, k)
	}
	sort.Strings(labelKeys)
	for _, k := range labelKeys {
		args = append(args, "--label", k+"="+spec.Labels[k])
	}
	if spec.CPULimit != "" {
		args = append(args, "--cpus", spec.CPULimit)
	}
	if spec.MemoryLimit != "" {
		args = append(args, "--memory", spec.MemoryLimit)
	}
	envKeys := make([]string, 0, len(spec.Env))
	for k := range spec.Env {
		envKeys = append(envKeys, k)
	}
	sort.Strings(envKeys)
	for _, k := range envKeys {
		args = append(args, "-e", k+"="+spec.Env[k])
	}
	if spec.WorkspacePath != "" {
		args = append(args, "-w", spec.WorkspacePath)
	}
	// Keep the container alive; commands are delivered via docker exec.
	args = append(args, spec.Image, "sleep", "infinity")
	return args
}

// dockerExecArgs builds the docker exec argv for a command. interactive
// attaches stdin.
func dockerExecArgs(name, cwd, command string, interactive bool) []string {
	args := []string{"docker", "exec"}
	if interactive {
		args = append(args, "-i")
	}
	return append(args, name, "sh", "-c", shellCommand(cwd, command))
}

// Provision creates the container for a session, adopting a live container
// from a previous run of the server when one exists.
func (a *DockerAdapter) Provision(ctx context.Context, spec ProvisionSpec) (*Instance, error) {
	name := instanceName(spec.SessionID)
	inst := &Instance{Backend: BackendLocal, Name: name}

	_, err := a.runner.Run(ctx, dockerRunArgs(name, spec), runner.Options{})
	if err == nil {
		return inst, nil
	}

	cmdErr, ok := asCommandFailed(err)
	if !ok || !strings.Contains(cmdErr.Output, "already in use") {
		return nil, fmt.Errorf("docker run failed: %w", err)
	}

	// Name conflict. If the existing container belongs to this session and is
	// running, adopt it; otherwise remove it and retry once.
	owner, running, inspectErr := a.inspect(ctx, name)
	if inspectErr == nil && owner == spec.SessionID && running {
		a.logger.Info("adopting existing sandbox container",
			"session_id", spec.SessionID, "container", name)
		return inst, nil
	}

	a.logger.Info("removing conflicting sandbox container",
		"session_id", spec.SessionID, "container", name)
	_, _ = a.runner.Run(ctx, []string{"docker", "rm", "-f", name}, runner.Options{AllowFailure: true})

	if _, err := a.runner.Run(ctx, dockerRunArgs(name, spec), runner.Options{}); err != nil {
		return nil, fmt.Errorf("docker run failed after removing conflict: %w", err)
	}
	return inst, nil
}

// inspect returns the session label and running state of a container.
func (a *DockerAdapter) inspect(ctx context.Context, name string) (owner string, running bool, err error) {
	format := fmt.Sprintf(`{{index .Config.Labels %q}} {{.State.Running}}`, sessionLabel)
	result, err := a.runner.Run(ctx, []string{"docker", "inspect", "--format", format, name}, runner.Options{})
	if err != nil {
		return "", false, err
	}
	fields := strings.Fields(result.Output)
	if len(fields) != 2 {
		return "", false, fmt.Errorf("unexpected docker inspect output: %q", result.Output)
	}
	return fields[0], fields[1] == "true", nil
}

// Exec runs a shell command inside the container.
func (a *DockerAdapter) Exec(ctx context.Context, inst *Instance, command string, opts ExecOptions) (*runner.Result, error) {
	return a.runner.Run(ctx, dockerExecArgs(inst.Name, opts.Cwd, command, opts.Stdin != nil), runner.Options{
		Timeout:        opts.Timeout,
		Stream:         opts.Stream,
		AllowFailure:   opts.AllowFailure,
		Stdin:          opts.Stdin,
		MaxOutputBytes: opts.MaxOutputBytes,
	})
}

// CopyTo copies a local file into the container.
func (a *DockerAdapter) CopyTo(ctx context.Context, inst *Instance, localPath, remotePath string) error {
	_, err := a.runner.Run(ctx, []string{"docker", "cp", localPath, inst.Name + ":" + remotePath}, runner.Options{})
	if err != nil {
		return fmt.Errorf("docker cp to sandbox failed: %w", err)
	}
	return nil
}

// CopyFrom copies a container file to the local filesystem.
func (a *DockerAdapter) CopyFrom(ctx context.Context, inst *Instance, remotePath, localPath string) error {
	_, err := a.runner.Run(ctx, []string{"docker", "cp", inst.Name + ":" + remotePath, localPath}, runner.Options{})
	if err != nil {
		return fmt.Errorf("docker cp from sandbox failed: %w", err)
	}
	return nil
}

// Alive reports whether the container is running.
func (a *DockerAdapter) Alive(ctx context.Context, inst *Instance) (bool, error) {
	_, running, err := a.inspect(ctx, inst.Name)
	if err != nil {
		if cmdErr, ok := asCommandFailed(err); ok && strings.Contains(cmdErr.Output, "No such") {
			return false, nil
		}
		return false, err
	}
	return running, nil
}

// Destroy force-removes the container. Missing containers are fine.
func (a *DockerAdapter) Destroy(ctx context.Context, inst *Instance) error {
	result, err := a.runner.Run(ctx, []string{"docker", "rm", "-f", inst.Name}, runner.Options{AllowFailure: true})
	if err != nil {
		return fmt.Errorf("docker rm failed: %w", err)
	}
	if result.ExitCode != 0 && !strings.Contains(result.Output, "No such") {
		return fmt.Errorf("docker rm failed: %s", result.Output)
	}
	return nil
}

func asCommandFailed(err error) (*runner.CommandFailedError, bool) {
	var cmdErr *runner.CommandFailedError
	if errors.As(err, &cmdErr) {
		return cmdErr, true
	}
	return nil, false
}
