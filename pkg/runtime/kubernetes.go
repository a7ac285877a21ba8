package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/astraforge/astraforge/pkg/runner"
)

// KubernetesAdapter runs sandboxes as pods, driven through kubectl so the
// service needs no in-cluster credentials beyond a kubeconfig.
type KubernetesAdapter struct {
	runner    *runner.Runner
	logger    *slog.Logger
	namespace string
	// readyTimeout bounds how long Provision waits for the pod to reach
	// Running.
	readyTimeout time.Duration
	pollInterval time.Duration
}

// NewKubernetesAdapter creates the cluster backend adapter.
func NewKubernetesAdapter(r *runner.Runner, namespace string, readyTimeout time.Duration, logger *slog.Logger) *KubernetesAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	if namespace == "" {
		namespace = "default"
	}
	if readyTimeout <= 0 {
		readyTimeout = 2 * time.Minute
	}
	return &KubernetesAdapter{
		runner:       r,
		logger:       logger,
		namespace:    namespace,
		readyTimeout: readyTimeout,
		pollInterval: 2 * time.Second,
	}
}

// podManifest builds the pod as a JSON document for kubectl apply -f -.
// JSON is valid YAML, so no template engine is needed.
func podManifest(name, namespace string, spec ProvisionSpec) ([]byte, error) {
	labels := map[string]string{sessionLabel: spec.SessionID}
	for k, v := range spec.Labels {
		labels[k] = v
	}

	limits := map[string]string{}
	if spec.CPULimit != "" {
		limits["cpu"] = spec.CPULimit
	}
	if spec.MemoryLimit != "" {
		limits["memory"] = spec.MemoryLimit
	}

	var env []map[string]string
	for k, v := range spec.Env {
		env = append(env, map[string]string{"name": k, "value": v})
	}

	securityContext := map[string]any{
		"allowPrivilegeEscalation": false,
		"runAsNonRoot":             true,
		"capabilities":             map[string]any{"drop": []string{"ALL"}},
		"seccompProfile":           map[string]any{"type": "RuntimeDefault"},
	}
	if spec.RunAsUser > 0 {
		securityContext["runAsUser"] = spec.RunAsUser
	}
	if spec.ReadOnlyRoot {
		securityContext["readOnlyRootFilesystem"] = true
	}

	container := map[string]any{
		"name":            "sandbox",
		"image":           spec.Image,
		"command":         []string{"sleep", "infinity"},
		"workingDir":      spec.WorkspacePath,
		"securityContext": securityContext,
	}
	if len(limits) > 0 {
		container["resources"] = map[string]any{"limits": limits}
	}
	if len(env) > 0 {
		container["env"] = env
	}
	if spec.WorkspacePath != "" {
		container["volumeMounts"] = []any{
			map[string]any{"name": "workspace", "mountPath": spec.WorkspacePath},
		}
	}

	podSpec := map[string]any{
		"restartPolicy":                "Never",
		"automountServiceAccountToken": false,
		"containers":                   []any{container},
	}
	if spec.WorkspacePath != "" {
		podSpec["volumes"] = []any{
			map[string]any{"name": "workspace", "emptyDir": map[string]any{}},
		}
	}

	manifest := map[string]any{
		"apiVersion": "v1",
		"kind":       "Pod",
		"metadata": map[string]any{
			"name":      name,
			"namespace": namespace,
			"labels":    labels,
		},
		"spec": podSpec,
	}
	return json.Marshal(manifest)
}

// kubectlExecArgs builds the kubectl exec argv for a command. interactive
// attaches stdin.
func kubectlExecArgs(namespace, pod, cwd, command string, interactive bool) []string {
	args := []string{"kubectl", "exec", "-n", namespace}
	if interactive {
		args = append(args, "-i")
	}
	return append(args, pod, "--", "sh", "-c", shellCommand(cwd, command))
}

// Provision applies the pod manifest and waits for the pod to run. Applying
// an existing pod is a no-op server-side, which makes re-entry safe.
func (a *KubernetesAdapter) Provision(ctx context.Context, spec ProvisionSpec) (*Instance, error) {
	name := instanceName(spec.SessionID)
	inst := &Instance{Backend: BackendCluster, Name: name, Namespace: a.namespace}

	manifest, err := podManifest(name, a.namespace, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to build pod manifest: %w", err)
	}

	_, err = a.runner.Run(ctx, []string{"kubectl", "apply", "-f", "-"}, runner.Options{
		Stdin: strings.NewReader(string(manifest)),
	})
	if err != nil {
		return nil, fmt.Errorf("kubectl apply failed: %w", err)
	}

	if err := a.waitRunning(ctx, name); err != nil {
		return nil, err
	}
	return inst, nil
}

// waitRunning polls pod phase until Running or the ready timeout lapses.
func (a *KubernetesAdapter) waitRunning(ctx context.Context, pod string) error {
	if !a.runner.Executing() {
		return nil
	}

	deadline := time.Now().Add(a.readyTimeout)
	for {
		result, err := a.runner.Run(ctx, []string{
			"kubectl", "get", "pod", "-n", a.namespace, pod,
			"-o", "jsonpath={.status.phase}",
		}, runner.Options{AllowFailure: true})
		if err != nil {
			return fmt.Errorf("kubectl get pod failed: %w", err)
		}

		phase := strings.TrimSpace(result.Output)
		switch phase {
		case "Running":
			return nil
		case "Failed", "Succeeded":
			return fmt.Errorf("pod %s entered terminal phase %s before becoming ready", pod, phase)
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("pod %s not running after %s (phase %q)", pod, a.readyTimeout, phase)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(a.pollInterval):
		}
	}
}

// Exec runs a shell command inside the pod.
func (a *KubernetesAdapter) Exec(ctx context.Context, inst *Instance, command string, opts ExecOptions) (*runner.Result, error) {
	return a.runner.Run(ctx, kubectlExecArgs(inst.Namespace, inst.Name, opts.Cwd, command, opts.Stdin != nil), runner.Options{
		Timeout:        opts.Timeout,
		Stream:         opts.Stream,
		AllowFailure:   opts.AllowFailure,
		Stdin:          opts.Stdin,
		MaxOutputBytes: opts.MaxOutputBytes,
	})
}

// CopyTo copies a local file into the pod.
func (a *KubernetesAdapter) CopyTo(ctx context.Context, inst *Instance, localPath, remotePath string) error {
	_, err := a.runner.Run(ctx, []string{
		"kubectl", "cp", localPath,
		fmt.Sprintf("%s/%s:%s", inst.Namespace, inst.Name, remotePath),
	}, runner.Options{})
	if err != nil {
		return fmt.Errorf("kubectl cp to sandbox failed: %w", err)
	}
	return nil
}

// CopyFrom copies a pod file to the local filesystem.
func (a *KubernetesAdapter) CopyFrom(ctx context.Context, inst *Instance, remotePath, localPath string) error {
	_, err := a.runner.Run(ctx, []string{
		"kubectl", "cp",
		fmt.Sprintf("%s/%s:%s", inst.Namespace, inst.Name, remotePath),
		localPath,
	}, runner.Options{})
	if err != nil {
		return fmt.Errorf("kubectl cp from sandbox failed: %w", err)
	}
	return nil
}

// Alive reports whether the pod is in the Running phase.
func (a *KubernetesAdapter) Alive(ctx context.Context, inst *Instance) (bool, error) {
	result, err := a.runner.Run(ctx, []string{
		"kubectl", "get", "pod", "-n", inst.Namespace, inst.Name,
		"-o", "jsonpath={.status.phase}",
	}, runner.Options{AllowFailure: true})
	if err != nil {
		return false, fmt.Errorf("kubectl get pod failed: %w", err)
	}
	if result.ExitCode != 0 {
		if strings.Contains(result.Output, "NotFound") {
			return false, nil
		}
		return false, fmt.Errorf("kubectl get pod failed: %s", result.Output)
	}
	return strings.TrimSpace(result.Output) == "Running", nil
}

// Destroy deletes the pod without waiting for graceful termination.
func (a *KubernetesAdapter) Destroy(ctx context.Context, inst *Instance) error {
	result, err := a.runner.Run(ctx, []string{
		"kubectl", "delete", "pod", "-n", inst.Namespace, inst.Name,
		"--ignore-not-found", "--wait=false",
	}, runner.Options{AllowFailure: true})
	if err != nil {
		return fmt.Errorf("kubectl delete pod failed: %w", err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("kubectl delete pod failed: %s", result.Output)
	}
	return nil
}
