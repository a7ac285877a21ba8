package runtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceName_Stable(t *testing.T) {
	a := instanceName("session-123")
	b := instanceName("session-123")
	c := instanceName("session-456")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Regexp(t, `^sandbox-[0-9a-f]{12}$`, a)
}

func TestParseRef(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		want    *Instance
		wantErr bool
	}{
		{
			name: "local",
			ref:  "local://sandbox-abc123def456",
			want: &Instance{Backend: BackendLocal, Name: "sandbox-abc123def456"},
		},
		{
			name: "cluster",
			ref:  "cluster://sandboxes/sandbox-abc123def456",
			want: &Instance{Backend: BackendCluster, Name: "sandbox-abc123def456", Namespace: "sandboxes"},
		},
		{name: "empty local name", ref: "local://", wantErr: true},
		{name: "cluster missing pod", ref: "cluster://sandboxes", wantErr: true},
		{name: "unknown scheme", ref: "podman://x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRef(tt.ref)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRefRoundTrip(t *testing.T) {
	for _, inst := range []*Instance{
		{Backend: BackendLocal, Name: "sandbox-0011223344aa"},
		{Backend: BackendCluster, Name: "sandbox-0011223344aa", Namespace: "ns1"},
	} {
		parsed, err := ParseRef(inst.Ref())
		require.NoError(t, err)
		assert.Equal(t, inst, parsed)
	}
}

func TestDockerRunArgs(t *testing.T) {
	args := dockerRunArgs("sandbox-abc", ProvisionSpec{
		SessionID:     "s1",
		Image:         "astraforge/sandbox:latest",
		CPULimit:      "2",
		MemoryLimit:   "4g",
		WorkspacePath: "/workspace",
		Labels:        map[string]string{"workspace": "w1"},
		Env:           map[string]string{"LANG": "C.UTF-8"},
		ReadOnlyRoot:  true,
		PidsLimit:     256,
		User:          "1000:1000",
	})

	assert.Equal(t, []string{
		"docker", "run", "-d",
		"--name", "sandbox-abc",
		"--label", "astraforge.session=s1",
		"--cap-drop", "ALL",
		"--security-opt", "no-new-privileges",
		"--read-only",
		"--tmpfs", "/workspace:exec",
		"--pids-limit", "256",
		"--user", "1000:1000",
		"--label", "workspace=w1",
		"--cpus", "2",
		"--memory", "4g",
		"-e", "LANG=C.UTF-8",
		"-w", "/workspace",
		"astraforge/sandbox:latest", "sleep", "infinity",
	}, args)
}

func TestDockerExecArgs(t *testing.T) {
	args := dockerExecArgs("sandbox-abc", "/workspace", "ls -la", false)
	assert.Equal(t, []string{
		"docker", "exec", "sandbox-abc", "sh", "-c", "cd '/workspace' && ls -la",
	}, args)
}

func TestDockerExecArgs_Interactive(t *testing.T) {
	args := dockerExecArgs("sandbox-abc", "", "cat > /tmp/f", true)
	assert.Equal(t, []string{
		"docker", "exec", "-i", "sandbox-abc", "sh", "-c", "cat > /tmp/f",
	}, args)
}

func TestDockerExecArgs_NoCwd(t *testing.T) {
	args := dockerExecArgs("sandbox-abc", "", "whoami", false)
	assert.Equal(t, "whoami", args[len(args)-1])
}

func TestKubectlExecArgs(t *testing.T) {
	args := kubectlExecArgs("sandboxes", "sandbox-abc", "/workspace", "python run.py", false)
	assert.Equal(t, []string{
		"kubectl", "exec", "-n", "sandboxes", "sandbox-abc", "--",
		"sh", "-c", "cd '/workspace' && python run.py",
	}, args)
}

func TestPodManifest(t *testing.T) {
	raw, err := podManifest("sandbox-abc", "sandboxes", ProvisionSpec{
		SessionID:     "s1",
		Image:         "astraforge/sandbox:latest",
		CPULimit:      "1",
		MemoryLimit:   "2Gi",
		WorkspacePath: "/workspace",
	})
	require.NoError(t, err)

	var pod map[string]any
	require.NoError(t, json.Unmarshal(raw, &pod))

	assert.Equal(t, "Pod", pod["kind"])
	meta := pod["metadata"].(map[string]any)
	assert.Equal(t, "sandbox-abc", meta["name"])
	assert.Equal(t, "sandboxes", meta["namespace"])
	labels := meta["labels"].(map[string]any)
	assert.Equal(t, "s1", labels[sessionLabel])

	spec := pod["spec"].(map[string]any)
	assert.Equal(t, "Never", spec["restartPolicy"])
	assert.Equal(t, false, spec["automountServiceAccountToken"])
	container := spec["containers"].([]any)[0].(map[string]any)
	assert.Equal(t, "astraforge/sandbox:latest", container["image"])
	limits := container["resources"].(map[string]any)["limits"].(map[string]any)
	assert.Equal(t, "1", limits["cpu"])
	assert.Equal(t, "2Gi", limits["memory"])

	sc := container["securityContext"].(map[string]any)
	assert.Equal(t, false, sc["allowPrivilegeEscalation"])
	assert.Equal(t, "RuntimeDefault", sc["seccompProfile"].(map[string]any)["type"])
	drops := sc["capabilities"].(map[string]any)["drop"].([]any)
	assert.Equal(t, []any{"ALL"}, drops)

	volumes := spec["volumes"].([]any)
	require.Len(t, volumes, 1)
	assert.Equal(t, "workspace", volumes[0].(map[string]any)["name"])
}

func TestShellQuote(t *testing.T) {
	assert.Equal(t, "'/workspace'", ShellQuote("/workspace"))
	assert.Equal(t, `'it'\''s'`, ShellQuote("it's"))
}
