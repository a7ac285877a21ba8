package sandbox

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astraforge/astraforge/ent"
	"github.com/astraforge/astraforge/pkg/config"
)

func TestProvisionSpec_Defaults(t *testing.T) {
	m := &Manager{cfg: &config.SandboxConfig{
		DockerCPULimit:   "1",
		DockerMemLimit:   "1g",
		DockerReadOnly:   true,
		DockerPidsLimit:  256,
		DockerNetwork:    "sandbox-net",
		DockerUser:       "1000:1000",
		ClusterRunAsUser: 1000,
	}}

	spec := m.provisionSpec(&ent.SandboxSession{
		ID:            "s1",
		WorkspaceID:   "w1",
		Image:         "astraforge-sandbox:latest",
		WorkspacePath: "/workspace",
	})

	assert.Equal(t, "s1", spec.SessionID)
	assert.Equal(t, "astraforge-sandbox:latest", spec.Image)
	assert.Equal(t, "1", spec.CPULimit)
	assert.Equal(t, "1g", spec.MemoryLimit)
	assert.Equal(t, "/workspace", spec.WorkspacePath)
	assert.Equal(t, map[string]string{"astraforge.workspace": "w1"}, spec.Labels)
	assert.True(t, spec.ReadOnlyRoot)
	assert.Equal(t, 256, spec.PidsLimit)
	assert.Equal(t, "sandbox-net", spec.Network)
	assert.Equal(t, "1000:1000", spec.User)
	assert.Equal(t, 1000, spec.RunAsUser)
}

func TestProvisionSpec_SessionOverridesWin(t *testing.T) {
	m := &Manager{cfg: &config.SandboxConfig{
		DockerCPULimit: "1",
		DockerMemLimit: "1g",
	}}

	spec := m.provisionSpec(&ent.SandboxSession{
		ID:          "s1",
		CPULimit:    "4",
		MemoryLimit: "8g",
	})

	assert.Equal(t, "4", spec.CPULimit)
	assert.Equal(t, "8g", spec.MemoryLimit)
}

func TestProvisionError_Unwrap(t *testing.T) {
	cause := errors.New("docker run failed")
	err := &ProvisionError{SessionID: "s1", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "s1")
}

func TestNotReadyError_Message(t *testing.T) {
	err := &NotReadyError{SessionID: "s1", Status: "terminated"}
	assert.Contains(t, err.Error(), "s1")
	assert.Contains(t, err.Error(), "terminated")
}

func TestObjectStoreKey(t *testing.T) {
	s := &ObjectStore{}
	assert.Equal(t, "snapshots/s1/snap-1.tar.gz", s.Key("s1", "snap-1"))
}
