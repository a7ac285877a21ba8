package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecResponseWireFormat(t *testing.T) {
	raw, err := json.Marshal(ExecResponse{
		ExitCode:    0,
		Stdout:      "hello\n",
		Stderr:      "",
		DurationSec: 0.42,
	})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	assert.Equal(t, float64(0), m["exit_code"])
	assert.Equal(t, "hello\n", m["stdout"])
	assert.Equal(t, "", m["stderr"])
	assert.Equal(t, 0.42, m["duration_sec"])
	assert.NotContains(t, m, "output")
	assert.NotContains(t, m, "duration_ms")
}
