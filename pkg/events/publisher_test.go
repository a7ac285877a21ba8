package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectSeqAndTruncate_SmallPayload(t *testing.T) {
	payload := []byte(`{"type":"status","event_id":"e1","session_id":"s1","status":"ready"}`)

	out, err := injectSeqAndTruncate(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.EqualValues(t, 42, m["seq"])
	assert.Equal(t, "ready", m["status"])
	assert.Nil(t, m["truncated"])
}

func TestInjectSeqAndTruncate_LargePayload(t *testing.T) {
	big := strings.Repeat("x", 9000)
	payload, err := json.Marshal(map[string]any{
		"type":       "tool_result",
		"event_id":   "e1",
		"session_id": "s1",
		"content":    big,
	})
	require.NoError(t, err)

	out, err := injectSeqAndTruncate(payload, 7)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), 7900)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, "tool_result", m["type"])
	assert.Equal(t, "e1", m["event_id"])
	assert.Equal(t, "s1", m["session_id"])
	assert.EqualValues(t, 7, m["seq"])
	assert.Nil(t, m["content"])
}

func TestTruncateIfNeeded_PassThrough(t *testing.T) {
	in := `{"type":"log","line":"hello"}`
	out, err := truncateIfNeeded(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStreamChannel(t *testing.T) {
	assert.Equal(t, "stream:abc", StreamChannel("abc"))
}

func TestIsTerminalEventType(t *testing.T) {
	assert.True(t, IsTerminalEventType(EventTypeCompleted))
	assert.True(t, IsTerminalEventType(EventTypeError))
	assert.False(t, IsTerminalEventType(EventTypeStatus))
	assert.False(t, IsTerminalEventType(EventTypeHeartbeat))
}
