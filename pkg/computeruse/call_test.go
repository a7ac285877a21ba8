package computeruse

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromedp/chromedp/kb"
)

func TestComputerCall_Validate(t *testing.T) {
	tests := []struct {
		name    string
		call    ComputerCall
		wantErr bool
	}{
		{name: "click", call: ComputerCall{Type: ActionClick, X: 1, Y: 2}},
		{name: "visit_url", call: ComputerCall{Type: ActionVisitURL, URL: "https://example.com"}},
		{name: "visit_url without url", call: ComputerCall{Type: ActionVisitURL}, wantErr: true},
		{name: "type", call: ComputerCall{Type: ActionType, Text: "hello"}},
		{name: "type without text", call: ComputerCall{Type: ActionType}, wantErr: true},
		{name: "web_search", call: ComputerCall{Type: ActionWebSearch, Query: "golang"}},
		{name: "web_search without query", call: ComputerCall{Type: ActionWebSearch}, wantErr: true},
		{name: "terminate", call: ComputerCall{Type: ActionTerminate}},
		{name: "unknown type", call: ComputerCall{Type: "drag"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestComputerCall_EnsureCallID(t *testing.T) {
	call := &ComputerCall{Type: ActionClick}
	call.EnsureCallID()
	first := call.CallID
	assert.NotEmpty(t, first)

	call.EnsureCallID()
	assert.Equal(t, first, call.CallID)

	supplied := &ComputerCall{Type: ActionClick, CallID: "caller-1"}
	supplied.EnsureCallID()
	assert.Equal(t, "caller-1", supplied.CallID)
}

func TestComputerCall_JSONRoundTrip(t *testing.T) {
	call := &ComputerCall{
		CallID: "c1",
		Type:   ActionVisitURL,
		URL:    "https://example.com",
		PendingSafetyChecks: []SafetyCheck{
			{ID: "sc1", Code: "new_domain", Message: "first visit", Severity: SeverityMedium},
		},
		Meta: Meta{CriticalPoint: true, ReasoningSummary: "open docs"},
	}

	raw, err := json.Marshal(call)
	require.NoError(t, err)

	var decoded ComputerCall
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *call, decoded)
}

func TestSeverityRank(t *testing.T) {
	assert.Greater(t, severityRank(SeverityHigh), severityRank(SeverityMedium))
	assert.Greater(t, severityRank(SeverityMedium), severityRank(SeverityLow))
	assert.Greater(t, severityRank(SeverityLow), severityRank("bogus"))
}

func TestMapKey(t *testing.T) {
	assert.Equal(t, kb.Enter, mapKey("Enter"))
	assert.Equal(t, kb.Tab, mapKey("tab"))
	assert.Equal(t, kb.ArrowDown, mapKey("ArrowDown"))
	assert.Equal(t, "a", mapKey("a"))
}

func TestTraceRecorder_Layout(t *testing.T) {
	root := t.TempDir()
	trace, err := NewTraceRecorder(root, "run-1", map[string]any{"approval_mode": "auto"})
	require.NoError(t, err)

	call := &ComputerCall{CallID: "c1", Type: ActionClick, X: 5, Y: 5}
	obs := &Observation{
		CallID:    "c1",
		URL:       "https://example.com",
		Execution: Execution{Status: ExecutionSuccess},
	}
	require.NoError(t, trace.RecordStep(call, Decision{Action: DecisionAllow}, obs))

	blocked := &ComputerCall{CallID: "c2", Type: ActionVisitURL, URL: "https://evil.com"}
	require.NoError(t, trace.RecordDecision(blocked, Decision{Action: DecisionBlock, Reason: "domain"}))

	require.NoError(t, trace.Close())

	dir := filepath.Join(root, "run-1")
	for _, rel := range []string{
		"config.json",
		"timeline.jsonl",
		"steps/0001.json",
		"replay/actions.jsonl",
		"replay/run.sh",
		"replay/README.md",
	} {
		_, statErr := os.Stat(filepath.Join(dir, rel))
		assert.NoError(t, statErr, rel)
	}

	timeline, err := os.ReadFile(filepath.Join(dir, "timeline.jsonl"))
	require.NoError(t, err)
	assert.Equal(t, 2, len(splitLines(string(timeline))))

	actions, err := os.ReadFile(filepath.Join(dir, "replay", "actions.jsonl"))
	require.NoError(t, err)
	assert.Equal(t, 1, len(splitLines(string(actions))))
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
