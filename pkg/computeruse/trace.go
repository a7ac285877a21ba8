package computeruse

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TraceRecorder writes a replayable record of a computer-use run:
//
//	<root>/<run-id>/
//	  config.json          policy and viewport settings at run start
//	  timeline.jsonl       one line per call with its decision and outcome
//	  steps/NNNN.json      full call + observation per executed step
//	  steps/NNNN.png       screenshot per executed step
//	  replay/actions.jsonl the executed calls alone
//	  replay/run.sh        replay entry point
//	  replay/README.md     how to use the trace
type TraceRecorder struct {
	dir  string
	step int
}

// NewTraceRecorder creates the trace directory tree and writes config.json.
func NewTraceRecorder(root, runID string, cfg any) (*TraceRecorder, error) {
	dir := filepath.Join(root, runID)
	for _, sub := range []string{"steps", "replay"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create trace dir: %w", err)
		}
	}

	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode trace config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), raw, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write trace config: %w", err)
	}

	return &TraceRecorder{dir: dir}, nil
}

// Dir returns the trace root for this run.
func (t *TraceRecorder) Dir() string {
	return t.dir
}

type timelineEntry struct {
	Step     int           `json:"step"`
	Call     *ComputerCall `json:"call"`
	Decision Decision      `json:"decision"`
	Status   string        `json:"status,omitempty"`
	TS       time.Time     `json:"ts"`
}

func appendJSONL(path string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	_, err = f.Write(append(raw, '\n'))
	return err
}

// RecordDecision logs a call that was blocked or suspended before execution.
func (t *TraceRecorder) RecordDecision(call *ComputerCall, decision Decision) error {
	t.step++
	return appendJSONL(filepath.Join(t.dir, "timeline.jsonl"), timelineEntry{
		Step:     t.step,
		Call:     call,
		Decision: decision,
		TS:       time.Now().UTC(),
	})
}

// RecordStep logs an executed call with its observation and screenshot.
func (t *TraceRecorder) RecordStep(call *ComputerCall, decision Decision, obs *Observation) error {
	t.step++
	prefix := fmt.Sprintf("%04d", t.step)

	if err := appendJSONL(filepath.Join(t.dir, "timeline.jsonl"), timelineEntry{
		Step:     t.step,
		Call:     call,
		Decision: decision,
		Status:   obs.Execution.Status,
		TS:       time.Now().UTC(),
	}); err != nil {
		return err
	}

	stepDoc := map[string]any{"step": t.step, "call": call, "observation": obs}
	raw, err := json.MarshalIndent(stepDoc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(t.dir, "steps", prefix+".json"), raw, 0o644); err != nil {
		return err
	}

	if obs.ScreenshotB64 != "" {
		png, decodeErr := base64.StdEncoding.DecodeString(obs.ScreenshotB64)
		if decodeErr == nil {
			if err := os.WriteFile(filepath.Join(t.dir, "steps", prefix+".png"), png, 0o644); err != nil {
				return err
			}
		}
	}

	return appendJSONL(filepath.Join(t.dir, "replay", "actions.jsonl"), call)
}

const replayScript = `#!/bin/sh
# Replays the recorded browser actions against a live browser.
# Usage: ./run.sh [base-url-override]
exec astraforge replay --actions "$(dirname "$0")/actions.jsonl" "$@"
`

const replayReadme = `# Browser run trace

- config.json: policy and viewport settings at run start
- timeline.jsonl: every call with its policy decision and outcome
- steps/NNNN.json + NNNN.png: executed calls with observations and screenshots
- replay/actions.jsonl: the executed calls alone, one per line
- replay/run.sh: replays the actions with the astraforge CLI
`

// Close finalizes the replay directory.
func (t *TraceRecorder) Close() error {
	if err := os.WriteFile(filepath.Join(t.dir, "replay", "run.sh"), []byte(replayScript), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(t.dir, "replay", "README.md"), []byte(replayReadme), 0o644)
}
