package tools

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astraforge/astraforge/ent"
	"github.com/astraforge/astraforge/pkg/runner"
)

type fakeExecutor struct {
	lastCommand string
	lastTimeout int
	execResult  *runner.Result
	execErr     error

	readContent   []byte
	readTruncated bool
	readErr       error

	uploadPath    string
	uploadContent []byte

	artifact *ent.Artifact
}

func (f *fakeExecutor) Execute(_ context.Context, _, command, _ string, timeoutSec int, _ func(string)) (*runner.Result, error) {
	f.lastCommand = command
	f.lastTimeout = timeoutSec
	if f.execErr != nil {
		return nil, f.execErr
	}
	if f.execResult != nil {
		return f.execResult, nil
	}
	return &runner.Result{ExitCode: 0, Output: "ok"}, nil
}

func (f *fakeExecutor) ReadFile(_ context.Context, _, _ string, _ int64) ([]byte, bool, error) {
	return f.readContent, f.readTruncated, f.readErr
}

func (f *fakeExecutor) Upload(_ context.Context, _, path string, content []byte) error {
	f.uploadPath = path
	f.uploadContent = content
	return nil
}

func (f *fakeExecutor) ExportFile(_ context.Context, _, _, _, _ string) (*ent.Artifact, error) {
	return f.artifact, nil
}

func TestRegistry_DefinitionsSorted(t *testing.T) {
	r := NewSandboxRegistry(&fakeExecutor{}, "s1", nil)

	defs := r.Definitions()
	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = def.Name
		assert.NotEmpty(t, def.Description)
		assert.Equal(t, "object", def.InputSchema["type"])
	}
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "shell")
	assert.Contains(t, names, ToolAskUser)
	assert.Contains(t, names, ToolRequestTakeover)
	assert.NotContains(t, names, "browser_open")
}

func TestIsInterruptTool(t *testing.T) {
	assert.True(t, IsInterruptTool(ToolAskUser))
	assert.True(t, IsInterruptTool(ToolRequestTakeover))
	assert.False(t, IsInterruptTool("shell"))
}

func TestShellTool(t *testing.T) {
	exec := &fakeExecutor{execResult: &runner.Result{ExitCode: 0, Output: "hello\n"}}
	tool := &shellTool{exec: exec, sessionID: "s1"}

	result, err := tool.Invoke(context.Background(), map[string]any{
		"command":     "echo hello",
		"timeout_sec": float64(30),
	})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", result.Output)
	assert.False(t, result.IsError)
	assert.Equal(t, "echo hello", exec.lastCommand)
	assert.Equal(t, 30, exec.lastTimeout)
}

func TestShellTool_NonZeroExit(t *testing.T) {
	exec := &fakeExecutor{execResult: &runner.Result{ExitCode: 2, Output: "boom"}}
	tool := &shellTool{exec: exec, sessionID: "s1"}

	result, err := tool.Invoke(context.Background(), map[string]any{"command": "false"})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Output, "exit code 2")
	assert.Contains(t, result.Output, "boom")
}

func TestShellTool_OutputCap(t *testing.T) {
	exec := &fakeExecutor{execResult: &runner.Result{
		ExitCode: 0,
		Output:   strings.Repeat("x", ShellOutputCap+100),
	}}
	tool := &shellTool{exec: exec, sessionID: "s1"}

	result, err := tool.Invoke(context.Background(), map[string]any{"command": "yes"})
	require.NoError(t, err)
	assert.True(t, result.Truncated)
	assert.Contains(t, result.Output, "[output truncated]")
}

func TestShellTool_MissingCommand(t *testing.T) {
	tool := &shellTool{exec: &fakeExecutor{}, sessionID: "s1"}
	result, err := tool.Invoke(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestSearchTool_NoMatchesIsContractFailure(t *testing.T) {
	exec := &fakeExecutor{execResult: &runner.Result{ExitCode: 1}}
	tool := &searchTool{exec: exec, sessionID: "s1"}

	result, err := tool.Invoke(context.Background(), map[string]any{"pattern": "needle"})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Output, "no matches")
	assert.Contains(t, exec.lastCommand, "grep -rn")
	assert.Contains(t, exec.lastCommand, "'needle'")
}

func TestWriteFileTool(t *testing.T) {
	exec := &fakeExecutor{}
	tool := &writeFileTool{exec: exec, sessionID: "s1"}

	result, err := tool.Invoke(context.Background(), map[string]any{
		"path":    "/workspace/out.txt",
		"content": "data",
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "/workspace/out.txt", exec.uploadPath)
	assert.Equal(t, []byte("data"), exec.uploadContent)
}

func TestViewImageTool_DataURL(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G'}
	exec := &fakeExecutor{readContent: raw}
	tool := &viewImageTool{exec: exec, sessionID: "s1"}

	result, err := tool.Invoke(context.Background(), map[string]any{"path": "/workspace/shot.png"})
	require.NoError(t, err)
	require.Len(t, result.Parts, 2)
	assert.Equal(t, "text", result.Parts[0].Type)
	assert.Equal(t, "image_url", result.Parts[1].Type)
	assert.Equal(t,
		"data:image/png;base64,"+base64.StdEncoding.EncodeToString(raw),
		result.Parts[1].ImageURL)
}

func TestViewImageTool_RejectsNonImage(t *testing.T) {
	exec := &fakeExecutor{readContent: []byte("hello")}
	tool := &viewImageTool{exec: exec, sessionID: "s1"}

	result, err := tool.Invoke(context.Background(), map[string]any{"path": "/workspace/notes.txt"})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestExportFileTool(t *testing.T) {
	downloadURL := "/api/v1/sandboxes/s1/artifacts/a1"
	exec := &fakeExecutor{artifact: &ent.Artifact{
		Filename:    "report.csv",
		SizeBytes:   42,
		DownloadURL: &downloadURL,
	}}
	tool := &exportFileTool{exec: exec, sessionID: "s1"}

	result, err := tool.Invoke(context.Background(), map[string]any{"path": "/workspace/report.csv"})
	require.NoError(t, err)
	assert.Contains(t, result.Output, "report.csv")
	assert.Contains(t, result.Output, "/api/v1/sandboxes/s1/artifacts/a1")
}

func TestPythonExecTool_QuotesCode(t *testing.T) {
	exec := &fakeExecutor{execResult: &runner.Result{ExitCode: 0, Output: "3\n"}}
	tool := &pythonExecTool{exec: exec, sessionID: "s1"}

	result, err := tool.Invoke(context.Background(), map[string]any{"code": "print(1+2)"})
	require.NoError(t, err)
	assert.Equal(t, "3\n", result.Output)
	assert.Equal(t, "python3 -c 'print(1+2)'", exec.lastCommand)
}

func TestCapOutput(t *testing.T) {
	out, truncated := capOutput("short", 100)
	assert.Equal(t, "short", out)
	assert.False(t, truncated)

	out, truncated = capOutput(strings.Repeat("a", 10), 4)
	assert.True(t, truncated)
	assert.True(t, strings.HasPrefix(out, "aaaa"))
}
