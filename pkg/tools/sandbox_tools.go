package tools

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/astraforge/astraforge/ent"
	"github.com/astraforge/astraforge/pkg/computeruse"
	"github.com/astraforge/astraforge/pkg/runner"
	"github.com/astraforge/astraforge/pkg/runtime"
)

// SandboxExecutor is the slice of the lifecycle manager the tools need.
type SandboxExecutor interface {
	Execute(ctx context.Context, sessionID, command, cwd string, timeoutSec int, stream func(string)) (*runner.Result, error)
	ReadFile(ctx context.Context, sessionID, path string, maxBytes int64) (content []byte, truncated bool, err error)
	Upload(ctx context.Context, sessionID, path string, content []byte) error
	ExportFile(ctx context.Context, sessionID, path, filename, contentType string) (*ent.Artifact, error)
}

// Browser is the computer-use entry point behind the browser_open tool.
type Browser interface {
	// Open navigates to url and returns a page summary plus a base64 PNG
	// screenshot.
	Open(ctx context.Context, url string) (summary string, screenshotB64 string, err error)
}

// NewSandboxRegistry builds the default tool set for one session. browser may
// be nil when the deployment has no browser runtime.
func NewSandboxRegistry(exec SandboxExecutor, sessionID string, browser Browser) *Registry {
	r := NewRegistry()
	r.Register(&shellTool{exec: exec, sessionID: sessionID})
	r.Register(&readFileTool{exec: exec, sessionID: sessionID})
	r.Register(&writeFileTool{exec: exec, sessionID: sessionID})
	r.Register(&listFilesTool{exec: exec, sessionID: sessionID})
	r.Register(&searchTool{exec: exec, sessionID: sessionID})
	r.Register(&pythonExecTool{exec: exec, sessionID: sessionID})
	r.Register(&viewImageTool{exec: exec, sessionID: sessionID})
	r.Register(&exportFileTool{exec: exec, sessionID: sessionID})
	if browser != nil {
		r.Register(&browserOpenTool{browser: browser})
	}
	r.Register(&askUserTool{})
	r.Register(&requestTakeoverTool{})
	return r
}

func stringProperty(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func objectSchema(required []string, props map[string]any) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

type shellTool struct {
	exec      SandboxExecutor
	sessionID string
}

func (t *shellTool) Name() string { return "shell" }
func (t *shellTool) Description() string {
	return "Run a shell command inside the sandbox workspace. Returns combined stdout and stderr with the exit code."
}
func (t *shellTool) Schema() map[string]any {
	return objectSchema([]string{"command"}, map[string]any{
		"command":     stringProperty("The shell command to run"),
		"cwd":         stringProperty("Working directory, defaults to the workspace root"),
		"timeout_sec": map[string]any{"type": "integer", "description": "Kill the command after this many seconds"},
	})
}

func (t *shellTool) Invoke(ctx context.Context, args map[string]any) (*Result, error) {
	command := stringArg(args, "command")
	if command == "" {
		return Errorf("shell: command is required"), nil
	}
	result, err := t.exec.Execute(ctx, t.sessionID, command, stringArg(args, "cwd"), intArg(args, "timeout_sec"), nil)
	if err != nil {
		return nil, err
	}
	output, truncated := capOutput(result.Output, ShellOutputCap)
	if result.ExitCode != 0 {
		output = fmt.Sprintf("exit code %d\n%s", result.ExitCode, output)
	}
	return &Result{Output: output, IsError: result.ExitCode != 0, Truncated: truncated || result.Truncated}, nil
}

type readFileTool struct {
	exec      SandboxExecutor
	sessionID string
}

func (t *readFileTool) Name() string        { return "read_file" }
func (t *readFileTool) Description() string { return "Read a text file from the sandbox filesystem." }
func (t *readFileTool) Schema() map[string]any {
	return objectSchema([]string{"path"}, map[string]any{
		"path": stringProperty("Absolute path of the file to read"),
	})
}

func (t *readFileTool) Invoke(ctx context.Context, args map[string]any) (*Result, error) {
	path := stringArg(args, "path")
	if path == "" {
		return Errorf("read_file: path is required"), nil
	}
	content, truncated, err := t.exec.ReadFile(ctx, t.sessionID, path, ReadOutputCap)
	if err != nil {
		return Errorf("read_file: %v", err), nil
	}
	return &Result{Output: string(content), Truncated: truncated}, nil
}

type writeFileTool struct {
	exec      SandboxExecutor
	sessionID string
}

func (t *writeFileTool) Name() string { return "write_file" }
func (t *writeFileTool) Description() string {
	return "Write content to a file in the sandbox, creating parent directories and overwriting existing content."
}
func (t *writeFileTool) Schema() map[string]any {
	return objectSchema([]string{"path", "content"}, map[string]any{
		"path":    stringProperty("Absolute path of the file to write"),
		"content": stringProperty("Full file content"),
	})
}

func (t *writeFileTool) Invoke(ctx context.Context, args map[string]any) (*Result, error) {
	path := stringArg(args, "path")
	if path == "" {
		return Errorf("write_file: path is required"), nil
	}
	content := stringArg(args, "content")
	if err := t.exec.Upload(ctx, t.sessionID, path, []byte(content)); err != nil {
		return Errorf("write_file: %v", err), nil
	}
	return &Result{Output: fmt.Sprintf("wrote %d bytes to %s", len(content), path)}, nil
}

type listFilesTool struct {
	exec      SandboxExecutor
	sessionID string
}

func (t *listFilesTool) Name() string { return "list_files" }
func (t *listFilesTool) Description() string {
	return "List files under a directory in the sandbox, two levels deep."
}
func (t *listFilesTool) Schema() map[string]any {
	return objectSchema(nil, map[string]any{
		"path": stringProperty("Directory to list, defaults to the workspace root"),
	})
}

func (t *listFilesTool) Invoke(ctx context.Context, args map[string]any) (*Result, error) {
	path := stringArg(args, "path")
	if path == "" {
		path = "."
	}
	command := fmt.Sprintf("find %s -maxdepth 2 -not -path '*/.*' | sort", runtime.ShellQuote(path))
	result, err := t.exec.Execute(ctx, t.sessionID, command, "", 0, nil)
	if err != nil {
		return nil, err
	}
	if result.ExitCode != 0 {
		return Errorf("list_files: %s", strings.TrimSpace(result.Output)), nil
	}
	output, truncated := capOutput(result.Output, ListOutputCap)
	return &Result{Output: output, Truncated: truncated}, nil
}

type searchTool struct {
	exec      SandboxExecutor
	sessionID string
}

func (t *searchTool) Name() string { return "search" }
func (t *searchTool) Description() string {
	return "Search workspace files for a pattern using grep. Returns matching lines with file and line number."
}
func (t *searchTool) Schema() map[string]any {
	return objectSchema([]string{"pattern"}, map[string]any{
		"pattern": stringProperty("Regular expression to search for"),
		"path":    stringProperty("Directory to search, defaults to the workspace root"),
	})
}

func (t *searchTool) Invoke(ctx context.Context, args map[string]any) (*Result, error) {
	pattern := stringArg(args, "pattern")
	if pattern == "" {
		return Errorf("search: pattern is required"), nil
	}
	path := stringArg(args, "path")
	if path == "" {
		path = "."
	}
	command := fmt.Sprintf("grep -rn --exclude-dir=.git -e %s %s",
		runtime.ShellQuote(pattern), runtime.ShellQuote(path))
	result, err := t.exec.Execute(ctx, t.sessionID, command, "", 0, nil)
	if err != nil {
		return nil, err
	}
	// grep exits 1 on no matches.
	if result.ExitCode == 1 {
		return Errorf("no matches for %q", pattern), nil
	}
	if result.ExitCode != 0 {
		return Errorf("search: %s", strings.TrimSpace(result.Output)), nil
	}
	output, truncated := capOutput(result.Output, SearchOutputCap)
	return &Result{Output: output, Truncated: truncated}, nil
}

type pythonExecTool struct {
	exec      SandboxExecutor
	sessionID string
}

func (t *pythonExecTool) Name() string { return "python_exec" }
func (t *pythonExecTool) Description() string {
	return "Run a Python snippet inside the sandbox and return its output."
}
func (t *pythonExecTool) Schema() map[string]any {
	return objectSchema([]string{"code"}, map[string]any{
		"code":        stringProperty("Python source to execute"),
		"timeout_sec": map[string]any{"type": "integer", "description": "Kill the snippet after this many seconds"},
	})
}

func (t *pythonExecTool) Invoke(ctx context.Context, args map[string]any) (*Result, error) {
	code := stringArg(args, "code")
	if code == "" {
		return Errorf("python_exec: code is required"), nil
	}
	command := "python3 -c " + runtime.ShellQuote(code)
	result, err := t.exec.Execute(ctx, t.sessionID, command, "", intArg(args, "timeout_sec"), nil)
	if err != nil {
		return nil, err
	}
	output, truncated := capOutput(result.Output, ShellOutputCap)
	if result.ExitCode != 0 {
		output = fmt.Sprintf("exit code %d\n%s", result.ExitCode, output)
	}
	return &Result{Output: output, IsError: result.ExitCode != 0, Truncated: truncated || result.Truncated}, nil
}

type viewImageTool struct {
	exec      SandboxExecutor
	sessionID string
}

func (t *viewImageTool) Name() string { return "view_image" }
func (t *viewImageTool) Description() string {
	return "Load an image file from the sandbox so the model can see it."
}
func (t *viewImageTool) Schema() map[string]any {
	return objectSchema([]string{"path"}, map[string]any{
		"path": stringProperty("Absolute path of the image file"),
	})
}

func (t *viewImageTool) Invoke(ctx context.Context, args map[string]any) (*Result, error) {
	path := stringArg(args, "path")
	if path == "" {
		return Errorf("view_image: path is required"), nil
	}
	content, _, err := t.exec.ReadFile(ctx, t.sessionID, path, 0)
	if err != nil {
		return Errorf("view_image: %v", err), nil
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if !strings.HasPrefix(mimeType, "image/") {
		return Errorf("view_image: %s is not a recognized image type", path), nil
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(content))

	return &Result{
		Output: fmt.Sprintf("image %s (%d bytes, %s)", path, len(content), mimeType),
		Parts: []Part{
			{Type: "text", Text: fmt.Sprintf("image %s (%d bytes, %s)", path, len(content), mimeType)},
			{Type: "image_url", ImageURL: dataURL},
		},
	}, nil
}

type exportFileTool struct {
	exec      SandboxExecutor
	sessionID string
}

func (t *exportFileTool) Name() string { return "export_file" }
func (t *exportFileTool) Description() string {
	return "Export a sandbox file as a downloadable artifact for the user."
}
func (t *exportFileTool) Schema() map[string]any {
	return objectSchema([]string{"path"}, map[string]any{
		"path":     stringProperty("Absolute path of the file to export"),
		"filename": stringProperty("Download filename, defaults to the file's base name"),
	})
}

func (t *exportFileTool) Invoke(ctx context.Context, args map[string]any) (*Result, error) {
	path := stringArg(args, "path")
	if path == "" {
		return Errorf("export_file: path is required"), nil
	}
	artifact, err := t.exec.ExportFile(ctx, t.sessionID, path, stringArg(args, "filename"), "")
	if err != nil {
		return Errorf("export_file: %v", err), nil
	}
	return &Result{Output: fmt.Sprintf("exported %s (%d bytes): %s",
		artifact.Filename, artifact.SizeBytes, *artifact.DownloadURL)}, nil
}

type browserOpenTool struct {
	browser Browser
}

func (t *browserOpenTool) Name() string { return "browser_open" }
func (t *browserOpenTool) Description() string {
	return "Open a URL in the sandboxed browser and return a page summary with a screenshot."
}
func (t *browserOpenTool) Schema() map[string]any {
	return objectSchema([]string{"url"}, map[string]any{
		"url": stringProperty("The URL to open"),
	})
}

func (t *browserOpenTool) Invoke(ctx context.Context, args map[string]any) (*Result, error) {
	url := stringArg(args, "url")
	if url == "" {
		return Errorf("browser_open: url is required"), nil
	}
	summary, screenshot, err := t.browser.Open(ctx, url)
	if err != nil {
		// Policy verdicts go to the run controller, which suspends or ends
		// the run; everything else feeds back to the model.
		var policyErr *computeruse.PolicyError
		if errors.As(err, &policyErr) {
			return nil, err
		}
		return Errorf("browser_open: %v", err), nil
	}
	result := &Result{Output: summary}
	if screenshot != "" {
		result.Parts = []Part{
			{Type: "text", Text: summary},
			{Type: "image_url", ImageURL: "data:image/png;base64," + screenshot},
		}
	}
	return result, nil
}

// askUserTool and requestTakeoverTool are interrupt tools: the run driver
// intercepts them by name before execution. Invoke only runs if that
// interception is missing.

type askUserTool struct{}

func (t *askUserTool) Name() string { return ToolAskUser }
func (t *askUserTool) Description() string {
	return "Ask the user a question and wait for their answer before continuing."
}
func (t *askUserTool) Schema() map[string]any {
	return objectSchema([]string{"question"}, map[string]any{
		"question": stringProperty("The question to ask the user"),
	})
}

func (t *askUserTool) Invoke(ctx context.Context, args map[string]any) (*Result, error) {
	return Errorf("%s is handled by the run controller", ToolAskUser), nil
}

type requestTakeoverTool struct{}

func (t *requestTakeoverTool) Name() string { return ToolRequestTakeover }
func (t *requestTakeoverTool) Description() string {
	return "Pause the run and hand control of the sandbox to the user."
}
func (t *requestTakeoverTool) Schema() map[string]any {
	return objectSchema([]string{"reason"}, map[string]any{
		"reason": stringProperty("Why the user needs to take over"),
	})
}

func (t *requestTakeoverTool) Invoke(ctx context.Context, args map[string]any) (*Result, error) {
	return Errorf("%s is handled by the run controller", ToolRequestTakeover), nil
}
