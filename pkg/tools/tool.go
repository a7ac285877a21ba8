// Package tools wraps sandbox operations as model-callable tools. A tool's
// contract failures (pattern not found, bad path) come back inside the Result
// with IsError set, so the model can react; only infrastructure failures are
// returned as errors.
package tools

import (
	"context"
	"fmt"
	"sort"

	"github.com/astraforge/astraforge/pkg/llm"
)

// Output byte caps per tool. Content past the cap is dropped with a marker so
// a runaway command cannot flood the transcript.
const (
	ShellOutputCap  = 32 << 10
	ReadOutputCap   = 64 << 10
	ListOutputCap   = 16 << 10
	SearchOutputCap = 16 << 10
)

// Interrupt tool names. The run driver intercepts these by name and suspends
// the run instead of invoking them.
const (
	ToolAskUser         = "ask_user"
	ToolRequestTakeover = "request_takeover"
)

// IsInterruptTool reports whether a tool call must suspend the run.
func IsInterruptTool(name string) bool {
	return name == ToolAskUser || name == ToolRequestTakeover
}

// Part is one piece of a multi-part tool result. view_image returns a text
// part plus an image_url part with a data URL.
type Part struct {
	Type     string `json:"type"` // "text" or "image_url"
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// Result is a tool invocation outcome.
type Result struct {
	// Output is the string fed back to the model.
	Output string
	// Parts, when set, is the structured multi-part payload behind Output.
	Parts []Part
	// IsError marks a contract failure the model should react to.
	IsError bool
	// Truncated reports whether Output was cut at the tool's byte cap.
	Truncated bool
}

// Errorf builds a contract-failure result.
func Errorf(format string, args ...any) *Result {
	return &Result{Output: fmt.Sprintf(format, args...), IsError: true}
}

// Tool is one model-callable capability.
type Tool interface {
	Name() string
	Description() string
	// Schema is the JSON schema of the tool's arguments.
	Schema() map[string]any
	Invoke(ctx context.Context, args map[string]any) (*Result, error)
}

// Registry holds the tools available to one session's run.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool, replacing any previous tool with the same name.
func (r *Registry) Register(t Tool) {
	r.tools[t.Name()] = t
}

// Get looks a tool up by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions renders the registry for a model request, in name order.
func (r *Registry) Definitions() []llm.ToolDefinition {
	defs := make([]llm.ToolDefinition, 0, len(r.tools))
	for _, name := range r.Names() {
		t := r.tools[name]
		defs = append(defs, llm.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.Schema(),
		})
	}
	return defs
}

// capOutput truncates s to at most limit bytes, appending a marker when it
// does.
func capOutput(s string, limit int) (string, bool) {
	if limit <= 0 || len(s) <= limit {
		return s, false
	}
	return s[:limit] + "\n... [output truncated]", true
}

// stringArg reads a string argument, tolerating absence.
func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}

// intArg reads a numeric argument. JSON numbers decode as float64.
func intArg(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
