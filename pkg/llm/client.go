// Package llm abstracts the language model behind the agent graph. The
// production implementation talks to the Anthropic Messages API; tests use a
// scripted client.
package llm

import (
	"context"

	"github.com/astraforge/astraforge/pkg/models"
)

// ToolDefinition describes one tool the model may call.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// Request is one model turn.
type Request struct {
	System    string
	Messages  []models.Message
	Tools     []ToolDefinition
	MaxTokens int
}

// Response is the model's reply. ToolCalls is non-empty when the model wants
// tools executed before it continues.
type Response struct {
	Content    string
	ToolCalls  []models.ToolCall
	StopReason string
}

// Client produces one model completion per call.
type Client interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
}
