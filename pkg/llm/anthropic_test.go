package llm

import (
	"context"
	"testing"

	"github.com/astraforge/astraforge/pkg/config"
	"github.com/astraforge/astraforge/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnthropicClient_RequiresAPIKey(t *testing.T) {
	_, err := NewAnthropicClient(&config.LLMConfig{})
	require.Error(t, err)
}

func TestConvertMessages(t *testing.T) {
	msgs, err := convertMessages([]models.Message{
		{Role: models.RoleSystem, Content: "ignored here"},
		{Role: models.RoleUser, Content: "do the thing"},
		{Role: models.RoleAssistant, Content: "running a tool", ToolCalls: []models.ToolCall{
			{ID: "tc1", Name: "shell", Arguments: map[string]any{"command": "ls"}},
		}},
		{Role: models.RoleTool, ToolCallID: "tc1", ToolName: "shell", Content: "file.txt"},
	})
	require.NoError(t, err)
	// System is dropped; user, assistant and tool-result remain.
	assert.Len(t, msgs, 3)
}

func TestConvertMessages_UnknownRole(t *testing.T) {
	_, err := convertMessages([]models.Message{{Role: "oracle", Content: "?"}})
	require.Error(t, err)
}

func TestConvertMessages_EmptyAssistantSkipped(t *testing.T) {
	msgs, err := convertMessages([]models.Message{
		{Role: models.RoleAssistant},
		{Role: models.RoleUser, Content: "hi"},
	})
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestConvertTools(t *testing.T) {
	tools, err := convertTools([]ToolDefinition{{
		Name:        "shell",
		Description: "Run a shell command",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"command": map[string]any{"type": "string"},
			},
			"required": []string{"command"},
		},
	}})
	require.NoError(t, err)
	require.Len(t, tools, 1)
	require.NotNil(t, tools[0].OfTool)
	assert.Equal(t, "shell", tools[0].OfTool.Name)
}

func TestScriptedClient(t *testing.T) {
	client := NewScriptedClient(
		&Response{Content: "first"},
		&Response{Content: "second"},
	)

	resp, err := client.Complete(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Content)

	resp, err = client.Complete(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, "second", resp.Content)

	_, err = client.Complete(context.Background(), &Request{})
	require.Error(t, err)
	assert.Len(t, client.Requests(), 3)
}
