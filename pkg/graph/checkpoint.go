package graph

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/astraforge/astraforge/ent"
	"github.com/astraforge/astraforge/ent/checkpoint"
	"github.com/astraforge/astraforge/pkg/database"
)

// Checkpointer persists graph state between node transitions. Load returns
// (nil, "", nil) when no checkpoint exists for the conversation.
type Checkpointer interface {
	Save(ctx context.Context, conversationID string, state *State, nextNode string) error
	Load(ctx context.Context, conversationID string) (*State, string, error)
	Delete(ctx context.Context, conversationID string) error
}

// EntCheckpointer stores checkpoints in the database, one row per
// conversation.
type EntCheckpointer struct {
	db *database.Client
}

// NewEntCheckpointer creates the durable checkpointer.
func NewEntCheckpointer(db *database.Client) *EntCheckpointer {
	return &EntCheckpointer{db: db}
}

func (c *EntCheckpointer) Save(ctx context.Context, conversationID string, state *State, nextNode string) error {
	encoded, err := state.Encode()
	if err != nil {
		return err
	}

	existing, err := c.db.Checkpoint.Query().
		Where(checkpoint.ConversationID(conversationID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = c.db.Checkpoint.UpdateOneID(existing.ID).
			SetState(encoded).
			SetNextNode(nextNode).
			Save(ctx)
	case ent.IsNotFound(err):
		_, err = c.db.Checkpoint.Create().
			SetID(uuid.New().String()).
			SetConversationID(conversationID).
			SetState(encoded).
			SetNextNode(nextNode).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to save checkpoint for %s: %w", conversationID, err)
	}
	return nil
}

func (c *EntCheckpointer) Load(ctx context.Context, conversationID string) (*State, string, error) {
	row, err := c.db.Checkpoint.Query().
		Where(checkpoint.ConversationID(conversationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("failed to load checkpoint for %s: %w", conversationID, err)
	}
	state, err := DecodeState(row.State)
	if err != nil {
		return nil, "", err
	}
	return state, row.NextNode, nil
}

func (c *EntCheckpointer) Delete(ctx context.Context, conversationID string) error {
	_, err := c.db.Checkpoint.Delete().
		Where(checkpoint.ConversationID(conversationID)).
		Exec(ctx)
	return err
}

// MemoryCheckpointer keeps checkpoints in process memory, for tests and
// single-process runs without durability requirements.
type MemoryCheckpointer struct {
	mu    sync.Mutex
	rows  map[string]map[string]interface{}
	nexts map[string]string
}

// NewMemoryCheckpointer creates the in-memory checkpointer.
func NewMemoryCheckpointer() *MemoryCheckpointer {
	return &MemoryCheckpointer{
		rows:  make(map[string]map[string]interface{}),
		nexts: make(map[string]string),
	}
}

func (c *MemoryCheckpointer) Save(_ context.Context, conversationID string, state *State, nextNode string) error {
	encoded, err := state.Encode()
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows[conversationID] = encoded
	c.nexts[conversationID] = nextNode
	return nil
}

func (c *MemoryCheckpointer) Load(_ context.Context, conversationID string) (*State, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	row, ok := c.rows[conversationID]
	if !ok {
		return nil, "", nil
	}
	state, err := DecodeState(row)
	if err != nil {
		return nil, "", err
	}
	return state, c.nexts[conversationID], nil
}

func (c *MemoryCheckpointer) Delete(_ context.Context, conversationID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.rows, conversationID)
	delete(c.nexts, conversationID)
	return nil
}
