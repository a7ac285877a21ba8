package llm

import (
	"context"
	"fmt"
	"sync"
)

// ScriptedClient replays a fixed sequence of responses. Test-only stand-in
// for the real provider; the driver tests script entire runs with it.
type ScriptedClient struct {
	mu        sync.Mutex
	responses []*Response
	requests  []*Request
	next      int
}

// NewScriptedClient creates a client that returns the given responses in
// order.
func NewScriptedClient(responses ...*Response) *ScriptedClient {
	return &ScriptedClient{responses: responses}
}

// Complete returns the next scripted response.
func (c *ScriptedClient) Complete(ctx context.Context, req *Request) (*Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests = append(c.requests, req)
	if c.next >= len(c.responses) {
		return nil, fmt.Errorf("scripted client exhausted after %d responses", len(c.responses))
	}
	resp := c.responses[c.next]
	c.next++
	return resp, nil
}

// Requests returns every request seen so far.
func (c *ScriptedClient) Requests() []*Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*Request(nil), c.requests...)
}
