package graph

import (
	"context"
	"sync"
)

// Inbox sentinels. Cancel unblocks a waiting run so it can abort; UserDone
// resumes a paused run with no message text.
const (
	SentinelCancel   = "cancel"
	SentinelUserDone = "user_done"
)

// Inbox delivers human input to runs blocked in the interrupt node. One
// buffered channel per session; Push never blocks the HTTP handler.
type Inbox struct {
	mu       sync.Mutex
	channels map[string]chan string
}

const inboxBuffer = 16

// NewInbox creates an empty inbox registry.
func NewInbox() *Inbox {
	return &Inbox{channels: make(map[string]chan string)}
}

func (i *Inbox) channel(sessionID string) chan string {
	i.mu.Lock()
	defer i.mu.Unlock()
	ch, ok := i.channels[sessionID]
	if !ok {
		ch = make(chan string, inboxBuffer)
		i.channels[sessionID] = ch
	}
	return ch
}

// Push delivers a message to a session's inbox. Returns false when the
// buffer is full.
func (i *Inbox) Push(sessionID, message string) bool {
	select {
	case i.channel(sessionID) <- message:
		return true
	default:
		return false
	}
}

// Pop blocks until a message arrives or the context ends.
func (i *Inbox) Pop(ctx context.Context, sessionID string) (string, error) {
	select {
	case msg := <-i.channel(sessionID):
		return msg, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Drop discards a session's channel, releasing any buffered messages.
func (i *Inbox) Drop(sessionID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.channels, sessionID)
}
