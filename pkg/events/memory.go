package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// BacklogEvent is one stored event, ordered by Seq within its channel.
type BacklogEvent struct {
	Seq       int64
	Payload   map[string]any
	CreatedAt time.Time
}

// Backlog replays persisted events for reconnecting subscribers. The
// PostgreSQL backend implements it over the events table; MemoryBus keeps a
// ring per channel.
type Backlog interface {
	EventsSince(ctx context.Context, channel string, sinceSeq int64, limit int) ([]BacklogEvent, error)
}

// MemoryBus is the single-process event backend: it is Publisher, Backlog
// and fanout in one, with a bounded per-channel ring and TTL expiry. Used
// when no database-backed bus is configured, and throughout the test suite.
type MemoryBus struct {
	hub *Hub

	mu      sync.Mutex
	rings   map[string][]BacklogEvent
	nextSeq int64

	backlogSize int
	ttl         time.Duration
}

// NewMemoryBus creates a bus with the given backlog size and event TTL per
// channel.
func NewMemoryBus(hub *Hub, backlogSize int, ttl time.Duration) *MemoryBus {
	if backlogSize <= 0 {
		backlogSize = 512
	}
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	return &MemoryBus{
		hub:         hub,
		rings:       make(map[string][]BacklogEvent),
		backlogSize: backlogSize,
		ttl:         ttl,
	}
}

// Publish stores the payload in the channel ring and fans it out. Seq is
// assigned under the lock, so delivery order matches backlog order.
func (b *MemoryBus) Publish(ctx context.Context, sessionID string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("failed to decode event payload: %w", err)
	}

	channel := StreamChannel(sessionID)

	b.mu.Lock()
	b.nextSeq++
	seq := b.nextSeq
	m["seq"] = seq

	ring := append(b.rings[channel], BacklogEvent{
		Seq:       seq,
		Payload:   m,
		CreatedAt: time.Now(),
	})
	if len(ring) > b.backlogSize {
		ring = ring[len(ring)-b.backlogSize:]
	}
	b.rings[channel] = ring

	enriched, err := json.Marshal(m)
	if err != nil {
		b.mu.Unlock()
		return fmt.Errorf("failed to marshal enriched payload: %w", err)
	}
	// Broadcast inside the lock so concurrent publishers cannot reorder
	// their fanout relative to their seq assignment.
	b.hub.Broadcast(channel, enriched)
	b.mu.Unlock()

	return nil
}

// PublishTransient fans the payload out without touching the backlog.
func (b *MemoryBus) PublishTransient(ctx context.Context, sessionID string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	b.hub.Broadcast(StreamChannel(sessionID), raw)
	return nil
}

// EventsSince returns up to limit events with Seq > sinceSeq, oldest first.
func (b *MemoryBus) EventsSince(ctx context.Context, channel string, sinceSeq int64, limit int) ([]BacklogEvent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cutoff := time.Now().Add(-b.ttl)
	var out []BacklogEvent
	for _, evt := range b.rings[channel] {
		if evt.Seq <= sinceSeq || evt.CreatedAt.Before(cutoff) {
			continue
		}
		out = append(out, evt)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// Prune drops expired events and empty channels. The reaper calls this on
// its cleanup tick.
func (b *MemoryBus) Prune() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	cutoff := time.Now().Add(-b.ttl)
	pruned := 0
	for channel, ring := range b.rings {
		keep := ring[:0]
		for _, evt := range ring {
			if evt.CreatedAt.Before(cutoff) {
				pruned++
				continue
			}
			keep = append(keep, evt)
		}
		if len(keep) == 0 {
			delete(b.rings, channel)
		} else {
			b.rings[channel] = keep
		}
	}
	return pruned
}
