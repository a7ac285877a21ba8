package events

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishDelivers(t *testing.T) {
	hub := NewHub()
	bus := NewMemoryBus(hub, 512, 6*time.Hour)

	sub, err := hub.Subscribe(context.Background(), StreamChannel("s1"))
	require.NoError(t, err)
	defer hub.Unsubscribe(sub)

	payload := StatusPayload{Base: NewBase(EventTypeStatus, "s1"), Entity: "session", Status: "ready"}
	require.NoError(t, bus.Publish(context.Background(), "s1", payload))

	select {
	case raw := <-sub.Events():
		var got map[string]any
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, EventTypeStatus, got["type"])
		assert.Equal(t, "ready", got["status"])
		assert.EqualValues(t, 1, got["seq"])
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestMemoryBus_OrderingPreserved(t *testing.T) {
	hub := NewHub()
	bus := NewMemoryBus(hub, 512, 6*time.Hour)

	sub, err := hub.Subscribe(context.Background(), StreamChannel("s1"))
	require.NoError(t, err)
	defer hub.Unsubscribe(sub)

	const n = 100
	for i := 0; i < n; i++ {
		payload := LogPayload{Base: NewBase(EventTypeLog, "s1"), Line: fmt.Sprintf("line-%d", i)}
		require.NoError(t, bus.Publish(context.Background(), "s1", payload))
	}

	var lastSeq float64
	for i := 0; i < n; i++ {
		select {
		case raw := <-sub.Events():
			var got map[string]any
			require.NoError(t, json.Unmarshal(raw, &got))
			seq := got["seq"].(float64)
			assert.Greater(t, seq, lastSeq, "events delivered out of order")
			lastSeq = seq
			assert.Equal(t, fmt.Sprintf("line-%d", i), got["line"])
		case <-time.After(time.Second):
			t.Fatalf("event %d never delivered", i)
		}
	}
}

func TestMemoryBus_BacklogCapped(t *testing.T) {
	hub := NewHub()
	bus := NewMemoryBus(hub, 8, 6*time.Hour)

	for i := 0; i < 20; i++ {
		payload := LogPayload{Base: NewBase(EventTypeLog, "s1"), Line: fmt.Sprintf("line-%d", i)}
		require.NoError(t, bus.Publish(context.Background(), "s1", payload))
	}

	events, err := bus.EventsSince(context.Background(), StreamChannel("s1"), 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 8)
	// Oldest events are evicted; the ring keeps the newest 8.
	assert.Equal(t, "line-12", events[0].Payload["line"])
	assert.Equal(t, "line-19", events[7].Payload["line"])
}

func TestMemoryBus_EventsSinceSeq(t *testing.T) {
	hub := NewHub()
	bus := NewMemoryBus(hub, 512, 6*time.Hour)

	for i := 0; i < 10; i++ {
		payload := LogPayload{Base: NewBase(EventTypeLog, "s1"), Line: fmt.Sprintf("line-%d", i)}
		require.NoError(t, bus.Publish(context.Background(), "s1", payload))
	}

	events, err := bus.EventsSince(context.Background(), StreamChannel("s1"), 7, 0)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.EqualValues(t, 8, events[0].Seq)

	limited, err := bus.EventsSince(context.Background(), StreamChannel("s1"), 0, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestMemoryBus_TransientNotInBacklog(t *testing.T) {
	hub := NewHub()
	bus := NewMemoryBus(hub, 512, 6*time.Hour)

	require.NoError(t, bus.PublishTransient(context.Background(), "s1",
		HeartbeatPayload{Base: NewBase(EventTypeHeartbeat, "s1")}))

	events, err := bus.EventsSince(context.Background(), StreamChannel("s1"), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestMemoryBus_Prune(t *testing.T) {
	hub := NewHub()
	bus := NewMemoryBus(hub, 512, 10*time.Millisecond)

	require.NoError(t, bus.Publish(context.Background(), "s1",
		LogPayload{Base: NewBase(EventTypeLog, "s1"), Line: "old"}))

	time.Sleep(20 * time.Millisecond)
	pruned := bus.Prune()
	assert.Equal(t, 1, pruned)

	events, err := bus.EventsSince(context.Background(), StreamChannel("s1"), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, events)
}
