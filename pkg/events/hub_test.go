package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeListener records LISTEN/UNLISTEN calls for assertions.
type fakeListener struct {
	mu          sync.Mutex
	listens     []string
	unlistens   []string
	subscribeCh chan string
}

func (f *fakeListener) Subscribe(ctx context.Context, channel string) error {
	f.mu.Lock()
	f.listens = append(f.listens, channel)
	f.mu.Unlock()
	return nil
}

func (f *fakeListener) Unsubscribe(ctx context.Context, channel string) error {
	f.mu.Lock()
	f.unlistens = append(f.unlistens, channel)
	f.mu.Unlock()
	if f.subscribeCh != nil {
		f.subscribeCh <- channel
	}
	return nil
}

func (f *fakeListener) listenCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listens)
}

func TestHub_SubscribeBroadcast(t *testing.T) {
	hub := NewHub()

	sub, err := hub.Subscribe(context.Background(), "stream:s1")
	require.NoError(t, err)
	defer hub.Unsubscribe(sub)

	hub.Broadcast("stream:s1", []byte(`{"type":"status"}`))

	select {
	case evt := <-sub.Events():
		assert.JSONEq(t, `{"type":"status"}`, string(evt))
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestHub_BroadcastOnlyMatchingChannel(t *testing.T) {
	hub := NewHub()

	s1, err := hub.Subscribe(context.Background(), "stream:s1")
	require.NoError(t, err)
	defer hub.Unsubscribe(s1)
	s2, err := hub.Subscribe(context.Background(), "stream:s2")
	require.NoError(t, err)
	defer hub.Unsubscribe(s2)

	hub.Broadcast("stream:s1", []byte(`{"n":1}`))

	select {
	case <-s1.Events():
	case <-time.After(time.Second):
		t.Fatal("subscriber on matching channel got nothing")
	}
	select {
	case evt := <-s2.Events():
		t.Fatalf("unexpected event on other channel: %s", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_ListenOnFirstSubscriberOnly(t *testing.T) {
	hub := NewHub()
	fl := &fakeListener{}
	hub.SetListener(fl)

	a, err := hub.Subscribe(context.Background(), "stream:s1")
	require.NoError(t, err)
	b, err := hub.Subscribe(context.Background(), "stream:s1")
	require.NoError(t, err)

	assert.Equal(t, 1, fl.listenCount())
	assert.Equal(t, 2, hub.SubscriberCount("stream:s1"))

	hub.Unsubscribe(a)
	hub.Unsubscribe(b)
	assert.Equal(t, 0, hub.SubscriberCount("stream:s1"))
}

func TestHub_UnlistenAfterLastSubscriber(t *testing.T) {
	hub := NewHub()
	fl := &fakeListener{subscribeCh: make(chan string, 1)}
	hub.SetListener(fl)

	sub, err := hub.Subscribe(context.Background(), "stream:s1")
	require.NoError(t, err)
	hub.Unsubscribe(sub)

	select {
	case ch := <-fl.subscribeCh:
		assert.Equal(t, "stream:s1", ch)
	case <-time.After(time.Second):
		t.Fatal("UNLISTEN never issued")
	}
}

func TestHub_LaggedSubscriberClosed(t *testing.T) {
	hub := NewHub()

	sub, err := hub.Subscribe(context.Background(), "stream:s1")
	require.NoError(t, err)

	// Fill the buffer without draining, then overflow it.
	for i := 0; i < subscriptionBuffer+1; i++ {
		hub.Broadcast("stream:s1", []byte(`{}`))
	}

	assert.Equal(t, 0, hub.SubscriberCount("stream:s1"))

	// Channel must be drained and closed.
	closed := false
	for !closed {
		select {
		case _, ok := <-sub.Events():
			if !ok {
				closed = true
			}
		case <-time.After(time.Second):
			t.Fatal("subscription channel never closed")
		}
	}
}

func TestHub_Close(t *testing.T) {
	hub := NewHub()

	sub, err := hub.Subscribe(context.Background(), "stream:s1")
	require.NoError(t, err)

	hub.Close()

	_, ok := <-sub.Events()
	assert.False(t, ok)
	assert.Equal(t, 0, hub.SubscriberCount("stream:s1"))
}
