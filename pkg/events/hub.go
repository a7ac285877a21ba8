package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// listenTimeout bounds how long a LISTEN command may block when the first
// subscriber arrives on a channel. Without it a stalled connection would
// block the subscribing request indefinitely.
const listenTimeout = 10 * time.Second

// subscriptionBuffer is the per-subscriber channel depth. A subscriber that
// falls this far behind is closed; SSE clients reconnect and resume from
// their last seq.
const subscriptionBuffer = 256

// ChannelListener is the backend hook the Hub uses to start and stop
// receiving a channel. The PostgreSQL NotifyListener implements it; the
// in-memory backend needs none.
type ChannelListener interface {
	Subscribe(ctx context.Context, channel string) error
	Unsubscribe(ctx context.Context, channel string) error
}

// Subscription is one live consumer of a channel. Events arrives on C until
// Close; a closed C means the subscriber lagged or the hub shut down.
type Subscription struct {
	ID      string
	Channel string
	ch      chan []byte

	closeOnce sync.Once
}

// Events returns the delivery channel.
func (s *Subscription) Events() <-chan []byte {
	return s.ch
}

func (s *Subscription) close() {
	s.closeOnce.Do(func() { close(s.ch) })
}

// Hub fans broadcast events out to local subscribers. Each process has one
// Hub; cross-process delivery happens through the ChannelListener backend.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[string]*Subscription // channel → sub id → sub

	listenerMu sync.RWMutex
	listener   ChannelListener
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[string]*Subscription),
	}
}

// SetListener installs the backend listener. Called once during startup,
// after both the Hub and the listener exist.
func (h *Hub) SetListener(l ChannelListener) {
	h.listenerMu.Lock()
	defer h.listenerMu.Unlock()
	h.listener = l
}

// Subscribe registers a consumer for a channel, starting the backend LISTEN
// when this is the channel's first subscriber. LISTEN completes before
// Subscribe returns, so a backlog replay done afterwards cannot race with
// live delivery.
func (h *Hub) Subscribe(ctx context.Context, channel string) (*Subscription, error) {
	sub := &Subscription{
		ID:      uuid.New().String(),
		Channel: channel,
		ch:      make(chan []byte, subscriptionBuffer),
	}

	h.mu.Lock()
	needsListen := false
	if _, exists := h.subs[channel]; !exists {
		h.subs[channel] = make(map[string]*Subscription)
		needsListen = true
	}
	h.subs[channel][sub.ID] = sub
	h.mu.Unlock()

	if needsListen {
		h.listenerMu.RLock()
		l := h.listener
		h.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(ctx, listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				h.Unsubscribe(sub)
				return nil, err
			}
		}
	}

	return sub, nil
}

// Unsubscribe removes a consumer, stopping the backend LISTEN when the last
// one leaves. The UNLISTEN goroutine re-checks for new subscribers first so a
// rapid unsubscribe/resubscribe cycle does not drop the LISTEN.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	channelEmpty := false
	if subs, exists := h.subs[sub.Channel]; exists {
		delete(subs, sub.ID)
		if len(subs) == 0 {
			delete(h.subs, sub.Channel)
			channelEmpty = true
		}
	}
	h.mu.Unlock()

	sub.close()

	if channelEmpty {
		h.listenerMu.RLock()
		l := h.listener
		h.listenerMu.RUnlock()
		if l != nil {
			channel := sub.Channel
			go func() {
				h.mu.RLock()
				_, resubscribed := h.subs[channel]
				h.mu.RUnlock()
				if resubscribed {
					return
				}
				if err := l.Unsubscribe(context.Background(), channel); err != nil {
					slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
				}
			}()
		}
	}
}

// Broadcast delivers an event to every local subscriber of a channel.
// Subscribers whose buffers are full are closed rather than skipped: a gap in
// an ordered stream is worse than a reconnect.
func (h *Hub) Broadcast(channel string, event []byte) {
	h.mu.RLock()
	subs := make([]*Subscription, 0, len(h.subs[channel]))
	for _, sub := range h.subs[channel] {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	var lagged []*Subscription
	for _, sub := range subs {
		select {
		case sub.ch <- event:
		default:
			slog.Warn("Dropping lagged subscriber", "channel", channel, "subscription_id", sub.ID)
			lagged = append(lagged, sub)
		}
	}
	for _, sub := range lagged {
		h.Unsubscribe(sub)
	}
}

// SubscriberCount returns the number of subscribers for a channel.
func (h *Hub) SubscriberCount(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[channel])
}

// Close drops all subscriptions, closing their channels.
func (h *Hub) Close() {
	h.mu.Lock()
	all := h.subs
	h.subs = make(map[string]map[string]*Subscription)
	h.mu.Unlock()

	for _, subs := range all {
		for _, sub := range subs {
			sub.close()
		}
	}
}
