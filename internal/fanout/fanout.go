package fanout

import (
	"sync"

	"carbid/utils"
)

// Event names carried on both realtime transports.
const (
	EventTopUpdated   = "top-updated"
	EventClosed       = "closed"
	EventNotification = "notification"
)

// VehicleChannel returns the channel key for auction-specific updates.
func VehicleChannel(vehicleID string) string { return "vehicle:" + vehicleID }

// UserChannel returns the channel key for a user's personal notifications.
func UserChannel(userID string) string { return "user:" + userID }

// TopUpdatedPayload announces a new highest bid on a vehicle.
type TopUpdatedPayload struct {
	VehicleID string `json:"vehicleId"`
	Top       int64  `json:"top"`
	BidID     string `json:"bidId"`
}

// ClosedPayload announces an auction closing. Winner fields are null when
// the auction received no bids, so subscribers stop expecting updates.
type ClosedPayload struct {
	VehicleID   string  `json:"vehicleId"`
	WinnerBidID *string `json:"winnerBidId"`
	Amount      *int64  `json:"amount"`
}

// NotificationPayload mirrors a persisted notification on the user channel.
type NotificationPayload struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

// Event is one state-change notification delivered to channel subscribers.
type Event struct {
	Name    string `json:"event"`
	Payload any    `json:"payload"`
}

// subscriberBuffer bounds each listener's queue. A full queue drops the
// event rather than stalling the publisher or other subscribers.
const subscriberBuffer = 16

// Hub is an in-process, best-effort event fan-out: no durability, no
// replay, no delivery guarantee. One Hub instance is created at process
// start and injected into request handlers and the background closer.
// Multi-process deployments need an external pub/sub backbone to fan
// events across processes; the in-process registry alone does not scale
// past one process.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

// NewHub creates an empty fan-out hub.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[string]map[chan Event]struct{})}
}

// Publish enqueues the event to every current subscriber of the channel and
// returns immediately. Slow consumers miss events instead of blocking.
func (h *Hub) Publish(channel, name string, payload any) {
	ev := Event{Name: name, Payload: payload}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers[channel] {
		select {
		case ch <- ev:
		default:
			utils.Warn("fanout: dropping event for slow subscriber", map[string]any{
				"channel": channel,
				"event":   name,
			})
		}
	}
}

// Subscribe registers a listener for a channel. The returned cancel func
// deregisters the listener and closes the event channel; it is safe to call
// concurrently with Publish.
func (h *Hub) Subscribe(channel string) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	subs, ok := h.subscribers[channel]
	if !ok {
		subs = make(map[chan Event]struct{})
		h.subscribers[channel] = subs
	}
	subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers[channel], ch)
			if len(h.subscribers[channel]) == 0 {
				delete(h.subscribers, channel)
			}
			// Publish sends while holding the read lock, so nothing can be
			// mid-send once we hold the write lock here.
			close(ch)
			h.mu.Unlock()
		})
	}

	return ch, cancel
}

// SubscriberCount reports the number of current listeners on a channel.
func (h *Hub) SubscriberCount(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[channel])
}
