package fanout

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscribers(t *testing.T) {
	hub := NewHub()

	events, cancel := hub.Subscribe(VehicleChannel("vehicle1"))
	defer cancel()

	other, cancelOther := hub.Subscribe(VehicleChannel("vehicle2"))
	defer cancelOther()

	hub.Publish(VehicleChannel("vehicle1"), EventTopUpdated, TopUpdatedPayload{
		VehicleID: "vehicle1",
		Top:       201_000,
		BidID:     "bid1",
	})

	select {
	case ev := <-events:
		require.Equal(t, EventTopUpdated, ev.Name)
		payload, ok := ev.Payload.(TopUpdatedPayload)
		require.True(t, ok)
		require.Equal(t, int64(201_000), payload.Top)
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive event")
	}

	// The other vehicle's subscriber sees nothing.
	select {
	case ev := <-other:
		t.Fatalf("unexpected event on unrelated channel: %+v", ev)
	default:
	}
}

func TestHub_CancelDeregistersAndCloses(t *testing.T) {
	hub := NewHub()

	events, cancel := hub.Subscribe(UserChannel("user1"))
	require.Equal(t, 1, hub.SubscriberCount(UserChannel("user1")))

	cancel()
	require.Zero(t, hub.SubscriberCount(UserChannel("user1")))

	_, open := <-events
	require.False(t, open, "cancel closes the event channel")

	// Cancel is idempotent.
	cancel()

	// Publishing to a channel with no subscribers is a no-op.
	hub.Publish(UserChannel("user1"), EventNotification, nil)
}

func TestHub_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub()

	events, cancel := hub.Subscribe(VehicleChannel("vehicle1"))
	defer cancel()

	// Overfill the subscriber buffer; Publish must never block.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBuffer*2; i++ {
			hub.Publish(VehicleChannel("vehicle1"), EventTopUpdated, i)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	require.Len(t, events, subscriberBuffer, "excess events are dropped, not queued")
}

func TestHub_ConcurrentSubscribePublishCancel(t *testing.T) {
	hub := NewHub()
	channel := VehicleChannel("vehicle1")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			events, cancel := hub.Subscribe(channel)
			// Drain until cancel closes the channel.
			go func() {
				for range events {
				}
			}()
			time.Sleep(time.Millisecond)
			cancel()
		}()

		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				hub.Publish(channel, EventTopUpdated, j)
			}
		}()
	}

	wg.Wait()
	require.Zero(t, hub.SubscriberCount(channel))
}
