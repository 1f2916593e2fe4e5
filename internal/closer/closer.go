package closer

import (
	"context"
	"sync"
	"time"

	"carbid/internal/fanout"
	"carbid/internal/models"
	"carbid/internal/repository"
	"carbid/utils"
)

// Publisher delivers state-change events to realtime subscribers.
type Publisher interface {
	Publish(channel, event string, payload any)
}

const sweepTimeout = 30 * time.Second

// Closer is the recurring background task that finalizes expired auctions.
// It runs decoupled from request handling; at most one sweep executes at a
// time and an interval firing while a sweep is still running is skipped.
type Closer struct {
	repo     repository.AuctionDB
	events   Publisher
	interval time.Duration

	sweepMu sync.Mutex
	stop    chan struct{}
	done    chan struct{}
}

// New creates a Closer sweeping at the given interval.
func New(repo repository.AuctionDB, events Publisher, interval time.Duration) *Closer {
	return &Closer{
		repo:     repo,
		events:   events,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the sweep loop in a background goroutine.
func (c *Closer) Start() {
	go func() {
		defer close(c.done)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
				if err := c.Sweep(ctx); err != nil {
					utils.Error("auction sweep failed", map[string]any{"error": err.Error()})
				}
				cancel()
			case <-c.stop:
				return
			}
		}
	}()
}

// Stop halts the sweep loop and waits for it to exit.
func (c *Closer) Stop() {
	close(c.stop)
	<-c.done
}

// Sweep closes every expired active auction once and publishes the
// resulting events. If a sweep is already running the call is skipped; a
// failed sweep is abandoned and the next interval catches the same rows.
func (c *Closer) Sweep(ctx context.Context) error {
	if !c.sweepMu.TryLock() {
		utils.Warn("skipping auction sweep: previous sweep still running", nil)
		return nil
	}
	defer c.sweepMu.Unlock()

	outcomes, err := c.repo.CloseExpiredAuctions(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	for _, outcome := range outcomes {
		PublishClosure(c.events, outcome)
	}

	if len(outcomes) > 0 {
		utils.Info("auction sweep closed expired auctions", map[string]any{"count": len(outcomes)})
	}
	return nil
}

// PublishClosure emits the events for one auction closure: the vehicle
// channel always gets a closed event (winner null when no bids), and the
// winner's personal channel mirrors the persisted auction_won notification.
// Shared by the background sweep and the seller-initiated close.
func PublishClosure(events Publisher, outcome models.ClosureOutcome) {
	events.Publish(fanout.VehicleChannel(outcome.VehicleID), fanout.EventClosed, fanout.ClosedPayload{
		VehicleID:   outcome.VehicleID,
		WinnerBidID: outcome.WinnerBidID,
		Amount:      outcome.Amount,
	})

	if outcome.WinnerUserID != nil {
		events.Publish(fanout.UserChannel(*outcome.WinnerUserID), fanout.EventNotification, fanout.NotificationPayload{
			Type: string(models.NotificationAuctionWon),
			Payload: map[string]any{
				"vehicle_id": outcome.VehicleID,
				"amount":     *outcome.Amount,
			},
		})
	}
}
