package bidding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carbid/internal/auctionerrors"
	"carbid/internal/fanout"
	"carbid/internal/models"
	"carbid/internal/repository"
	"carbid/utils"
)

// Publisher delivers state-change events to realtime subscribers.
type Publisher interface {
	Publish(channel, event string, payload any)
}

const (
	maxInsertAttempts = 3
	retryBackoff      = 350 * time.Millisecond
	defaultLockWait   = 5 * time.Second
)

// BiddingService admits bids into the auction ledger. It is the critical
// path guarding auction correctness under concurrent bidders: a per-vehicle
// lock is held across the whole read-validate-write sequence, so two bids
// can never both clear a stale floor.
type BiddingService struct {
	repo     repository.AuctionDB
	events   Publisher
	locks    *vehicleLocks
	lockWait time.Duration
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB, events Publisher) *BiddingService {
	return &BiddingService{
		repo:     repo,
		events:   events,
		locks:    newVehicleLocks(),
		lockWait: defaultLockWait,
	}
}

// SetLockWait overrides the bounded per-vehicle lock wait.
func (s *BiddingService) SetLockWait(d time.Duration) { s.lockWait = d }

// PlaceBid validates and records a user's bid on a vehicle. On success it
// returns the bid together with the next minimum acceptable amount, and
// publishes a top-updated event once the lock is released.
func (s *BiddingService) PlaceBid(ctx context.Context, vehicleID, bidderID string, amount int64) (models.Bid, int64, error) {
	if vehicleID == "" || bidderID == "" {
		return models.Bid{}, 0, fmt.Errorf("service: %w - missing vehicleID or bidderID", auctionerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return models.Bid{}, 0, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	bid, nextMinRequired, err := s.admit(ctx, vehicleID, bidderID, amount)
	if err != nil {
		return models.Bid{}, 0, err
	}

	s.events.Publish(fanout.VehicleChannel(vehicleID), fanout.EventTopUpdated, fanout.TopUpdatedPayload{
		VehicleID: vehicleID,
		Top:       bid.Amount,
		BidID:     bid.BidID,
	})

	return bid, nextMinRequired, nil
}

// admit runs the locked read-validate-write sequence, retrying the whole
// sequence on transient storage contention.
func (s *BiddingService) admit(ctx context.Context, vehicleID, bidderID string, amount int64) (models.Bid, int64, error) {
	release, ok := s.locks.acquire(vehicleID, s.lockWait)
	if !ok {
		return models.Bid{}, 0, fmt.Errorf("service: bid lock wait for vehicle %s: %w", vehicleID, auctionerrors.ErrStorageBusy)
	}
	defer release()

	var bid models.Bid
	var nextMinRequired int64
	var err error
	for attempt := 1; attempt <= maxInsertAttempts; attempt++ {
		bid, nextMinRequired, err = s.admitOnce(ctx, vehicleID, bidderID, amount)
		if err == nil || !errors.Is(err, auctionerrors.ErrStorageBusy) {
			return bid, nextMinRequired, err
		}

		utils.Warn("retrying bid insert after storage contention", map[string]any{
			"vehicle_id": vehicleID,
			"attempt":    attempt,
		})
		if attempt < maxInsertAttempts {
			time.Sleep(retryBackoff * time.Duration(attempt))
		}
	}
	return models.Bid{}, 0, fmt.Errorf("service: bid insert retries exhausted: %w", err)
}

func (s *BiddingService) admitOnce(ctx context.Context, vehicleID, bidderID string, amount int64) (models.Bid, int64, error) {
	vehicle, err := s.repo.GetVehicle(ctx, vehicleID)
	if err != nil {
		return models.Bid{}, 0, fmt.Errorf("service: %w", err)
	}
	if vehicle.Status != models.VehicleActive {
		return models.Bid{}, 0, fmt.Errorf("service: vehicle %s: %w", vehicleID, auctionerrors.ErrAuctionNotActive)
	}
	if vehicle.SellerID == bidderID {
		return models.Bid{}, 0, fmt.Errorf("service: vehicle %s: %w", vehicleID, auctionerrors.ErrSelfBid)
	}

	current, err := s.repo.CurrentPrice(ctx, vehicleID)
	if err != nil {
		return models.Bid{}, 0, fmt.Errorf("service: %w", err)
	}

	minRequired := current + vehicle.MinIncrement
	if amount < minRequired {
		return models.Bid{}, 0, fmt.Errorf("service: %w", &auctionerrors.BidTooLowError{
			MinRequired:  minRequired,
			Current:      current,
			MinIncrement: vehicle.MinIncrement,
		})
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		VehicleID: vehicleID,
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.InsertBid(ctx, bid); err != nil {
		return models.Bid{}, 0, fmt.Errorf("service: failed to record bid for vehicle %s by user %s: %w", vehicleID, bidderID, err)
	}

	return bid, amount + vehicle.MinIncrement, nil
}

// BidsForVehicle returns all bids for a vehicle, highest amount first.
func (s *BiddingService) BidsForVehicle(ctx context.Context, vehicleID string) ([]models.Bid, error) {
	if vehicleID == "" {
		return nil, fmt.Errorf("service: %w - empty vehicle ID", auctionerrors.ErrInvalidInput)
	}

	bids, err := s.repo.GetBidsByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for vehicle %s: %w", vehicleID, err)
	}
	return bids, nil
}

// CurrentPrice returns max(base_price, highest bid amount) for a vehicle.
func (s *BiddingService) CurrentPrice(ctx context.Context, vehicleID string) (int64, error) {
	if vehicleID == "" {
		return 0, fmt.Errorf("service: %w - empty vehicle ID", auctionerrors.ErrInvalidInput)
	}

	price, err := s.repo.CurrentPrice(ctx, vehicleID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to get current price for vehicle %s: %w", vehicleID, err)
	}
	return price, nil
}
