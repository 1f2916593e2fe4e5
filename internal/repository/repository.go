package repository

import (
	"context"
	"time"

	model "carbid/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_auctiondb.go -package=repository

// AuctionDB is the single source of truth for auction state. Write
// operations on one vehicle are atomic with respect to concurrent writers:
// each runs inside its own storage transaction, and transient contention is
// surfaced as auctionerrors.ErrStorageBusy so callers can retry.
type AuctionDB interface {
	// Users
	CreateUser(ctx context.Context, user model.User) error
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByID(ctx context.Context, userID string) (model.User, error)

	// Vehicles
	CreateVehicle(ctx context.Context, vehicle model.Vehicle) error
	GetVehicle(ctx context.Context, vehicleID string) (model.Vehicle, error)
	ListVehicles(ctx context.Context, filter model.VehicleFilter) ([]model.Vehicle, error)

	// Bids
	InsertBid(ctx context.Context, bid model.Bid) error
	GetBidsByVehicle(ctx context.Context, vehicleID string) ([]model.Bid, error)
	GetTopBid(ctx context.Context, vehicleID string) (model.Bid, error)
	CurrentPrice(ctx context.Context, vehicleID string) (int64, error)

	// Closing
	CloseAuction(ctx context.Context, vehicleID string, now time.Time) (model.ClosureOutcome, error)
	CloseExpiredAuctions(ctx context.Context, now time.Time) ([]model.ClosureOutcome, error)

	// Per-user reads
	GetBidHistoryByUser(ctx context.Context, userID string) ([]model.BidHistoryEntry, error)
	GetAgendaByUser(ctx context.Context, userID string, limit int) ([]model.AgendaEntry, error)

	// Notifications
	GetNotificationsByUser(ctx context.Context, userID string) ([]model.Notification, error)
	MarkNotificationsRead(ctx context.Context, userID string, readAt time.Time) (int64, error)
}
