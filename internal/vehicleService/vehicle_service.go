package vehicle

import (
	"context"
	"fmt"
	"time"

	"carbid/internal/auctionerrors"
	"carbid/internal/closer"
	"carbid/internal/models"
	"carbid/internal/repository"
	"carbid/utils"
)

// Publisher delivers state-change events to realtime subscribers.
type Publisher interface {
	Publish(channel, event string, payload any)
}

// The first automobile year; listings older than this are rejected.
const minVehicleYear = 1886

// Defaults applied to new listings when the request omits them.
type Defaults struct {
	MinIncrement  int64
	AuctionWindow time.Duration
}

// CreateInput carries the seller-provided fields of a new listing.
type CreateInput struct {
	Make         string
	Model        string
	Year         int
	BasePrice    int64
	MinIncrement int64
	LotCode      string
	Images       []string
	Description  string
}

// PricedVehicle pairs a vehicle with its live current price.
type PricedVehicle struct {
	models.Vehicle
	CurrentPrice int64
}

// VehicleService manages vehicle listings and the seller-initiated close.
type VehicleService struct {
	repo     repository.AuctionDB
	events   Publisher
	defaults Defaults
}

// NewVehicleService creates a new VehicleService instance
func NewVehicleService(repo repository.AuctionDB, events Publisher, defaults Defaults) *VehicleService {
	if defaults.MinIncrement <= 0 {
		defaults.MinIncrement = 100
	}
	if defaults.AuctionWindow <= 0 {
		defaults.AuctionWindow = 7 * 24 * time.Hour
	}
	return &VehicleService{repo: repo, events: events, defaults: defaults}
}

// Create publishes a new active listing for the seller. Only sellers and
// admins may list vehicles.
func (s *VehicleService) Create(ctx context.Context, sellerID string, role models.Role, in CreateInput) (PricedVehicle, error) {
	if !role.CanSell() {
		return PricedVehicle{}, fmt.Errorf("service: role %s cannot publish listings: %w", role, auctionerrors.ErrForbidden)
	}
	if in.Make == "" || in.Model == "" || in.LotCode == "" {
		return PricedVehicle{}, fmt.Errorf("service: %w - make, model and lot_code are required", auctionerrors.ErrInvalidInput)
	}
	if in.Year < minVehicleYear {
		return PricedVehicle{}, fmt.Errorf("service: %w - invalid year %d", auctionerrors.ErrInvalidInput, in.Year)
	}
	if in.BasePrice <= 0 {
		return PricedVehicle{}, fmt.Errorf("service: %w - base price must be positive", auctionerrors.ErrInvalidInput)
	}
	if in.MinIncrement < 0 {
		return PricedVehicle{}, fmt.Errorf("service: %w - min increment must be positive", auctionerrors.ErrInvalidInput)
	}

	minIncrement := in.MinIncrement
	if minIncrement == 0 {
		minIncrement = s.defaults.MinIncrement
	}
	images := in.Images
	if images == nil {
		images = []string{}
	}

	now := time.Now().UTC()
	v := models.Vehicle{
		VehicleID:      utils.GenerateID(),
		SellerID:       sellerID,
		Make:           in.Make,
		Model:          in.Model,
		Year:           in.Year,
		BasePrice:      in.BasePrice,
		MinIncrement:   minIncrement,
		LotCode:        in.LotCode,
		Images:         images,
		Description:    in.Description,
		Status:         models.VehicleActive,
		AuctionStartAt: now,
		AuctionEndAt:   now.Add(s.defaults.AuctionWindow),
		CreatedAt:      now,
	}

	if err := s.repo.CreateVehicle(ctx, v); err != nil {
		return PricedVehicle{}, fmt.Errorf("service: failed to create vehicle: %w", err)
	}

	return PricedVehicle{Vehicle: v, CurrentPrice: v.BasePrice}, nil
}

// List returns vehicle summaries matching the filter, each with its live
// current price.
func (s *VehicleService) List(ctx context.Context, filter models.VehicleFilter) ([]PricedVehicle, error) {
	vehicles, err := s.repo.ListVehicles(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list vehicles: %w", err)
	}

	priced := make([]PricedVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		price, err := s.repo.CurrentPrice(ctx, v.VehicleID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to price vehicle %s: %w", v.VehicleID, err)
		}
		priced = append(priced, PricedVehicle{Vehicle: v, CurrentPrice: price})
	}
	return priced, nil
}

// Get returns one vehicle with its live current price.
func (s *VehicleService) Get(ctx context.Context, vehicleID string) (PricedVehicle, error) {
	if vehicleID == "" {
		return PricedVehicle{}, fmt.Errorf("service: %w - empty vehicle ID", auctionerrors.ErrInvalidInput)
	}

	v, err := s.repo.GetVehicle(ctx, vehicleID)
	if err != nil {
		return PricedVehicle{}, fmt.Errorf("service: %w", err)
	}
	price, err := s.repo.CurrentPrice(ctx, vehicleID)
	if err != nil {
		return PricedVehicle{}, fmt.Errorf("service: %w", err)
	}
	return PricedVehicle{Vehicle: v, CurrentPrice: price}, nil
}

// Close finalizes a listing ahead of its deadline. Only the listing's own
// seller may close it; repeated closes are rejected, never silently
// absorbed. Winner determination and notification reuse the same ledger
// path as the background sweep.
func (s *VehicleService) Close(ctx context.Context, vehicleID, callerID string) (models.ClosureOutcome, error) {
	if vehicleID == "" {
		return models.ClosureOutcome{}, fmt.Errorf("service: %w - empty vehicle ID", auctionerrors.ErrInvalidInput)
	}

	v, err := s.repo.GetVehicle(ctx, vehicleID)
	if err != nil {
		return models.ClosureOutcome{}, fmt.Errorf("service: %w", err)
	}
	if v.SellerID != callerID {
		return models.ClosureOutcome{}, fmt.Errorf("service: only the seller may close vehicle %s: %w", vehicleID, auctionerrors.ErrForbidden)
	}

	outcome, err := s.repo.CloseAuction(ctx, vehicleID, time.Now().UTC())
	if err != nil {
		return models.ClosureOutcome{}, fmt.Errorf("service: failed to close vehicle %s: %w", vehicleID, err)
	}

	closer.PublishClosure(s.events, outcome)
	return outcome, nil
}
