package helpers

import (
	"time"

	model "carbid/internal/models"
	vehicle "carbid/internal/vehicleService"
)

// Request/Response DTOs

type CreateVehicleRequest struct {
	Make         string   `json:"make" binding:"required"`
	Model        string   `json:"model" binding:"required"`
	Year         int      `json:"year" binding:"required"`
	BasePrice    int64    `json:"base_price" binding:"required,gt=0"`
	MinIncrement int64    `json:"min_increment" binding:"omitempty,gt=0"`
	LotCode      string   `json:"lot_code" binding:"required"`
	Images       []string `json:"images"`
	Description  string   `json:"description"`
}

type PlaceBidRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	VehicleID string `json:"vehicle_id"`
	BidderID  string `json:"bidder_id"`
	Amount    int64  `json:"amount"`
	CreatedAt string `json:"created_at"`
}

// PlaceBidResponse returns the accepted bid plus the next minimum amount a
// subsequent bid must reach.
type PlaceBidResponse struct {
	Bid         BidResponse `json:"bid"`
	MinRequired int64       `json:"min_required"`
}

type VehicleSummaryResponse struct {
	VehicleID    string   `json:"vehicle_id"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	BasePrice    int64    `json:"base_price"`
	CurrentPrice int64    `json:"current_price"`
	MinIncrement int64    `json:"min_increment"`
	LotCode      string   `json:"lot_code"`
	Images       []string `json:"images"`
	Status       string   `json:"status"`
	EndsAt       string   `json:"ends_at"`
}

type VehicleDetailResponse struct {
	VehicleSummaryResponse
	Description string  `json:"description"`
	SellerID    string  `json:"seller_id"`
	WinnerBidID *string `json:"winner_bid_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type CloseVehicleResponse struct {
	VehicleID   string  `json:"vehicle_id"`
	Status      string  `json:"status"`
	WinnerBidID *string `json:"winner_bid_id"`
	Amount      *int64  `json:"amount"`
}

func NewBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:     b.BidID,
		VehicleID: b.VehicleID,
		BidderID:  b.BidderID,
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewVehicleSummary(v vehicle.PricedVehicle) VehicleSummaryResponse {
	return VehicleSummaryResponse{
		VehicleID:    v.VehicleID,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		BasePrice:    v.BasePrice,
		CurrentPrice: v.CurrentPrice,
		MinIncrement: v.MinIncrement,
		LotCode:      v.LotCode,
		Images:       v.Images,
		Status:       string(v.Status),
		EndsAt:       v.AuctionEndAt.UTC().Format(time.RFC3339),
	}
}

func NewVehicleDetail(v vehicle.PricedVehicle) VehicleDetailResponse {
	return VehicleDetailResponse{
		VehicleSummaryResponse: NewVehicleSummary(v),
		Description:            v.Description,
		SellerID:               v.SellerID,
		WinnerBidID:            v.WinnerBidID,
		CreatedAt:              v.CreatedAt.UTC().Format(time.RFC3339),
	}
}
