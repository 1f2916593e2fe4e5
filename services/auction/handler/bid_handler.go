package handler

import (
	"context"
	"net/http"

	"carbid/internal/auctionerrors"
	"carbid/internal/auth"
	model "carbid/internal/models"
	"carbid/services/auction/helpers"
	"carbid/utils"

	"github.com/gin-gonic/gin"
)

// BidPlacer abstracts bid admission for the handler.
type BidPlacer interface {
	PlaceBid(ctx context.Context, vehicleID, bidderID string, amount int64) (model.Bid, int64, error)
	BidsForVehicle(ctx context.Context, vehicleID string) ([]model.Bid, error)
}

// BidHandler serves the bid endpoints.
type BidHandler struct {
	service BidPlacer
}

// NewBidHandler creates a new BidHandler instance
func NewBidHandler(service BidPlacer) *BidHandler {
	return &BidHandler{service: service}
}

// PlaceBid handles POST /api/vehicles/:vehicle_id/bids
func (h *BidHandler) PlaceBid(c *gin.Context) {
	const handlerName = "PlaceBid"

	identity, ok := auth.IdentityFrom(c)
	if !ok {
		helpers.RespondError(c, handlerName, auctionerrors.ErrUnauthorized)
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	vehicleID := c.Param("vehicle_id")
	bid, minRequired, err := h.service.PlaceBid(c.Request.Context(), vehicleID, identity.UserID, req.Amount)
	if err != nil {
		helpers.RespondError(c, handlerName, err)
		return
	}

	helpers.LogSuccess(handlerName, "bid accepted", map[string]any{
		"bid_id":     bid.BidID,
		"vehicle_id": vehicleID,
		"bidder_id":  identity.UserID,
		"amount":     bid.Amount,
	})
	utils.JSONResponse(c, http.StatusOK, helpers.PlaceBidResponse{
		Bid:         helpers.NewBidResponse(bid),
		MinRequired: minRequired,
	}, "bid placed successfully")
}

// ListBids handles GET /api/vehicles/:vehicle_id/bids
func (h *BidHandler) ListBids(c *gin.Context) {
	const handlerName = "ListBids"

	bids, err := h.service.BidsForVehicle(c.Request.Context(), c.Param("vehicle_id"))
	if err != nil {
		helpers.RespondError(c, handlerName, err)
		return
	}

	responses := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		responses = append(responses, helpers.NewBidResponse(b))
	}
	utils.JSONResponse(c, http.StatusOK, responses, "bids retrieved successfully")
}
