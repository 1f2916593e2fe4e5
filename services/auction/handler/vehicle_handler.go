package handler

import (
	"context"
	"net/http"

	"carbid/internal/auctionerrors"
	"carbid/internal/auth"
	model "carbid/internal/models"
	vehicle "carbid/internal/vehicleService"
	"carbid/services/auction/helpers"
	"carbid/utils"

	"github.com/gin-gonic/gin"
)

// VehicleManager abstracts listing operations for the handler.
type VehicleManager interface {
	Create(ctx context.Context, sellerID string, role model.Role, in vehicle.CreateInput) (vehicle.PricedVehicle, error)
	List(ctx context.Context, filter model.VehicleFilter) ([]vehicle.PricedVehicle, error)
	Get(ctx context.Context, vehicleID string) (vehicle.PricedVehicle, error)
	Close(ctx context.Context, vehicleID, callerID string) (model.ClosureOutcome, error)
}

// VehicleHandler serves the listing endpoints.
type VehicleHandler struct {
	service VehicleManager
}

// NewVehicleHandler creates a new VehicleHandler instance
func NewVehicleHandler(service VehicleManager) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// CreateVehicle handles POST /api/vehicles
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	const handlerName = "CreateVehicle"

	identity, ok := auth.IdentityFrom(c)
	if !ok {
		helpers.RespondError(c, handlerName, auctionerrors.ErrUnauthorized)
		return
	}

	var req helpers.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), identity.UserID, identity.Role, vehicle.CreateInput{
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		BasePrice:    req.BasePrice,
		MinIncrement: req.MinIncrement,
		LotCode:      req.LotCode,
		Images:       req.Images,
		Description:  req.Description,
	})
	if err != nil {
		helpers.RespondError(c, handlerName, err)
		return
	}

	helpers.LogSuccess(handlerName, "vehicle listed", map[string]any{
		"vehicle_id": created.VehicleID,
		"seller_id":  identity.UserID,
		"lot_code":   created.LotCode,
	})
	utils.JSONResponse(c, http.StatusOK, helpers.NewVehicleDetail(created), "vehicle listed successfully")
}

// ListVehicles handles GET /api/vehicles
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	const handlerName = "ListVehicles"

	filter := model.VehicleFilter{
		Status: c.DefaultQuery("status", string(model.VehicleActive)),
		Query:  c.Query("q"),
	}

	vehicles, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		helpers.RespondError(c, handlerName, err)
		return
	}

	summaries := make([]helpers.VehicleSummaryResponse, 0, len(vehicles))
	for _, v := range vehicles {
		summaries = append(summaries, helpers.NewVehicleSummary(v))
	}
	utils.JSONResponse(c, http.StatusOK, summaries, "vehicles retrieved successfully")
}

// GetVehicle handles GET /api/vehicles/:vehicle_id
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	const handlerName = "GetVehicle"

	v, err := h.service.Get(c.Request.Context(), c.Param("vehicle_id"))
	if err != nil {
		helpers.RespondError(c, handlerName, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewVehicleDetail(v), "vehicle retrieved successfully")
}

// CloseVehicle handles PATCH /api/vehicles/:vehicle_id/close
func (h *VehicleHandler) CloseVehicle(c *gin.Context) {
	const handlerName = "CloseVehicle"

	identity, ok := auth.IdentityFrom(c)
	if !ok {
		helpers.RespondError(c, handlerName, auctionerrors.ErrUnauthorized)
		return
	}

	vehicleID := c.Param("vehicle_id")
	outcome, err := h.service.Close(c.Request.Context(), vehicleID, identity.UserID)
	if err != nil {
		helpers.RespondError(c, handlerName, err)
		return
	}

	helpers.LogSuccess(handlerName, "auction closed", map[string]any{
		"vehicle_id": vehicleID,
		"caller_id":  identity.UserID,
		"has_winner": outcome.WinnerBidID != nil,
	})
	utils.JSONResponse(c, http.StatusOK, helpers.CloseVehicleResponse{
		VehicleID:   outcome.VehicleID,
		Status:      string(model.VehicleClosed),
		WinnerBidID: outcome.WinnerBidID,
		Amount:      outcome.Amount,
	}, "auction closed successfully")
}
