package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"carbid/internal/auctionerrors"
	"carbid/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrVehicleNotFound):
		return http.StatusNotFound, "vehicle not found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for vehicle"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusBadRequest, "bid amount below minimum required"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrSelfBid):
		return http.StatusForbidden, "seller cannot bid on own vehicle"
	case errors.Is(err, auctionerrors.ErrForbidden):
		return http.StatusForbidden, "operation not permitted"
	case errors.Is(err, auctionerrors.ErrUnauthorized),
		errors.Is(err, auctionerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "authentication failed"
	case errors.Is(err, auctionerrors.ErrAuctionNotActive):
		return http.StatusConflict, "auction is not active"
	case errors.Is(err, auctionerrors.ErrAlreadyClosed):
		return http.StatusConflict, "auction already closed"
	case errors.Is(err, auctionerrors.ErrDuplicateLot):
		return http.StatusConflict, "lot code already exists"
	case errors.Is(err, auctionerrors.ErrDuplicateEmail):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, auctionerrors.ErrStorageBusy):
		return http.StatusConflict, "auction is busy, try again"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps the error and writes the JSON response. Bid rejections
// additionally carry the numeric context a client needs to retry.
func RespondError(c *gin.Context, handlerName string, err error) {
	status, message := MapErrorToHTTP(err)

	var tooLow *auctionerrors.BidTooLowError
	if errors.As(err, &tooLow) {
		utils.JSONErrorDetails(c, status, err, message, gin.H{
			"min_required":  tooLow.MinRequired,
			"current":       tooLow.Current,
			"min_increment": tooLow.MinIncrement,
		})
	} else {
		utils.JSONError(c, status, err, message)
	}

	logFields := map[string]any{"handler": handlerName, "status": status, "error": err.Error()}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+message, logFields)
	} else {
		utils.Warn(handlerName+": "+message, logFields)
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
