package handler

import (
	"context"
	"net/http"

	"carbid/internal/auctionerrors"
	"carbid/internal/auth"
	model "carbid/internal/models"
	user "carbid/internal/userService"
	"carbid/services/auction/helpers"
	"carbid/utils"

	"github.com/gin-gonic/gin"
)

// UserReader abstracts per-user reads for the handler.
type UserReader interface {
	History(ctx context.Context, userID string) ([]model.BidHistoryEntry, error)
	Notifications(ctx context.Context, userID string) ([]user.NotificationView, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	Agenda(ctx context.Context, userID string) ([]user.AgendaView, error)
}

// UserHandler serves the authenticated per-user endpoints.
type UserHandler struct {
	service UserReader
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(service UserReader) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) identity(c *gin.Context, handlerName string) (auth.Identity, bool) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		helpers.RespondError(c, handlerName, auctionerrors.ErrUnauthorized)
	}
	return identity, ok
}

// History handles GET /api/users/me/history
func (h *UserHandler) History(c *gin.Context) {
	const handlerName = "History"

	identity, ok := h.identity(c, handlerName)
	if !ok {
		return
	}

	entries, err := h.service.History(c.Request.Context(), identity.UserID)
	if err != nil {
		helpers.RespondError(c, handlerName, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, entries, "bid history retrieved successfully")
}

// Notifications handles GET /api/users/me/notifications
func (h *UserHandler) Notifications(c *gin.Context) {
	const handlerName = "Notifications"

	identity, ok := h.identity(c, handlerName)
	if !ok {
		return
	}

	items, err := h.service.Notifications(c.Request.Context(), identity.UserID)
	if err != nil {
		helpers.RespondError(c, handlerName, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, items, "notifications retrieved successfully")
}

// MarkNotificationsRead handles POST /api/users/me/notifications/read-all
func (h *UserHandler) MarkNotificationsRead(c *gin.Context) {
	const handlerName = "MarkNotificationsRead"

	identity, ok := h.identity(c, handlerName)
	if !ok {
		return
	}

	updated, err := h.service.MarkAllRead(c.Request.Context(), identity.UserID)
	if err != nil {
		helpers.RespondError(c, handlerName, err)
		return
	}

	helpers.LogSuccess(handlerName, "notifications marked read", map[string]any{
		"user_id": identity.UserID,
		"updated": updated,
	})
	utils.JSONResponse(c, http.StatusOK, gin.H{"updated": updated}, "notifications marked read")
}

// Agenda handles GET /api/users/me/agenda
func (h *UserHandler) Agenda(c *gin.Context) {
	const handlerName = "Agenda"

	identity, ok := h.identity(c, handlerName)
	if !ok {
		return
	}

	entries, err := h.service.Agenda(c.Request.Context(), identity.UserID)
	if err != nil {
		helpers.RespondError(c, handlerName, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, entries, "agenda retrieved successfully")
}
