package handler

import (
	"context"
	"net/http"
	"time"

	"carbid/internal/auctionerrors"
	"carbid/internal/auth"
	model "carbid/internal/models"
	"carbid/services/auction/helpers"
	"carbid/utils"

	"github.com/gin-gonic/gin"
)

// IdentityProvider abstracts account and token operations for the handler.
type IdentityProvider interface {
	Register(ctx context.Context, name, email, password, role string) (model.User, error)
	Login(ctx context.Context, email, password string) (string, model.User, error)
	Me(ctx context.Context, userID string) (model.User, error)
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func newUserResponse(u model.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// AuthHandler serves the account endpoints.
type AuthHandler struct {
	service IdentityProvider
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(service IdentityProvider) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	const handlerName = "Register"

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	created, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		helpers.RespondError(c, handlerName, err)
		return
	}

	helpers.LogSuccess(handlerName, "account created", map[string]any{
		"user_id": created.UserID,
		"role":    string(created.Role),
	})
	utils.JSONResponse(c, http.StatusOK, newUserResponse(created), "account created successfully")
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	const handlerName = "Login"

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	token, user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, handlerName, err)
		return
	}

	helpers.LogSuccess(handlerName, "login succeeded", map[string]any{"user_id": user.UserID})
	utils.JSONResponse(c, http.StatusOK, LoginResponse{
		Token: token,
		User:  newUserResponse(user),
	}, "login successful")
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	const handlerName = "Me"

	identity, ok := auth.IdentityFrom(c)
	if !ok {
		helpers.RespondError(c, handlerName, auctionerrors.ErrUnauthorized)
		return
	}

	user, err := h.service.Me(c.Request.Context(), identity.UserID)
	if err != nil {
		helpers.RespondError(c, handlerName, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, newUserResponse(user), "profile retrieved successfully")
}
