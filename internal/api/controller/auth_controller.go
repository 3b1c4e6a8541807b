package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pranit96/life.me/internal/api/response"
	"github.com/pranit96/life.me/internal/model"
	"github.com/pranit96/life.me/internal/service"
)

// AuthController handles Telegram-identity login.
type AuthController struct {
	authService *service.AuthService
}

// NewAuthController takes a nil service when the database is unconfigured;
// login then reports the store as unavailable instead of crashing.
func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type LoginRequest struct {
	TelegramID string `json:"telegramId"`
	Username   string `json:"username"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
}

// LoginResponse is the User object plus the token for the internal
// endpoints. The user fields are flattened into the top level so existing
// clients that read the bare User keep working.
type LoginResponse struct {
	model.User
	Token string `json:"token,omitempty"`
}

// Login upserts the user by Telegram ID.
// @Summary Log in with a Telegram identity
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "login payload"
// @Success 200 {object} LoginResponse
// @Router /api/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	if ctrl.authService == nil {
		response.Error(c, http.StatusInternalServerError, "Database not configured")
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := ctrl.authService.Login(c.Request.Context(), req.TelegramID, model.UserProfile{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		slog.Error("login failed", "telegram_id", req.TelegramID, "error", err)
		response.FromError(c, err, "Login failed. Please try again.")
		return
	}

	slog.Info("user logged in", "user_id", user.ID)
	c.JSON(http.StatusOK, LoginResponse{User: *user, Token: token})
}
