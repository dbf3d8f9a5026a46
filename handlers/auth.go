package handlers

import (
	"net/http"

	"github.com/rightguydaniel/deluxconex-BE/services/user"
	"github.com/rightguydaniel/deluxconex-BE/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes account registration, sign-in and profile endpoints.
type AuthHandler struct {
	Service user.UserService
}

func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req user.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	resp, err := h.Service.Register(req)
	if err != nil {
		utils.Respond(c, http.StatusBadRequest, err.Error(), nil, "")
		return
	}
	utils.Respond(c, http.StatusCreated, "Account created", resp, "")
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	resp, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		utils.Respond(c, http.StatusUnauthorized, err.Error(), nil, "")
		return
	}
	utils.Respond(c, http.StatusOK, "Signed in", resp, "")
}

// ForgotPassword handles POST /auth/forgot-password. Always answers 200
// so the endpoint cannot be used to probe registered emails.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := h.Service.RequestPasswordReset(req.Email); err != nil {
		utils.GetLogger().Error("ForgotPassword failed", zap.Error(err))
	}
	utils.Respond(c, http.StatusOK, "If that email is registered, a reset link has been sent", nil, "")
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := h.Service.ResetPassword(req.Token, req.NewPassword); err != nil {
		utils.Respond(c, http.StatusBadRequest, err.Error(), nil, "")
		return
	}
	utils.Respond(c, http.StatusOK, "Password reset", nil, "")
}

// GetProfile handles GET /auth/me.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := currentUserID(c)
	u, err := h.Service.GetUserByID(userID)
	if err != nil {
		utils.GetLogger().Error("GetProfile failed", zap.String("userId", userID), zap.Error(err))
		utils.Respond(c, http.StatusNotFound, "User not found", nil, "")
		return
	}
	utils.Respond(c, http.StatusOK, "Profile fetched", u, "")
}

// UpdateProfile handles PUT /auth/me.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := currentUserID(c)

	var req user.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	u, err := h.Service.UpdateUser(userID, req)
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to update profile", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Profile updated", u, "")
}

// UpdatePassword handles PUT /auth/password.
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	userID := currentUserID(c)

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := h.Service.UpdatePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		utils.Respond(c, http.StatusBadRequest, err.Error(), nil, "")
		return
	}
	utils.Respond(c, http.StatusOK, "Password updated", nil, "")
}
