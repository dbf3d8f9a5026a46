package handlers

import (
	"net/http"

	"github.com/rightguydaniel/deluxconex-BE/services/user"
	"github.com/rightguydaniel/deluxconex-BE/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes account administration endpoints. All require an
// admin role.
type AdminHandler struct {
	Users user.UserService
}

func NewAdminHandler(users user.UserService) *AdminHandler {
	return &AdminHandler{Users: users}
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Users.GetAllUsers()
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to fetch users", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Users fetched", users, "")
}

// BlockUser handles PUT /admin/users/:id/block.
func (h *AdminHandler) BlockUser(c *gin.Context) {
	if err := h.Users.SetBlocked(c.Param("id"), true); err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to block user", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "User blocked", nil, "")
}

// UnblockUser handles PUT /admin/users/:id/unblock.
func (h *AdminHandler) UnblockUser(c *gin.Context) {
	if err := h.Users.SetBlocked(c.Param("id"), false); err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to unblock user", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "User unblocked", nil, "")
}

// DeleteUser handles DELETE /admin/users/:id.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.Users.DeleteUser(c.Param("id")); err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to delete user", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "User deleted", nil, "")
}
