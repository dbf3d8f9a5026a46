package handlers

import (
	"net/http"

	addressSvc "github.com/rightguydaniel/deluxconex-BE/services/address"
	"github.com/rightguydaniel/deluxconex-BE/models"
	"github.com/rightguydaniel/deluxconex-BE/utils"

	"github.com/gin-gonic/gin"
)

// AddressHandler exposes saved-address endpoints. All require auth.
type AddressHandler struct {
	Service addressSvc.AddressService
}

func NewAddressHandler(svc addressSvc.AddressService) *AddressHandler {
	return &AddressHandler{Service: svc}
}

// CreateAddress handles POST /addresses.
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	created, err := h.Service.CreateAddress(currentUserID(c), addr)
	if err != nil {
		utils.Respond(c, http.StatusBadRequest, err.Error(), nil, "")
		return
	}
	utils.Respond(c, http.StatusCreated, "Address saved", created, "")
}

// UpdateAddress handles PUT /addresses/:id.
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	addr.ID = c.Param("id")

	updated, err := h.Service.UpdateAddress(currentUserID(c), addr)
	if err != nil {
		utils.Respond(c, http.StatusBadRequest, err.Error(), nil, "")
		return
	}
	utils.Respond(c, http.StatusOK, "Address updated", updated, "")
}

// GetAddresses handles GET /addresses.
func (h *AddressHandler) GetAddresses(c *gin.Context) {
	addresses, err := h.Service.GetAddresses(currentUserID(c))
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to fetch addresses", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Addresses fetched", addresses, "")
}

// SetDefaultAddress handles PUT /addresses/:id/default.
func (h *AddressHandler) SetDefaultAddress(c *gin.Context) {
	if err := h.Service.SetDefaultAddress(currentUserID(c), c.Param("id")); err != nil {
		utils.Respond(c, http.StatusBadRequest, err.Error(), nil, "")
		return
	}
	utils.Respond(c, http.StatusOK, "Default address updated", nil, "")
}

// DeleteAddress handles DELETE /addresses/:id.
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	if err := h.Service.DeleteAddress(currentUserID(c), c.Param("id")); err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to delete address", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Address deleted", nil, "")
}
