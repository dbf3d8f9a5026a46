package handlers

import (
	"net/http"

	cartSvc "github.com/rightguydaniel/deluxconex-BE/services/cart"
	"github.com/rightguydaniel/deluxconex-BE/models"
	"github.com/rightguydaniel/deluxconex-BE/utils"

	"github.com/gin-gonic/gin"
)

// CartHandler exposes the shopping cart endpoints. All require auth.
type CartHandler struct {
	Service cartSvc.CartService
}

func NewCartHandler(svc cartSvc.CartService) *CartHandler {
	return &CartHandler{Service: svc}
}

// GetCart handles GET /cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.Service.GetCart(currentUserID(c))
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to fetch cart", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Cart fetched", cart, "")
}

// AddItem handles POST /cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	cart, err := h.Service.AddItem(currentUserID(c), item)
	if err != nil {
		utils.Respond(c, http.StatusBadRequest, err.Error(), nil, "")
		return
	}
	utils.Respond(c, http.StatusOK, "Item added to cart", cart, "")
}

// UpdateQuantity handles PUT /cart/items/:productId.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	cart, err := h.Service.UpdateQuantity(currentUserID(c), c.Param("productId"), req.Quantity)
	if err != nil {
		utils.Respond(c, http.StatusBadRequest, err.Error(), nil, "")
		return
	}
	utils.Respond(c, http.StatusOK, "Cart updated", cart, "")
}

// RemoveItem handles DELETE /cart/items/:productId.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.Service.RemoveItem(currentUserID(c), c.Param("productId"))
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to remove item", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Item removed from cart", cart, "")
}

// ClearCart handles DELETE /cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.Service.ClearCart(currentUserID(c)); err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to clear cart", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Cart cleared", nil, "")
}
