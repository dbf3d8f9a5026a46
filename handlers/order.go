package handlers

import (
	"net/http"

	orderSvc "github.com/rightguydaniel/deluxconex-BE/services/order"
	"github.com/rightguydaniel/deluxconex-BE/models"
	"github.com/rightguydaniel/deluxconex-BE/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes order history endpoints.
type OrderHandler struct {
	Service orderSvc.OrderService
}

func NewOrderHandler(svc orderSvc.OrderService) *OrderHandler {
	return &OrderHandler{Service: svc}
}

// GetMyOrders handles GET /orders.
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	orders, err := h.Service.GetUserOrders(currentUserID(c))
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to fetch orders", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Orders fetched", orders, "")
}

// GetOrder handles GET /orders/:id. Owners and admins only.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.Service.GetOrder(c.Param("id"))
	if err != nil {
		utils.Respond(c, http.StatusNotFound, "Order not found", nil, "")
		return
	}

	role, _ := c.Get("role")
	if order.UserID != currentUserID(c) && role != string(models.RoleAdmin) {
		utils.Respond(c, http.StatusNotFound, "Order not found", nil, "")
		return
	}
	utils.Respond(c, http.StatusOK, "Order fetched", order, "")
}

// ListAllOrders handles GET /admin/orders. Admin only.
func (h *OrderHandler) ListAllOrders(c *gin.Context) {
	orders, err := h.Service.GetAllOrders()
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to fetch orders", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Orders fetched", orders, "")
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status. Admin only.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status         string `json:"status" binding:"required"`
		TrackingNumber string `json:"trackingNumber"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	order, err := h.Service.UpdateStatus(c.Param("id"), models.OrderStatus(req.Status), req.TrackingNumber)
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to update order", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Order updated", order, "")
}
