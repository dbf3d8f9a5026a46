package handlers

import (
	"net/http"

	invoiceSvc "github.com/rightguydaniel/deluxconex-BE/services/invoice"
	"github.com/rightguydaniel/deluxconex-BE/models"
	"github.com/rightguydaniel/deluxconex-BE/utils"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler exposes invoice history endpoints.
type InvoiceHandler struct {
	Service invoiceSvc.InvoiceService
}

func NewInvoiceHandler(svc invoiceSvc.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Service: svc}
}

// GetMyInvoices handles GET /invoices.
func (h *InvoiceHandler) GetMyInvoices(c *gin.Context) {
	invoices, err := h.Service.GetUserInvoices(currentUserID(c))
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to fetch invoices", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Invoices fetched", invoices, "")
}

// GetInvoice handles GET /invoices/:id. Owners and admins only.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.Service.GetInvoice(c.Param("id"))
	if err != nil {
		utils.Respond(c, http.StatusNotFound, "Invoice not found", nil, "")
		return
	}

	role, _ := c.Get("role")
	if invoice.UserID != currentUserID(c) && role != string(models.RoleAdmin) {
		utils.Respond(c, http.StatusNotFound, "Invoice not found", nil, "")
		return
	}
	utils.Respond(c, http.StatusOK, "Invoice fetched", invoice, "")
}

// ListAllInvoices handles GET /admin/invoices. Admin only.
func (h *InvoiceHandler) ListAllInvoices(c *gin.Context) {
	invoices, err := h.Service.GetAllInvoices()
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to fetch invoices", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Invoices fetched", invoices, "")
}

// SendInvoice handles POST /admin/invoices/:id/send. Admin only.
func (h *InvoiceHandler) SendInvoice(c *gin.Context) {
	invoice, err := h.Service.SendInvoice(c.Param("id"))
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to send invoice", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Invoice sent", invoice, "")
}

// UpdateInvoiceStatus handles PUT /admin/invoices/:id/status. Admin only.
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	invoice, err := h.Service.UpdateStatus(c.Param("id"), models.InvoiceStatus(req.Status))
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to update invoice", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Invoice updated", invoice, "")
}
