package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rightguydaniel/deluxconex-BE/models"
	"github.com/rightguydaniel/deluxconex-BE/services/wire"
	"github.com/rightguydaniel/deluxconex-BE/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WirePaymentHandler exposes the wire-transfer payment workflow.
type WirePaymentHandler struct {
	Service wire.WireService
}

func NewWirePaymentHandler(svc wire.WireService) *WirePaymentHandler {
	return &WirePaymentHandler{Service: svc}
}

// RequestWirePayment handles POST /payments/wire/request. Authenticated.
func (h *WirePaymentHandler) RequestWirePayment(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		utils.Respond(c, http.StatusUnauthorized, "Authentication required", nil, "")
		return
	}

	if err := h.Service.RequestPayment(c.Request.Context(), userID); err != nil {
		switch {
		case errors.Is(err, wire.ErrEmptyCart):
			utils.Respond(c, http.StatusBadRequest, "Cart is empty", nil, "")
		case errors.Is(err, wire.ErrAddressRequired):
			// Not a failure: the storefront reacts by collecting an address.
			utils.Respond(c, http.StatusOK, "address required", nil, "")
		default:
			utils.GetLogger().Error("RequestWirePayment failed", zap.String("userId", userID), zap.Error(err))
			utils.Respond(c, http.StatusInternalServerError, "Failed to create wire payment request", nil, err.Error())
		}
		return
	}

	utils.Respond(c, http.StatusOK, "Wire transfer request created. A payment link will be sent shortly.", nil, "")
}

// ListPaymentRequests handles GET /admin/payments/wire. Admin only.
func (h *WirePaymentHandler) ListPaymentRequests(c *gin.Context) {
	requests, err := h.Service.ListRequests()
	if err != nil {
		utils.GetLogger().Error("ListPaymentRequests failed", zap.Error(err))
		utils.Respond(c, http.StatusInternalServerError, "Failed to fetch payment requests", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Payment requests fetched", requests, "")
}

// IssueWireDetails handles POST /admin/payments/wire/:id/issue. Admin only.
func (h *WirePaymentHandler) IssueWireDetails(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		AccountName   string `json:"accountName"`
		AccountNumber string `json:"accountNumber"`
		RoutingNumber string `json:"routingNumber"`
		BankName      string `json:"bankName"`
		DaysValid     int    `json:"daysValid"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	details := wire.BankDetails{
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		RoutingNumber: req.RoutingNumber,
		BankName:      req.BankName,
	}
	result, err := h.Service.IssueDetails(c.Request.Context(), id, details, req.DaysValid)
	if err != nil {
		var notFound wire.NotFoundError
		switch {
		case errors.As(err, &notFound):
			if notFound.Entity == "payment request" {
				utils.Respond(c, http.StatusNotFound, "Payment request not found", nil, "")
			} else {
				utils.Respond(c, http.StatusBadRequest, "Unable to load associated invoice or user", nil, "")
			}
		default:
			utils.GetLogger().Error("IssueWireDetails failed", zap.String("requestId", id), zap.Error(err))
			utils.Respond(c, http.StatusInternalServerError, "Failed to issue wire details", nil, err.Error())
		}
		return
	}

	utils.Respond(c, http.StatusOK, "Wire details issued successfully", result, "")
}

// GetWirePaymentInfo handles GET /payments/wire/info?token=... Public: the
// token is the authorization.
func (h *WirePaymentHandler) GetWirePaymentInfo(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.Respond(c, http.StatusBadRequest, "Missing token", nil, "")
		return
	}

	info, err := h.Service.GetPaymentInfo(token)
	if err != nil {
		h.respondTokenError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, "Wire payment info", info, "")
}

// UploadWirePaymentProof handles POST /payments/wire/proof. Public: the
// token is the authorization. Multipart form with fields "token" and an
// optional "file".
func (h *WirePaymentHandler) UploadWirePaymentProof(c *gin.Context) {
	token := c.PostForm("token")
	if token == "" {
		utils.Respond(c, http.StatusBadRequest, "Missing token", nil, "")
		return
	}

	var proofPath string
	if file, err := c.FormFile("file"); err == nil && file != nil {
		ext := filepath.Ext(file.Filename)
		if ext == "" {
			ext = ".pdf"
		}
		proofPath = filepath.Join(os.TempDir(), fmt.Sprintf("proof_%s%s", utils.RandomString(8), ext))
		if err := c.SaveUploadedFile(file, proofPath); err != nil {
			utils.Respond(c, http.StatusInternalServerError, "Failed to submit payment proof", nil, err.Error())
			return
		}
		defer os.Remove(proofPath)
	}

	if err := h.Service.SubmitProof(c.Request.Context(), token, proofPath); err != nil {
		h.respondTokenError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Payment proof submitted. Our payment team will verify within 1-3 business days.", nil, "")
}

// UpdateWireStatus handles PUT /admin/payments/wire/:id/status. Admin
// only. This is the manual verdict after reconciling the bank statement.
func (h *WirePaymentHandler) UpdateWireStatus(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	request, err := h.Service.UpdateRequestStatus(id, models.WirePaymentStatus(req.Status), req.Notes)
	if err != nil {
		var notFound wire.NotFoundError
		switch {
		case errors.As(err, &notFound):
			utils.Respond(c, http.StatusNotFound, "Payment request not found", nil, "")
		default:
			var persistence wire.PersistenceError
			if errors.As(err, &persistence) {
				utils.GetLogger().Error("UpdateWireStatus failed", zap.String("requestId", id), zap.Error(err))
				utils.Respond(c, http.StatusInternalServerError, "Failed to update payment request", nil, err.Error())
			} else {
				utils.Respond(c, http.StatusBadRequest, err.Error(), nil, "")
			}
		}
		return
	}

	utils.Respond(c, http.StatusOK, "Payment request updated", request, "")
}

// respondTokenError maps token and lookup failures on the customer-facing
// endpoints. Invalid and expired links get distinct user-safe messages; a
// valid token for a vanished row is a plain 404.
func (h *WirePaymentHandler) respondTokenError(c *gin.Context, err error) {
	var notFound wire.NotFoundError
	switch {
	case errors.Is(err, wire.ErrExpiredLink):
		utils.Respond(c, http.StatusGone, "Payment link has expired", nil, "")
	case errors.Is(err, wire.ErrInvalidToken):
		utils.Respond(c, http.StatusBadRequest, "Invalid or corrupted token", nil, err.Error())
	case errors.As(err, &notFound):
		utils.Respond(c, http.StatusNotFound, "Payment request not found", nil, "")
	default:
		utils.GetLogger().Error("wire payment token operation failed", zap.Error(err))
		utils.Respond(c, http.StatusInternalServerError, "Failed to submit payment proof", nil, err.Error())
	}
}
