package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rightguydaniel/deluxconex-BE/models"
	"github.com/rightguydaniel/deluxconex-BE/services/wire"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWireService struct {
	requestErr error

	issueResult *wire.IssueResult
	issueErr    error

	info    *wire.PaymentInfo
	infoErr error

	proofErr   error
	proofToken string
	proofPath  string

	updated   *models.PaymentRequest
	updateErr error
}

func (s *stubWireService) RequestPayment(ctx context.Context, userID string) error {
	return s.requestErr
}
func (s *stubWireService) ListRequests() ([]models.PaymentRequest, error) { return nil, nil }
func (s *stubWireService) IssueDetails(ctx context.Context, requestID string, details wire.BankDetails, daysValid int) (*wire.IssueResult, error) {
	return s.issueResult, s.issueErr
}
func (s *stubWireService) GetPaymentInfo(token string) (*wire.PaymentInfo, error) {
	return s.info, s.infoErr
}
func (s *stubWireService) SubmitProof(ctx context.Context, token, proofFilePath string) error {
	s.proofToken = token
	s.proofPath = proofFilePath
	return s.proofErr
}
func (s *stubWireService) UpdateRequestStatus(requestID string, status models.WirePaymentStatus, notes string) (*models.PaymentRequest, error) {
	return s.updated, s.updateErr
}

type envelope struct {
	Status       string          `json:"status"`
	Message      string          `json:"message"`
	Error        bool            `json:"error"`
	Data         json.RawMessage `json:"data"`
	ErrorMessage string          `json:"errorMessage"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func newWireRouter(svc *stubWireService, authedUserID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewWirePaymentHandler(svc)

	r := gin.New()
	if authedUserID != "" {
		r.Use(func(c *gin.Context) { c.Set("userID", authedUserID) })
	}
	r.POST("/api/payments/wire/request", h.RequestWirePayment)
	r.GET("/api/payments/wire/info", h.GetWirePaymentInfo)
	r.POST("/api/payments/wire/proof", h.UploadWirePaymentProof)
	r.POST("/api/admin/payments/wire/:id/issue", h.IssueWireDetails)
	r.PUT("/api/admin/payments/wire/:id/status", h.UpdateWireStatus)
	return r
}

func TestRequestWirePayment(t *testing.T) {
	svc := &stubWireService{}
	router := newWireRouter(svc, "usr-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/payments/wire/request", nil))

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "success", env.Status)
	assert.False(t, env.Error)
	assert.Contains(t, env.Message, "Wire transfer request created")
}

func TestRequestWirePaymentEmptyCart(t *testing.T) {
	svc := &stubWireService{requestErr: wire.ErrEmptyCart}
	router := newWireRouter(svc, "usr-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/payments/wire/request", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Cart is empty", env.Message)
	assert.True(t, env.Error)
}

// A missing default address is answered with 200 so the storefront can
// prompt for one instead of surfacing an error page.
func TestRequestWirePaymentAddressRequired(t *testing.T) {
	svc := &stubWireService{requestErr: wire.ErrAddressRequired}
	router := newWireRouter(svc, "usr-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/payments/wire/request", nil))

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "address required", env.Message)
	assert.False(t, env.Error)
}

func TestRequestWirePaymentUnauthenticated(t *testing.T) {
	svc := &stubWireService{}
	router := newWireRouter(svc, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/payments/wire/request", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetWirePaymentInfo(t *testing.T) {
	svc := &stubWireService{info: &wire.PaymentInfo{
		AccountName:   "DeluxConex LLC",
		AccountNumber: "000123456789",
		BankName:      "Bank of America",
		Total:         115,
		Currency:      "USD",
		RequestID:     "req-1",
	}}
	router := newWireRouter(svc, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/payments/wire/info?token=abc", nil))

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)

	var info wire.PaymentInfo
	require.NoError(t, json.Unmarshal(env.Data, &info))
	assert.Equal(t, 115.0, info.Total)
	assert.Equal(t, "USD", info.Currency)
}

func TestGetWirePaymentInfoMissingToken(t *testing.T) {
	router := newWireRouter(&stubWireService{}, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/payments/wire/info", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Missing token", env.Message)
}

func TestGetWirePaymentInfoInvalidToken(t *testing.T) {
	svc := &stubWireService{infoErr: wire.ErrInvalidToken}
	router := newWireRouter(svc, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/payments/wire/info?token=bad", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Invalid or corrupted token", env.Message)
}

func TestGetWirePaymentInfoExpiredLink(t *testing.T) {
	svc := &stubWireService{infoErr: wire.ErrExpiredLink}
	router := newWireRouter(svc, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/payments/wire/info?token=old", nil))

	require.Equal(t, http.StatusGone, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Payment link has expired", env.Message)
}

func TestUploadWirePaymentProof(t *testing.T) {
	svc := &stubWireService{}
	router := newWireRouter(svc, "")

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	require.NoError(t, form.WriteField("token", "tok-1"))
	part, err := form.CreateFormFile("file", "receipt.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 receipt"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/payments/wire/proof", body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, env.Message, "1-3 business days")
	assert.Equal(t, "tok-1", svc.proofToken)
	assert.True(t, strings.HasSuffix(svc.proofPath, ".pdf"))
}

func TestUploadWirePaymentProofWithoutFile(t *testing.T) {
	svc := &stubWireService{}
	router := newWireRouter(svc, "")

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	require.NoError(t, form.WriteField("token", "tok-1"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/payments/wire/proof", body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok-1", svc.proofToken)
	assert.Empty(t, svc.proofPath)
}

func TestUploadWirePaymentProofMissingToken(t *testing.T) {
	router := newWireRouter(&stubWireService{}, "")

	req := httptest.NewRequest(http.MethodPost, "/api/payments/wire/proof", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIssueWireDetails(t *testing.T) {
	expiresAt := time.Now().Add(48 * time.Hour)
	svc := &stubWireService{issueResult: &wire.IssueResult{
		Link:      "https://deluxconex.com/payment/wire?token=abc",
		ExpiresAt: expiresAt,
	}}
	router := newWireRouter(svc, "")

	body := strings.NewReader(`{"accountName":"DeluxConex LLC","accountNumber":"000123456789","routingNumber":"026009593","bankName":"Bank of America","daysValid":2}`)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/payments/wire/req-1/issue", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)

	var result wire.IssueResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Contains(t, result.Link, "/payment/wire?token=")
}

func TestIssueWireDetailsRequestNotFound(t *testing.T) {
	svc := &stubWireService{issueErr: wire.NotFoundError{Entity: "payment request", ID: "nope"}}
	router := newWireRouter(svc, "")

	req := httptest.NewRequest(http.MethodPost, "/api/admin/payments/wire/nope/issue", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Payment request not found", env.Message)
}

func TestIssueWireDetailsBrokenLinks(t *testing.T) {
	svc := &stubWireService{issueErr: wire.NotFoundError{Entity: "invoice", ID: "inv-1"}}
	router := newWireRouter(svc, "")

	req := httptest.NewRequest(http.MethodPost, "/api/admin/payments/wire/req-1/issue", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Unable to load associated invoice or user", env.Message)
}

func TestUpdateWireStatus(t *testing.T) {
	svc := &stubWireService{updated: &models.PaymentRequest{ID: "req-1", Status: models.WireVerified}}
	router := newWireRouter(svc, "")

	body := strings.NewReader(`{"status":"verified","notes":"matched statement"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/admin/payments/wire/req-1/status", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)

	var request models.PaymentRequest
	require.NoError(t, json.Unmarshal(env.Data, &request))
	assert.Equal(t, models.WireVerified, request.Status)
}
