package wire

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rightguydaniel/deluxconex-BE/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeCarts struct {
	carts map[string]*models.Cart
}

func (f *fakeCarts) GetByUserID(userID string) (*models.Cart, error) { return f.carts[userID], nil }
func (f *fakeCarts) Save(cart *models.Cart) error                    { f.carts[cart.UserID] = cart; return nil }
func (f *fakeCarts) DeleteByUserID(userID string) error              { delete(f.carts, userID); return nil }

type fakeAddresses struct {
	defaults map[string]*models.Address
}

func (f *fakeAddresses) Create(a *models.Address) error                 { return nil }
func (f *fakeAddresses) Update(a *models.Address) error                 { return nil }
func (f *fakeAddresses) GetByID(id string) (*models.Address, error)     { return nil, nil }
func (f *fakeAddresses) GetByUserID(id string) ([]models.Address, error) { return nil, nil }
func (f *fakeAddresses) GetDefaultByUserID(userID string) (*models.Address, error) {
	return f.defaults[userID], nil
}
func (f *fakeAddresses) SetDefault(userID, addressID string) error { return nil }
func (f *fakeAddresses) Delete(userID, addressID string) error     { return nil }

type fakeUsers struct {
	users map[string]*models.User
}

func (f *fakeUsers) Create(u *models.User) error                  { f.users[u.ID] = u; return nil }
func (f *fakeUsers) Update(u *models.User) error                  { f.users[u.ID] = u; return nil }
func (f *fakeUsers) GetByID(id string) (*models.User, error)      { return f.users[id], nil }
func (f *fakeUsers) GetByEmail(e string) (*models.User, error)    { return nil, nil }
func (f *fakeUsers) GetAll() ([]models.User, error)               { return nil, nil }
func (f *fakeUsers) SetBlocked(id string, blocked bool) error     { return nil }
func (f *fakeUsers) Delete(id string) error                       { delete(f.users, id); return nil }

type fakeOrders struct {
	orders    map[string]*models.Order
	setFields map[string]map[string]interface{}
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{orders: map[string]*models.Order{}, setFields: map[string]map[string]interface{}{}}
}

func (f *fakeOrders) Create(o *models.Order) error              { f.orders[o.ID] = o; return nil }
func (f *fakeOrders) GetByID(id string) (*models.Order, error)  { return f.orders[id], nil }
func (f *fakeOrders) GetByUserID(id string) ([]models.Order, error) { return nil, nil }
func (f *fakeOrders) GetAll() ([]models.Order, error)           { return nil, nil }
func (f *fakeOrders) SetFields(id string, fields map[string]interface{}) error {
	f.setFields[id] = fields
	return nil
}

type fakeInvoices struct {
	invoices  map[string]*models.Invoice
	setFields map[string]map[string]interface{}
}

func newFakeInvoices() *fakeInvoices {
	return &fakeInvoices{invoices: map[string]*models.Invoice{}, setFields: map[string]map[string]interface{}{}}
}

func (f *fakeInvoices) Create(i *models.Invoice) error               { f.invoices[i.ID] = i; return nil }
func (f *fakeInvoices) GetByID(id string) (*models.Invoice, error)   { return f.invoices[id], nil }
func (f *fakeInvoices) GetByUserID(id string) ([]models.Invoice, error) { return nil, nil }
func (f *fakeInvoices) GetAll() ([]models.Invoice, error)            { return nil, nil }
func (f *fakeInvoices) SetFields(id string, fields map[string]interface{}) error {
	f.setFields[id] = fields
	return nil
}

type fakeRequests struct {
	requests  map[string]*models.PaymentRequest
	setFields map[string]map[string]interface{}

	orders   *fakeOrders
	invoices *fakeInvoices

	bundleErr error
}

func newFakeRequests(orders *fakeOrders, invoices *fakeInvoices) *fakeRequests {
	return &fakeRequests{
		requests:  map[string]*models.PaymentRequest{},
		setFields: map[string]map[string]interface{}{},
		orders:    orders,
		invoices:  invoices,
	}
}

func (f *fakeRequests) Create(r *models.PaymentRequest) error { f.requests[r.ID] = r; return nil }
func (f *fakeRequests) GetByID(id string) (*models.PaymentRequest, error) {
	return f.requests[id], nil
}
func (f *fakeRequests) GetAll() ([]models.PaymentRequest, error) {
	out := make([]models.PaymentRequest, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, *r)
	}
	return out, nil
}
func (f *fakeRequests) SetFields(id string, fields map[string]interface{}) error {
	req, ok := f.requests[id]
	if !ok {
		return fmt.Errorf("payment request with id %s not found", id)
	}
	f.setFields[id] = fields
	if v, ok := fields["status"]; ok {
		req.Status = v.(models.WirePaymentStatus)
	}
	if v, ok := fields["proofUrl"]; ok {
		req.ProofURL = v.(string)
	}
	if v, ok := fields["linkToken"]; ok {
		req.LinkToken = v.(string)
	}
	return nil
}

// CreateRequestBundle mirrors the transactional contract: either all three
// records land or none do.
func (f *fakeRequests) CreateRequestBundle(ctx context.Context, order *models.Order, invoice *models.Invoice, request *models.PaymentRequest) error {
	if f.bundleErr != nil {
		return f.bundleErr
	}
	f.orders.orders[order.ID] = order
	f.invoices.invoices[invoice.ID] = invoice
	f.requests[request.ID] = request
	return nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) Send(to, subject, textBody, htmlBody string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to+": "+subject)
	return nil
}

type fakeStorage struct {
	uploaded []string
	url      string
	err      error
}

func (f *fakeStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploaded = append(f.uploaded, localFilePath)
	return f.url, nil
}
func (f *fakeStorage) DeleteFile(ctx context.Context, publicID string) error { return nil }
func (f *fakeStorage) GetDownloadURL(ctx context.Context, resourceType, publicID string) (string, error) {
	return f.url, nil
}

// ---- harness ----

type harness struct {
	svc      *DefaultWireService
	carts    *fakeCarts
	addrs    *fakeAddresses
	users    *fakeUsers
	orders   *fakeOrders
	invoices *fakeInvoices
	requests *fakeRequests
	mailer   *fakeMailer
	storage  *fakeStorage
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	codec, err := NewCodec(testSecret)
	require.NoError(t, err)

	orders := newFakeOrders()
	invoices := newFakeInvoices()
	requests := newFakeRequests(orders, invoices)
	carts := &fakeCarts{carts: map[string]*models.Cart{}}
	addrs := &fakeAddresses{defaults: map[string]*models.Address{}}
	users := &fakeUsers{users: map[string]*models.User{}}
	mailer := &fakeMailer{}
	store := &fakeStorage{url: "https://cdn.example.com/uploads/payments/proof.pdf"}

	svc := &DefaultWireService{
		Requests:   requests,
		Orders:     orders,
		Invoices:   invoices,
		Users:      users,
		Carts:      carts,
		Addresses:  addrs,
		Mailer:     mailer,
		Storage:    store,
		Codec:      codec,
		BaseURL:    "https://deluxconex.com",
		AdminEmail: "admin@deluxconex.com",
	}

	return &harness{
		svc: svc, carts: carts, addrs: addrs, users: users,
		orders: orders, invoices: invoices, requests: requests,
		mailer: mailer, storage: store,
	}
}

func (h *harness) seedCustomer(userID string) {
	h.users.users[userID] = &models.User{ID: userID, FullName: "Jordan Smith", Email: "jordan@example.com"}
	h.carts.carts[userID] = &models.Cart{
		ID:     "cart-1",
		UserID: userID,
		Items: []models.CartItem{
			{ProductID: "p1", Name: "20ft Container", ItemPrice: 100, Quantity: 1, TotalPrice: 100,
				SelectedDelivery: &models.CartDelivery{Method: "tilt-bed", Price: 5}},
		},
		Subtotal: 100,
		Shipping: 5,
		Tax:      10,
		Total:    115,
	}
	h.addrs.defaults[userID] = &models.Address{
		ID: "addr-1", UserID: userID, Street: "1 Dock Rd", City: "Miami",
		State: "FL", PostalCode: "33101", Country: "US", IsDefault: true,
	}
}

func (h *harness) seedIssuedRequestWithDays(t *testing.T, daysValid int) (*models.PaymentRequest, string) {
	t.Helper()

	h.seedCustomer("usr-1")
	require.NoError(t, h.svc.RequestPayment(context.Background(), "usr-1"))

	var request *models.PaymentRequest
	for _, r := range h.requests.requests {
		request = r
	}
	require.NotNil(t, request)

	_, err := h.svc.IssueDetails(context.Background(), request.ID, BankDetails{
		AccountName:   "DeluxConex LLC",
		AccountNumber: "000123456789",
		RoutingNumber: "026009593",
		BankName:      "Bank of America",
	}, daysValid)
	require.NoError(t, err)
	require.NotEmpty(t, request.LinkToken)

	return request, request.LinkToken
}

// ---- intake ----

func TestRequestPaymentCreatesLinkedBundle(t *testing.T) {
	h := newHarness(t)
	h.seedCustomer("usr-1")

	require.NoError(t, h.svc.RequestPayment(context.Background(), "usr-1"))

	require.Len(t, h.orders.orders, 1)
	require.Len(t, h.invoices.invoices, 1)
	require.Len(t, h.requests.requests, 1)

	var order *models.Order
	for _, o := range h.orders.orders {
		order = o
	}
	var invoice *models.Invoice
	for _, i := range h.invoices.invoices {
		invoice = i
	}
	var request *models.PaymentRequest
	for _, r := range h.requests.requests {
		request = r
	}

	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, "wire", order.PaymentMethod)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
	assert.Equal(t, 115.0, order.Total)
	assert.Equal(t, "Miami", order.ShippingAddress.City)

	assert.Equal(t, models.InvoiceDraft, invoice.Status)
	assert.Equal(t, 115.0, invoice.Total)
	assert.Equal(t, order.ID, invoice.OrderID)
	assert.NotEmpty(t, invoice.InvoiceNumber)

	assert.Equal(t, models.WirePending, request.Status)
	assert.Equal(t, order.ID, request.OrderID)
	assert.Equal(t, invoice.ID, request.InvoiceID)
	assert.Equal(t, "usr-1", request.UserID)

	// Wire intake never clears the cart.
	assert.NotNil(t, h.carts.carts["usr-1"])

	require.Len(t, h.mailer.sent, 1)
	assert.Contains(t, h.mailer.sent[0], "jordan@example.com")
}

func TestRequestPaymentEmptyCart(t *testing.T) {
	h := newHarness(t)
	h.seedCustomer("usr-1")
	h.carts.carts["usr-1"].Items = nil

	err := h.svc.RequestPayment(context.Background(), "usr-1")
	assert.ErrorIs(t, err, ErrEmptyCart)

	// Missing cart behaves the same as an empty one.
	delete(h.carts.carts, "usr-1")
	err = h.svc.RequestPayment(context.Background(), "usr-1")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestRequestPaymentNoDefaultAddress(t *testing.T) {
	h := newHarness(t)
	h.seedCustomer("usr-1")
	delete(h.addrs.defaults, "usr-1")

	err := h.svc.RequestPayment(context.Background(), "usr-1")
	assert.ErrorIs(t, err, ErrAddressRequired)
	assert.Empty(t, h.orders.orders)
}

func TestRequestPaymentTransactionFailureLeavesNothing(t *testing.T) {
	h := newHarness(t)
	h.seedCustomer("usr-1")
	h.requests.bundleErr = errors.New("insert invoice failed: connection reset")

	err := h.svc.RequestPayment(context.Background(), "usr-1")

	var persistence PersistenceError
	require.ErrorAs(t, err, &persistence)
	assert.Empty(t, h.orders.orders)
	assert.Empty(t, h.invoices.invoices)
	assert.Empty(t, h.requests.requests)
	assert.Empty(t, h.mailer.sent)
}

func TestRequestPaymentNotificationFailureIsSwallowed(t *testing.T) {
	h := newHarness(t)
	h.seedCustomer("usr-1")
	h.mailer.err = errors.New("smtp down")

	require.NoError(t, h.svc.RequestPayment(context.Background(), "usr-1"))
	assert.Len(t, h.requests.requests, 1)
}

// ---- issuance ----

func TestIssueDetailsDefaultValidityWindow(t *testing.T) {
	h := newHarness(t)
	h.seedCustomer("usr-1")
	require.NoError(t, h.svc.RequestPayment(context.Background(), "usr-1"))

	var request *models.PaymentRequest
	for _, r := range h.requests.requests {
		request = r
	}

	before := time.Now()
	result, err := h.svc.IssueDetails(context.Background(), request.ID, BankDetails{BankName: "Chase"}, 0)
	after := time.Now()
	require.NoError(t, err)

	assert.WithinRange(t, result.ExpiresAt,
		before.Add(2*24*time.Hour), after.Add(2*24*time.Hour))
	assert.Contains(t, result.Link, "https://deluxconex.com/payment/wire?token=")
}

func TestIssueDetailsScenario(t *testing.T) {
	h := newHarness(t)
	request, token := h.seedIssuedRequestWithDays(t, 5)

	assert.Equal(t, models.WireIssued, request.Status)
	require.NotEmpty(t, token)

	fields := h.requests.setFields[request.ID]
	assert.Equal(t, "DeluxConex LLC", fields["accountName"])
	assert.Equal(t, token, fields["linkToken"])

	expiresAt, ok := fields["expiresAt"].(time.Time)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(5*24*time.Hour), expiresAt, time.Minute)

	var payload TokenPayload
	require.NoError(t, h.svc.Codec.Decode(token, &payload))
	assert.Equal(t, 115.0, payload.Total)
	assert.Equal(t, "USD", payload.Currency)
	assert.Equal(t, request.ID, payload.RequestID)
	assert.Equal(t, request.InvoiceID, payload.InvoiceID)
	assert.Equal(t, request.OrderID, payload.OrderID)
}

func TestIssueDetailsUnknownRequest(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.IssueDetails(context.Background(), "nope", BankDetails{}, 2)

	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "payment request", notFound.Entity)
}

// ---- retrieval ----

func TestGetPaymentInfoComesFromToken(t *testing.T) {
	h := newHarness(t)
	request, token := h.seedIssuedRequestWithDays(t, 2)

	// Mutate the stored row after issuance. The link must keep showing
	// what was promised.
	request.AccountNumber = "tampered"
	request.BankName = "Other Bank"

	info, err := h.svc.GetPaymentInfo(token)
	require.NoError(t, err)

	assert.Equal(t, "000123456789", info.AccountNumber)
	assert.Equal(t, "Bank of America", info.BankName)
	assert.Equal(t, 115.0, info.Total)
	assert.Equal(t, "USD", info.Currency)
	assert.Equal(t, request.ID, info.RequestID)
}

func TestGetPaymentInfoExpiredAndInvalid(t *testing.T) {
	h := newHarness(t)

	expired := testPayload()
	expired.ExpiresAt = time.Now().Add(-time.Minute).Format(time.RFC3339)
	token, err := h.svc.Codec.Encode(expired)
	require.NoError(t, err)

	_, err = h.svc.GetPaymentInfo(token)
	assert.ErrorIs(t, err, ErrExpiredLink)

	_, err = h.svc.GetPaymentInfo("garbage-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// ---- proof submission ----

func TestSubmitProofWithFile(t *testing.T) {
	h := newHarness(t)
	request, token := h.seedIssuedRequestWithDays(t, 2)

	require.NoError(t, h.svc.SubmitProof(context.Background(), token, "/tmp/receipt.pdf"))

	assert.Equal(t, models.WireProofSubmitted, request.Status)
	assert.Equal(t, h.storage.url, request.ProofURL)
	assert.Equal(t, []string{"/tmp/receipt.pdf"}, h.storage.uploaded)

	assert.Equal(t, models.InvoiceSent, h.invoices.setFields[request.InvoiceID]["status"])
	assert.Equal(t, models.PaymentPending, h.orders.setFields[request.OrderID]["paymentStatus"])
	assert.Equal(t, models.OrderPending, h.orders.setFields[request.OrderID]["status"])

	// Customer and admin notifications.
	require.Len(t, h.mailer.sent, 4)
	assert.Contains(t, h.mailer.sent[len(h.mailer.sent)-1], "admin@deluxconex.com")
}

func TestSubmitProofWithoutFileStillTransitions(t *testing.T) {
	h := newHarness(t)
	request, token := h.seedIssuedRequestWithDays(t, 2)
	request.ProofURL = "https://cdn.example.com/existing.pdf"

	require.NoError(t, h.svc.SubmitProof(context.Background(), token, ""))

	assert.Equal(t, models.WireProofSubmitted, request.Status)
	assert.Equal(t, "https://cdn.example.com/existing.pdf", request.ProofURL)
	assert.Empty(t, h.storage.uploaded)
}

func TestSubmitProofExpiredToken(t *testing.T) {
	h := newHarness(t)

	expired := testPayload()
	expired.ExpiresAt = time.Now().Add(-time.Hour).Format(time.RFC3339)
	token, err := h.svc.Codec.Encode(expired)
	require.NoError(t, err)

	err = h.svc.SubmitProof(context.Background(), token, "")
	assert.ErrorIs(t, err, ErrExpiredLink)
}

func TestSubmitProofRowDeleted(t *testing.T) {
	h := newHarness(t)
	request, token := h.seedIssuedRequestWithDays(t, 2)
	delete(h.requests.requests, request.ID)

	err := h.svc.SubmitProof(context.Background(), token, "")

	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
}

// ---- administrative verdict ----

func TestUpdateRequestStatusVerified(t *testing.T) {
	h := newHarness(t)
	request, token := h.seedIssuedRequestWithDays(t, 2)
	require.NoError(t, h.svc.SubmitProof(context.Background(), token, ""))

	updated, err := h.svc.UpdateRequestStatus(request.ID, models.WireVerified, "matched statement line 42")
	require.NoError(t, err)

	assert.Equal(t, models.WireVerified, updated.Status)
	assert.Equal(t, models.InvoicePaid, h.invoices.setFields[request.InvoiceID]["status"])
	assert.Equal(t, models.PaymentPaid, h.orders.setFields[request.OrderID]["paymentStatus"])
}

func TestUpdateRequestStatusRejectsWorkflowStates(t *testing.T) {
	h := newHarness(t)
	request, _ := h.seedIssuedRequestWithDays(t, 2)

	for _, status := range []models.WirePaymentStatus{
		models.WirePending, models.WireIssued, models.WireProofSubmitted,
	} {
		_, err := h.svc.UpdateRequestStatus(request.ID, status, "")
		assert.Error(t, err, string(status))
	}
}
