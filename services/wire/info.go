package wire

import "time"

// decodeActivePayload decodes a token and enforces its embedded expiry.
// The codec itself only proves integrity; the expiry check lives here so
// both customer-facing operations fail the same two ways.
func (s *DefaultWireService) decodeActivePayload(token string) (*TokenPayload, error) {
	var payload TokenPayload
	if err := s.Codec.Decode(token, &payload); err != nil {
		return nil, err
	}
	if payload.Expired(time.Now()) {
		return nil, ErrExpiredLink
	}
	return &payload, nil
}

// GetPaymentInfo resolves a payment link token into the bank details
// promised at issuance time. Everything comes from the token payload, not
// the stored row, so the page shows exactly what was issued regardless of
// later mutations.
func (s *DefaultWireService) GetPaymentInfo(token string) (*PaymentInfo, error) {
	payload, err := s.decodeActivePayload(token)
	if err != nil {
		return nil, err
	}

	return &PaymentInfo{
		AccountName:   payload.AccountName,
		AccountNumber: payload.AccountNumber,
		RoutingNumber: payload.RoutingNumber,
		BankName:      payload.BankName,
		Total:         payload.Total,
		Currency:      payload.Currency,
		ExpiresAt:     payload.ExpiresAt,
		RequestID:     payload.RequestID,
		InvoiceID:     payload.InvoiceID,
		OrderID:       payload.OrderID,
	}, nil
}
