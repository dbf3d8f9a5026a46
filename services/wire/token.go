package wire

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

const (
	nonceLength = 16
	tagLength   = 16
)

// TokenPayload is the self-contained content of a payment link token. Field
// names are part of the external contract; the token must stay readable by
// any holder of the key without a database lookup.
type TokenPayload struct {
	RequestID     string  `json:"requestId"`
	InvoiceID     string  `json:"invoiceId"`
	OrderID       string  `json:"orderId"`
	UserID        string  `json:"userId"`
	AccountName   string  `json:"accountName"`
	AccountNumber string  `json:"accountNumber"`
	RoutingNumber string  `json:"routingNumber"`
	BankName      string  `json:"bankName"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
	ExpiresAt     string  `json:"expiresAt"`
}

// Expired reports whether the embedded expiry timestamp has passed. An
// unparseable timestamp counts as expired.
func (p TokenPayload) Expired(now time.Time) bool {
	t, err := time.Parse(time.RFC3339, p.ExpiresAt)
	if err != nil {
		return true
	}
	return t.Before(now)
}

// Codec encodes and decodes payment link tokens using AES-256-GCM. The key
// is derived from a long-term secret via SHA-256; tokens are URL-safe
// base64 of nonce followed by auth tag followed by ciphertext.
type Codec struct {
	key []byte
}

// NewCodec derives a codec key from the secret. The secret must be at
// least 32 characters long.
func NewCodec(secret string) (*Codec, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("wire encryption secret must be set and at least 32 characters long")
	}
	key := sha256.Sum256([]byte(secret))
	return &Codec{key: key[:]}, nil
}

func (c *Codec) newGCM() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCMWithNonceSize(block, nonceLength)
}

// Encode serializes the payload to JSON and encrypts it under a fresh
// random nonce, so two calls with an identical payload never produce the
// same token.
func (c *Codec) Encode(payload any) (string, error) {
	gcm, err := c.newGCM()
	if err != nil {
		return "", fmt.Errorf("failed to build cipher: %w", err)
	}

	plaintext, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to serialize payload: %w", err)
	}

	nonce := make([]byte, nonceLength)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, plaintext, nil)
	ciphertext := sealed[:len(sealed)-tagLength]
	tag := sealed[len(sealed)-tagLength:]

	combined := make([]byte, 0, nonceLength+tagLength+len(ciphertext))
	combined = append(combined, nonce...)
	combined = append(combined, tag...)
	combined = append(combined, ciphertext...)

	return base64.RawURLEncoding.EncodeToString(combined), nil
}

// Decode reverses Encode into out. Any failure, from malformed base64 to
// an authentication mismatch, comes back as ErrInvalidToken; no partial
// payload is ever returned. Expiry is not checked here.
func (c *Codec) Decode(token string, out any) error {
	buffer, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if len(buffer) < nonceLength+tagLength {
		return fmt.Errorf("%w: token too short", ErrInvalidToken)
	}

	nonce := buffer[:nonceLength]
	tag := buffer[nonceLength : nonceLength+tagLength]
	ciphertext := buffer[nonceLength+tagLength:]

	gcm, err := c.newGCM()
	if err != nil {
		return fmt.Errorf("failed to build cipher: %w", err)
	}

	sealed := make([]byte, 0, len(ciphertext)+tagLength)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if err := json.Unmarshal(plaintext, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return nil
}
