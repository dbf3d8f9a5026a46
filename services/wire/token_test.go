package wire

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testPayload() TokenPayload {
	return TokenPayload{
		RequestID:     "req-1",
		InvoiceID:     "inv-1",
		OrderID:       "ord-1",
		UserID:        "usr-1",
		AccountName:   "DeluxConex LLC",
		AccountNumber: "000123456789",
		RoutingNumber: "026009593",
		BankName:      "Bank of America",
		Total:         115,
		Currency:      "USD",
		ExpiresAt:     time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	}
}

func TestNewCodecRejectsShortSecret(t *testing.T) {
	_, err := NewCodec("too-short")
	require.Error(t, err)

	_, err = NewCodec(strings.Repeat("x", 31))
	require.Error(t, err)

	_, err = NewCodec(strings.Repeat("x", 32))
	require.NoError(t, err)
}

func TestCodecRoundTrip(t *testing.T) {
	codec, err := NewCodec(testSecret)
	require.NoError(t, err)

	in := testPayload()
	token, err := codec.Encode(in)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	var out TokenPayload
	require.NoError(t, codec.Decode(token, &out))
	assert.Equal(t, in, out)
}

func TestCodecNonDeterministic(t *testing.T) {
	codec, err := NewCodec(testSecret)
	require.NoError(t, err)

	in := testPayload()
	first, err := codec.Encode(in)
	require.NoError(t, err)
	second, err := codec.Encode(in)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCodecTamperEvidence(t *testing.T) {
	codec, err := NewCodec(testSecret)
	require.NoError(t, err)

	token, err := codec.Encode(testPayload())
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)

	// Flipping any single byte must fail authentication, whether it lands
	// in the nonce, the tag or the ciphertext.
	for i := range raw {
		mutated := make([]byte, len(raw))
		copy(mutated, raw)
		mutated[i] ^= 0x01

		var out TokenPayload
		err := codec.Decode(base64.RawURLEncoding.EncodeToString(mutated), &out)
		assert.ErrorIs(t, err, ErrInvalidToken, "byte %d", i)
	}
}

func TestCodecDecodeFailures(t *testing.T) {
	codec, err := NewCodec(testSecret)
	require.NoError(t, err)

	var out TokenPayload

	assert.ErrorIs(t, codec.Decode("not base64 !!!", &out), ErrInvalidToken)
	assert.ErrorIs(t, codec.Decode("", &out), ErrInvalidToken)

	// Truncated below nonce+tag length.
	short := base64.RawURLEncoding.EncodeToString(make([]byte, nonceLength+tagLength-1))
	assert.ErrorIs(t, codec.Decode(short, &out), ErrInvalidToken)

	// Valid token decoded with a different key.
	token, err := codec.Encode(testPayload())
	require.NoError(t, err)
	other, err := NewCodec(strings.Repeat("y", 32))
	require.NoError(t, err)
	assert.ErrorIs(t, other.Decode(token, &out), ErrInvalidToken)
}

func TestCodecTruncatedCiphertext(t *testing.T) {
	codec, err := NewCodec(testSecret)
	require.NoError(t, err)

	token, err := codec.Encode(testPayload())
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)

	var out TokenPayload
	truncated := base64.RawURLEncoding.EncodeToString(raw[:len(raw)-1])
	assert.ErrorIs(t, codec.Decode(truncated, &out), ErrInvalidToken)
}

func TestPayloadExpired(t *testing.T) {
	now := time.Now()

	p := TokenPayload{ExpiresAt: now.Add(-time.Millisecond).Format(time.RFC3339Nano)}
	assert.True(t, p.Expired(now))

	p.ExpiresAt = now.Add(24 * time.Hour).Format(time.RFC3339)
	assert.False(t, p.Expired(now))

	p.ExpiresAt = "garbage"
	assert.True(t, p.Expired(now))
}
