package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_key_secret"

func sign(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func testGateway(t *testing.T) *PaymentGateway {
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", testSecret)
	return NewPaymentGateway()
}

func TestRupeesToPaise(t *testing.T) {
	// Fractional rupees must round, never truncate a paisa off the
	// server-computed amount
	assert.Equal(t, int64(1999), rupeesToPaise(19.99))
	assert.Equal(t, int64(72000), rupeesToPaise(720))
	assert.Equal(t, int64(100), rupeesToPaise(1))
	assert.Equal(t, int64(505), rupeesToPaise(5.05))
	assert.Equal(t, int64(30), rupeesToPaise(0.1+0.2))
}

func TestVerifyOrderSignature(t *testing.T) {
	g := testGateway(t)

	orderID := "order_123"
	paymentID := "pay_456"
	signature := sign(orderID+"|"+paymentID, testSecret)

	require.NoError(t, g.VerifyOrderSignature(orderID, paymentID, signature))
}

func TestVerifyOrderSignatureTampered(t *testing.T) {
	g := testGateway(t)

	orderID := "order_123"
	paymentID := "pay_456"

	cases := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
	}{
		{"signature from wrong secret", orderID, paymentID, sign(orderID+"|"+paymentID, "other_secret")},
		{"payment id swapped", orderID, "pay_999", sign(orderID+"|"+paymentID, testSecret)},
		{"order id swapped", "order_999", paymentID, sign(orderID+"|"+paymentID, testSecret)},
		{"empty signature", orderID, paymentID, ""},
		{"garbage signature", orderID, paymentID, "deadbeef"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := g.VerifyOrderSignature(tc.orderID, tc.paymentID, tc.signature)
			assert.ErrorIs(t, err, ErrInvalidSignature)
		})
	}
}

func TestVerifyLinkSignature(t *testing.T) {
	g := testGateway(t)

	payload := "plink_1|ref_1|paid|pay_1"
	require.NoError(t, g.VerifyLinkSignature("plink_1", "ref_1", "paid", "pay_1", sign(payload, testSecret)))

	// Tampering with the reported status must invalidate the signature
	err := g.VerifyLinkSignature("plink_1", "ref_1", "failed", "pay_1", sign(payload, testSecret))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}
