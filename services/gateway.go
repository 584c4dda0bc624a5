// services/gateway.go
package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"os"

	"glowdesk-backend/utils"

	razorpay "github.com/razorpay/razorpay-go"
)

// ErrInvalidSignature is the hard rejection for any callback whose
// signature does not match. It gates every financial state transition
// behind the gateway and is never downgraded to a warning.
var ErrInvalidSignature = errors.New("Invalid payment signature")

// PaymentGateway wraps the Razorpay client for order and payment-link
// creation plus callback signature verification.
type PaymentGateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
}

func NewPaymentGateway() *PaymentGateway {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")

	return &PaymentGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keyID:     keyID,
		keySecret: keySecret,
	}
}

func (g *PaymentGateway) KeyID() string {
	return g.keyID
}

// GatewayOrder holds the identifiers the embedded checkout widget
// needs.
type GatewayOrder struct {
	OrderID     string
	AmountPaise int64
	Currency    string
}

// rupeesToPaise converts a rupee amount to minor units. Rounded, not
// truncated: a fractional-rupee bill must charge exactly what the visit
// records.
func rupeesToPaise(amountRupees float64) int64 {
	return int64(math.Round(amountRupees * 100))
}

// CreateOrder creates a gateway order for the given amount in rupees.
// The amount is converted to paise server-side; the client never sends
// minor units.
func (g *PaymentGateway) CreateOrder(amountRupees float64, name, phone string) (GatewayOrder, error) {
	amountPaise := rupeesToPaise(amountRupees)

	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  "visit_" + utils.GenerateRandomString(10),
		"notes": map[string]interface{}{
			"name":  name,
			"phone": phone,
		},
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return GatewayOrder{}, fmt.Errorf("gateway order creation failed: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok {
		return GatewayOrder{}, errors.New("gateway order response missing id")
	}

	return GatewayOrder{
		OrderID:     orderID,
		AmountPaise: amountPaise,
		Currency:    "INR",
	}, nil
}

// CreatePaymentLink creates a hosted payment link the client can be
// redirected to (legacy path).
func (g *PaymentGateway) CreatePaymentLink(amountRupees float64, name, phone, callbackURL string) (string, error) {
	data := map[string]interface{}{
		"amount":      rupeesToPaise(amountRupees),
		"currency":    "INR",
		"description": "GlowDesk visit payment",
		"customer": map[string]interface{}{
			"name":    name,
			"contact": phone,
		},
		"notify": map[string]interface{}{
			"sms": true,
		},
	}
	if callbackURL != "" {
		data["callback_url"] = callbackURL
		data["callback_method"] = "get"
	}

	body, err := g.client.PaymentLink.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("gateway payment link creation failed: %w", err)
	}

	shortURL, ok := body["short_url"].(string)
	if !ok {
		return "", errors.New("gateway payment link response missing short_url")
	}

	return shortURL, nil
}

// FetchPaymentAmount looks up a payment and returns its amount in
// rupees, for the status page after a hosted link redirect.
func (g *PaymentGateway) FetchPaymentAmount(paymentID string) (float64, string, error) {
	body, err := g.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return 0, "", fmt.Errorf("gateway payment fetch failed: %w", err)
	}

	currency, _ := body["currency"].(string)
	if amount, ok := body["amount"].(float64); ok {
		return amount / 100, currency, nil
	}
	return 0, currency, nil
}

// VerifyOrderSignature checks the signature Razorpay attaches to an
// embedded-checkout payment: HMAC-SHA256 over "order_id|payment_id".
func (g *PaymentGateway) VerifyOrderSignature(orderID, paymentID, signature string) error {
	return verifySignature(orderID+"|"+paymentID, signature, g.keySecret)
}

// VerifyLinkSignature checks the signature on a hosted payment-link
// redirect: HMAC-SHA256 over
// "link_id|link_reference_id|link_status|payment_id".
func (g *PaymentGateway) VerifyLinkSignature(linkID, linkReferenceID, linkStatus, paymentID, signature string) error {
	payload := linkID + "|" + linkReferenceID + "|" + linkStatus + "|" + paymentID
	return verifySignature(payload, signature, g.keySecret)
}

// verifySignature recomputes the HMAC locally and compares in constant
// time. Any mismatch is a hard rejection.
func verifySignature(payload, signature, secret string) error {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}
