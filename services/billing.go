// services/billing.go
package services

import (
	"errors"
	"math"

	"github.com/google/uuid"
)

// Billing and payment-split errors surfaced as 400s at the route
// boundary.
var (
	ErrNoServices        = errors.New("Select at least one service")
	ErrBadPartialSplit   = errors.New("cash amount must be between 1 and total minus 1 for partial payment")
	ErrPaymentIDRequired = errors.New("payment ID is required for online payment")
	ErrPaymentIDPresent  = errors.New("payment ID must not be set for cash payment")
	ErrUnknownMethod     = errors.New("unknown payment method")
)

// BillLine is one service priced from the authoritative catalog at
// billing time.
type BillLine struct {
	ServiceID uuid.UUID
	Name      string
	Price     float64
}

// Bill is the server-computed total for a visit. Client-side figures
// are display only and never trusted.
type Bill struct {
	Lines           []BillLine
	Subtotal        float64
	DiscountPercent float64
	DiscountAmount  float64
	FinalTotal      float64
}

// ComputeBill sums the priced lines and applies the discount. The
// discount percent is clamped to [0,100] and the discount amount is
// rounded to the nearest rupee.
func ComputeBill(lines []BillLine, discountPercent float64) (Bill, error) {
	if len(lines) == 0 {
		return Bill{}, ErrNoServices
	}

	if discountPercent < 0 {
		discountPercent = 0
	} else if discountPercent > 100 {
		discountPercent = 100
	}

	var subtotal float64
	for _, line := range lines {
		subtotal += line.Price
	}

	discountAmount := math.Round(subtotal * discountPercent / 100)
	finalTotal := subtotal - discountAmount
	if finalTotal < 0 {
		finalTotal = 0
	}

	return Bill{
		Lines:           lines,
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		FinalTotal:      finalTotal,
	}, nil
}

// PaymentSplit is the resolved cash/online division of a final total.
type PaymentSplit struct {
	Method       string
	CashAmount   float64
	OnlineAmount float64
}

// ResolvePaymentSplit validates the chosen payment mode against the
// server-computed total. For partial payments the online portion must
// keep at least one rupee so a zero-value gateway order can never be
// created.
func ResolvePaymentSplit(method string, finalTotal, cashAmount float64, paymentID string) (PaymentSplit, error) {
	switch method {
	case "online":
		if paymentID == "" {
			return PaymentSplit{}, ErrPaymentIDRequired
		}
		return PaymentSplit{Method: method, CashAmount: 0, OnlineAmount: finalTotal}, nil

	case "cash":
		if paymentID != "" {
			return PaymentSplit{}, ErrPaymentIDPresent
		}
		return PaymentSplit{Method: method, CashAmount: finalTotal, OnlineAmount: 0}, nil

	case "partial":
		if paymentID == "" {
			return PaymentSplit{}, ErrPaymentIDRequired
		}
		if cashAmount <= 0 || finalTotal-cashAmount < 1 {
			return PaymentSplit{}, ErrBadPartialSplit
		}
		return PaymentSplit{Method: method, CashAmount: cashAmount, OnlineAmount: finalTotal - cashAmount}, nil
	}

	return PaymentSplit{}, ErrUnknownMethod
}

// CommissionEarned applies an artist's current commission percentage to
// revenue. Rates are deliberately not snapshotted per visit, so a rate
// change alters past reports too.
func CommissionEarned(revenue, commissionPercent float64) float64 {
	if commissionPercent < 0 {
		commissionPercent = 0
	} else if commissionPercent > 100 {
		commissionPercent = 100
	}
	return math.Round(revenue*commissionPercent) / 100
}
