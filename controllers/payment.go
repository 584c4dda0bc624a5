// controllers/payment.go
package controllers

import (
	"errors"
	"net/http"
	"os"

	"glowdesk-backend/services"
	"glowdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateOrderInput defines the expected JSON structure for creating a
// gateway order
type CreateOrderInput struct {
	Name   string  `json:"name" binding:"required"`
	Phone  string  `json:"phone" binding:"required"`
	Amount float64 `json:"amount" binding:"required,min=1"`
}

// VerifyOrderPaymentInput carries the signed payment descriptor the
// embedded checkout hands back
type VerifyOrderPaymentInput struct {
	RazorpayOrderID   string  `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string  `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string  `json:"razorpay_signature" binding:"required"`
	Name              string  `json:"name"`
	Phone             string  `json:"phone"`
	Amount            float64 `json:"amount"`
}

// CreatePaymentLinkInput defines the expected JSON structure for the
// hosted payment link path
type CreatePaymentLinkInput struct {
	Name   string  `json:"name" binding:"required"`
	Phone  string  `json:"phone" binding:"required"`
	Amount float64 `json:"amount" binding:"required,min=1"`
}

// CreateOrder creates a gateway order for a server-converted amount and
// returns the identifiers the embedded checkout widget needs.
func CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	order, err := gateway.CreateOrder(input.Amount, input.Name, input.Phone)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": order.OrderID,
		"amount":   order.AmountPaise,
		"currency": order.Currency,
		"key_id":   gateway.KeyID(),
		"name":     input.Name,
		"phone":    input.Phone,
	})
}

// VerifyOrderPayment checks the gateway signature on an embedded
// checkout callback. A mismatch is a hard rejection; nothing is
// persisted on any failure path.
func VerifyOrderPayment(c *gin.Context) {
	var input VerifyOrderPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required payment parameters")
		return
	}

	if err := gateway.VerifyOrderSignature(input.RazorpayOrderID, input.RazorpayPaymentID, input.RazorpaySignature); err != nil {
		if errors.Is(err, services.ErrInvalidSignature) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid payment signature",
			})
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"payment_id": input.RazorpayPaymentID,
		"order_id":   input.RazorpayOrderID,
		"amount":     input.Amount,
		"name":       input.Name,
		"phone":      input.Phone,
	})
}

// CreatePaymentLink creates a hosted payment link (legacy path) and,
// when Twilio is configured, texts it to the client.
func CreatePaymentLink(c *gin.Context) {
	var input CreatePaymentLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	linkURL, err := gateway.CreatePaymentLink(input.Amount, input.Name, input.Phone, os.Getenv("PAYMENT_CALLBACK_URL"))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	go notifier.SendPaymentLink(input.Name, input.Phone, linkURL)

	c.JSON(http.StatusOK, gin.H{
		"payment_link_url": linkURL,
	})
}

// VerifyPayment checks the signed query parameters on a hosted
// payment-link redirect.
func VerifyPayment(c *gin.Context) {
	paymentID := c.Query("razorpay_payment_id")
	linkID := c.Query("razorpay_payment_link_id")
	linkReferenceID := c.Query("razorpay_payment_link_reference_id")
	linkStatus := c.Query("razorpay_payment_link_status")
	signature := c.Query("razorpay_signature")

	if paymentID == "" || linkID == "" || linkStatus == "" || signature == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required payment parameters")
		return
	}

	if err := gateway.VerifyLinkSignature(linkID, linkReferenceID, linkStatus, paymentID, signature); err != nil {
		if errors.Is(err, services.ErrInvalidSignature) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid payment signature",
			})
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	amount, currency, err := gateway.FetchPaymentAmount(paymentID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"payment_id": paymentID,
		"amount":     amount,
		"currency":   currency,
		"name":       c.Query("name"),
		"phone":      c.Query("phone"),
		"status":     linkStatus,
	})
}
