package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"glowdesk-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// A replay colliding with its own earlier successful insert means the
// visit is already recorded; that outcome must read as success, not
// count toward abandonment.
func TestIsDuplicateKeyErr(t *testing.T) {
	assert.True(t, isDuplicateKeyErr(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKeyErr(errors.New(
		`ERROR: duplicate key value violates unique constraint "visits_pkey" (SQLSTATE 23505)`)))

	assert.False(t, isDuplicateKeyErr(nil))
	assert.False(t, isDuplicateKeyErr(errors.New("connection refused")))
}

// A replayed entry must rebuild the visit exactly as it was computed at
// payment time, including the price snapshots.
func TestReconciliationPayloadRoundTrip(t *testing.T) {
	paymentID := "pay_123"
	visit := models.Visit{
		ID:            uuid.New(),
		ClientName:    "Asha",
		ClientContact: "9876543210",
		VisitDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		EndTime:       "11:30",
		ArtistName:    "Meera",
		Services: []models.VisitService{
			{ID: uuid.New(), ServiceID: uuid.New(), Name: "Haircut", Price: 300},
			{ID: uuid.New(), ServiceID: uuid.New(), Name: "Spa", Price: 500},
		},
		Subtotal:          800,
		DiscountPercent:   10,
		DiscountAmount:    80,
		FinalTotal:        720,
		PaymentMethod:     models.PaymentMethodPartial,
		CashAmount:        200,
		OnlineAmount:      520,
		PaymentStatus:     models.PaymentStatusSuccess,
		RazorpayPaymentID: &paymentID,
	}

	raw, err := json.Marshal(visit)
	require.NoError(t, err)
	var payload models.JSONB
	require.NoError(t, json.Unmarshal(raw, &payload))

	s := NewReconciliationService(nil)
	decoded, err := s.decodeVisit(models.ReconciliationEntry{
		PaymentID: paymentID,
		Payload:   payload,
	})
	require.NoError(t, err)

	assert.Equal(t, visit.ID, decoded.ID)
	assert.Equal(t, visit.FinalTotal, decoded.FinalTotal)
	assert.Equal(t, visit.CashAmount, decoded.CashAmount)
	assert.Equal(t, visit.OnlineAmount, decoded.OnlineAmount)
	require.Len(t, decoded.Services, 2)
	assert.Equal(t, "Haircut", decoded.Services[0].Name)
	assert.Equal(t, 300.0, decoded.Services[0].Price)
	require.NotNil(t, decoded.RazorpayPaymentID)
	assert.Equal(t, paymentID, *decoded.RazorpayPaymentID)
}
