package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment methods and statuses on a visit.
const (
	PaymentMethodOnline  = "online"
	PaymentMethodCash    = "cash"
	PaymentMethodPartial = "partial"

	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

// Visit is the durable financial record for one client interaction.
// Totals are always server-computed and every service line is a
// name+price snapshot, so later catalog edits never rewrite history.
// There are no update or delete routes: a visit is written once.
type Visit struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	ClientName    string `gorm:"not null" json:"name"`
	ClientContact string `gorm:"index;not null" json:"contact"`
	ClientAge     int    `json:"age"`
	ClientGender  string `gorm:"type:varchar(10)" json:"gender"`

	VisitDate time.Time `gorm:"index:idx_visit_date_artist,priority:1;not null" json:"date"`
	StartTime string    `gorm:"type:varchar(5)" json:"startTime"` // HH:mm
	EndTime   string    `gorm:"type:varchar(5)" json:"endTime"`   // HH:mm

	// Artist name is denormalized so the record stays readable after a
	// rename or removal; the ID rides along for optional joins only.
	ArtistName string     `gorm:"not null" json:"artist"`
	ArtistID   *uuid.UUID `gorm:"type:uuid;index:idx_visit_date_artist,priority:2" json:"artistId"`

	Services []VisitService `gorm:"foreignKey:VisitID" json:"services"`

	Subtotal        float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	DiscountPercent float64 `gorm:"type:decimal(5,2);default:0.0" json:"discountPercent"`
	DiscountAmount  float64 `gorm:"type:decimal(10,2);default:0.0" json:"discountAmount"`
	FinalTotal      float64 `gorm:"type:decimal(10,2);not null" json:"finalTotal"`

	PaymentMethod     string  `gorm:"type:varchar(10);not null" json:"paymentMethod"`
	CashAmount        float64 `gorm:"type:decimal(10,2);default:0.0" json:"cashAmount"`
	OnlineAmount      float64 `gorm:"type:decimal(10,2);default:0.0" json:"onlineAmount"`
	PaymentStatus     string  `gorm:"type:varchar(10);default:'pending'" json:"paymentStatus"`
	RazorpayPaymentID *string `json:"razorpayPaymentId"`

	CreatedByUserID uuid.UUID `gorm:"type:uuid;index" json:"createdByUserId"`
	CreatedAt       time.Time `json:"createdAt"`
}

// VisitService is the per-line snapshot of a billed service at the
// moment of the visit.
type VisitService struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	VisitID uuid.UUID `gorm:"type:uuid;index;not null" json:"visitId"`

	// Kept for joins; Name and Price below are what reports read.
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`

	Name  string  `gorm:"not null" json:"name"`
	Price float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}
