package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reconciliation entry statuses.
const (
	ReconciliationPending   = "pending"
	ReconciliationResolved  = "resolved"
	ReconciliationAbandoned = "abandoned"
)

// ReconciliationEntry is the durable record of a visit whose payment
// succeeded but whose database write failed. The full computed visit is
// kept as a payload so the background worker can replay the insert
// without recomputing anything. Money is never refunded on this path.
type ReconciliationEntry struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	PaymentID string `gorm:"index" json:"paymentId"`
	Payload   JSONB  `gorm:"type:jsonb;not null" json:"payload"`

	Status          string     `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Attempts        int        `gorm:"default:0" json:"attempts"`
	LastError       string     `gorm:"type:text" json:"lastError"`
	ResolvedVisitID *uuid.UUID `gorm:"type:uuid" json:"resolvedVisitId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *ReconciliationEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

// Custom JSONB type for replay payloads
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &j)
}
