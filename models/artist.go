package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Artist is a staff directory entry. It is not an authenticated
// principal unless linked to a User through UserID.
type Artist struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Name           string  `gorm:"not null" json:"name"`
	Phone          string  `gorm:"uniqueIndex;not null" json:"phone"`
	Email          *string `json:"email"`
	RegistrationID *string `json:"registrationId"`

	// Percentage of revenue the artist earns, 0-100. Read at
	// report-generation time, not snapshotted per visit.
	Commission float64 `gorm:"type:decimal(5,2);default:0.0" json:"commission"`

	Photo  string     `json:"photo"`
	UserID *uuid.UUID `gorm:"type:uuid;index" json:"userId"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Artist) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
