package models

import (
	"time"

	"glowdesk-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff roles. The owner account is seeded from the environment and is
// never created through the API.
const (
	RoleReceptionist = "receptionist"
	RoleManager      = "manager"
	RoleOwner        = "owner"
	RoleArtist       = "artist"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleReceptionist, RoleManager, RoleOwner, RoleArtist:
		return true
	}
	return false
}

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	Role string `gorm:"type:varchar(20);not null" json:"role"`

	LastLogin *time.Time `json:"lastLogin"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CredentialsDrift reports whether the stored login differs from the
// given email/password pair. Used by owner seeding to keep the account
// in sync with the environment.
func (u *User) CredentialsDrift(email, password string) (emailChanged, passwordChanged bool) {
	return u.Email != email, !utils.CheckPasswordHash(password, u.Password)
}

// Initialize UUID and hash password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
