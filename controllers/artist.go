// controllers/artist.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"glowdesk-backend/config"
	"glowdesk-backend/models"
	"glowdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateArtistInput defines the expected JSON structure for creating an artist
type CreateArtistInput struct {
	Name           string     `json:"name" binding:"required"`
	Phone          string     `json:"phone" binding:"required"`
	Email          *string    `json:"email" binding:"omitempty,email"`
	RegistrationID *string    `json:"registrationId"`
	Commission     float64    `json:"commission" binding:"min=0,max=100"`
	Photo          string     `json:"photo"`
	UserID         *uuid.UUID `json:"userId"`
}

// UpdateArtistInput defines the expected JSON structure for updating an artist
type UpdateArtistInput struct {
	Name           *string    `json:"name"`
	Phone          *string    `json:"phone"`
	Email          *string    `json:"email"`
	RegistrationID *string    `json:"registrationId"`
	Commission     *float64   `json:"commission"`
	Photo          *string    `json:"photo"`
	UserID         *uuid.UUID `json:"userId"`
	IsActive       *bool      `json:"isActive"`
}

// CreateArtist adds a directory entry (owner/manager)
func CreateArtist(c *gin.Context) {
	var input CreateArtistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Phone must be a valid 10-digit Indian mobile number")
		return
	}
	phone := utils.NormalizePhone(input.Phone)

	// Friendly duplicate check; the unique index on phone is the real
	// enforcement.
	var existing models.Artist
	result := config.DB.Where("phone = ?", phone).First(&existing)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Phone number already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	// A linked login account must exist and carry the artist role
	if input.UserID != nil {
		var user models.User
		if err := config.DB.First(&user, "id = ?", *input.UserID).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Linked user not found")
			return
		}
		if user.Role != models.RoleArtist {
			utils.RespondWithError(c, http.StatusBadRequest, "Linked user must have the artist role")
			return
		}
	}

	artist := models.Artist{
		Name:           input.Name,
		Phone:          phone,
		Email:          input.Email,
		RegistrationID: input.RegistrationID,
		Commission:     input.Commission,
		Photo:          input.Photo,
		UserID:         input.UserID,
		IsActive:       true,
	}

	if err := config.DB.Create(&artist).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			utils.RespondWithError(c, http.StatusConflict, "Phone number already registered")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create artist")
		}
		return
	}

	c.JSON(http.StatusCreated, artist)
}

// GetArtists retrieves the directory. Pass ?all=true to include
// deactivated artists.
func GetArtists(c *gin.Context) {
	query := config.DB.Order("name ASC")
	if c.Query("all") != "true" {
		query = query.Where("is_active = true")
	}

	var artists []models.Artist
	if err := query.Find(&artists).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve artists")
		return
	}

	c.JSON(http.StatusOK, artists)
}

// GetArtist retrieves a specific artist by ID
func GetArtist(c *gin.Context) {
	artistUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid artist ID format")
		return
	}

	var artist models.Artist
	if err := config.DB.First(&artist, "id = ?", artistUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Artist not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, artist)
}

// UpdateArtist updates a directory entry (owner/manager). Changing the
// commission percentage retroactively changes commission reports, since
// rates are read at report time.
func UpdateArtist(c *gin.Context) {
	artistUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid artist ID format")
		return
	}

	var input UpdateArtistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var artist models.Artist
	if err := config.DB.First(&artist, "id = ?", artistUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Artist not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		artist.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Phone must be a valid 10-digit Indian mobile number")
			return
		}
		artist.Phone = utils.NormalizePhone(*input.Phone)
	}
	if input.Email != nil {
		artist.Email = input.Email
	}
	if input.RegistrationID != nil {
		artist.RegistrationID = input.RegistrationID
	}
	if input.Commission != nil {
		if *input.Commission < 0 || *input.Commission > 100 {
			utils.RespondWithError(c, http.StatusBadRequest, "Commission must be between 0 and 100")
			return
		}
		artist.Commission = *input.Commission
	}
	if input.Photo != nil {
		artist.Photo = *input.Photo
	}
	if input.UserID != nil {
		artist.UserID = input.UserID
	}
	if input.IsActive != nil {
		artist.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&artist).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			utils.RespondWithError(c, http.StatusConflict, "Phone number already registered")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update artist")
		}
		return
	}

	c.JSON(http.StatusOK, artist)
}

// DeleteArtist deactivates a directory entry (owner/manager). Historical
// visits keep the denormalized artist name either way.
func DeleteArtist(c *gin.Context) {
	artistUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid artist ID format")
		return
	}

	result := config.DB.Model(&models.Artist{}).
		Where("id = ?", artistUUID).
		Update("is_active", false)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete artist")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Artist not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artist deactivated successfully"})
}
