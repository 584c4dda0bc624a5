// controllers/visit.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"glowdesk-backend/config"
	"glowdesk-backend/models"
	"glowdesk-backend/services"
	"glowdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateVisitInput defines the expected JSON structure for recording a
// visit. Every numeric field is revalidated server-side; client-side
// totals are display only.
type CreateVisitInput struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact" binding:"required"`
	Age     int    `json:"age" binding:"omitempty,min=0,max=120"`
	Gender  string `json:"gender" binding:"omitempty,oneof=male female other"`

	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`

	Artist   string     `json:"artist" binding:"required"`
	ArtistID *uuid.UUID `json:"artistId"`

	ServiceIDs      []uuid.UUID `json:"serviceIds" binding:"required,min=1"`
	DiscountPercent float64     `json:"discountPercent"`

	PaymentMethod     string  `json:"paymentMethod" binding:"required,oneof=online cash partial"`
	CashAmount        float64 `json:"cashAmount"`
	RazorpayPaymentID string  `json:"razorpayPaymentId"`
}

// CreateVisit turns a submitted visit into the immutable financial
// record: prices are re-resolved from the catalog, the discount and
// payment split recomputed, and the result written exactly once.
func CreateVisit(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}
	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input CreateVisitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Contact) {
		utils.RespondWithError(c, http.StatusBadRequest, "Contact must be a valid 10-digit Indian mobile number")
		return
	}
	if !utils.ValidateClock(input.StartTime) || !utils.ValidateClock(input.EndTime) {
		utils.RespondWithError(c, http.StatusBadRequest, "startTime and endTime must be HH:mm")
		return
	}
	visitDate, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	// Resolve prices from the authoritative catalog. IDs that no longer
	// match an active service are dropped silently; the bill covers
	// whatever remains.
	var catalog []models.Service
	if err := config.DB.Where("id IN ? AND is_active = true", input.ServiceIDs).
		Find(&catalog).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	lines := make([]services.BillLine, 0, len(catalog))
	for _, svc := range catalog {
		lines = append(lines, services.BillLine{
			ServiceID: svc.ID,
			Name:      svc.Name,
			Price:     svc.Price,
		})
	}

	bill, err := services.ComputeBill(lines, input.DiscountPercent)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	split, err := services.ResolvePaymentSplit(input.PaymentMethod, bill.FinalTotal, input.CashAmount, input.RazorpayPaymentID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	visit := models.Visit{
		ID:            uuid.New(),
		ClientName:    input.Name,
		ClientContact: utils.NormalizePhone(input.Contact),
		ClientAge:     input.Age,
		ClientGender:  input.Gender,

		VisitDate: visitDate,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,

		ArtistName: input.Artist,
		ArtistID:   input.ArtistID,

		Subtotal:        bill.Subtotal,
		DiscountPercent: bill.DiscountPercent,
		DiscountAmount:  bill.DiscountAmount,
		FinalTotal:      bill.FinalTotal,

		PaymentMethod: split.Method,
		CashAmount:    split.CashAmount,
		OnlineAmount:  split.OnlineAmount,
		PaymentStatus: models.PaymentStatusSuccess,

		CreatedByUserID: userUUID,
	}
	if input.RazorpayPaymentID != "" {
		paymentID := input.RazorpayPaymentID
		visit.RazorpayPaymentID = &paymentID
	}

	for _, line := range bill.Lines {
		visit.Services = append(visit.Services, models.VisitService{
			ID:        uuid.New(),
			VisitID:   visit.ID,
			ServiceID: line.ServiceID,
			Name:      line.Name,
			Price:     line.Price,
		})
	}

	if err := config.DB.Create(&visit).Error; err != nil {
		if split.Method == models.PaymentMethodCash {
			// No money at risk yet, a plain failure is fine.
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create visit")
			return
		}

		// Payment already succeeded. The money is safe; park the record
		// for the reconciliation worker and tell the operator.
		log.Printf("Visit write failed after successful payment %s: %v", input.RazorpayPaymentID, err)
		if enqErr := reconciler.Enqueue(visit, input.RazorpayPaymentID); enqErr != nil {
			log.Printf("Failed to enqueue reconciliation for payment %s: %v", input.RazorpayPaymentID, enqErr)
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"warning":    "visit record creation failed",
			"finalTotal": bill.FinalTotal,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"visitId":    visit.ID,
		"finalTotal": bill.FinalTotal,
	})
}

// GetVisits lists visits, newest first, filtered by date range and
// optionally by artist.
func GetVisits(c *gin.Context) {
	query := config.DB.Preload("Services").Order("visit_date DESC, created_at DESC")

	if from := c.Query("from"); from != "" {
		fromDate, err := time.Parse("2006-01-02", from)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "from must be YYYY-MM-DD")
			return
		}
		query = query.Where("visit_date >= ?", fromDate)
	}
	if to := c.Query("to"); to != "" {
		toDate, err := time.Parse("2006-01-02", to)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "to must be YYYY-MM-DD")
			return
		}
		query = query.Where("visit_date <= ?", toDate)
	}
	if artistID := c.Query("artistId"); artistID != "" {
		artistUUID, err := uuid.Parse(artistID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid artist ID format")
			return
		}
		query = query.Where("artist_id = ?", artistUUID)
	}

	var visits []models.Visit
	if err := query.Find(&visits).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve visits")
		return
	}

	c.JSON(http.StatusOK, visits)
}

// GetVisit retrieves a single visit by ID
func GetVisit(c *gin.Context) {
	visitUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid visit ID format")
		return
	}

	var visit models.Visit
	if err := config.DB.Preload("Services").First(&visit, "id = ?", visitUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Visit not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, visit)
}
