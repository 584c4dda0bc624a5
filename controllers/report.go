// controllers/report.go
package controllers

import (
	"errors"
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

// ReportController handles all reporting functions
type ReportController struct{}

// AnalyticsSummary represents the read-side rollup over visit records
type AnalyticsSummary struct {
	From string `json:"from"`
	To   string `json:"to"`

	Revenue         float64 `json:"revenue"`
	CashCollected   float64 `json:"cashCollected"`
	OnlineCollected float64 `json:"onlineCollected"`
	VisitCount      int     `json:"visitCount"`
	UniqueClients   int     `json:"uniqueClients"`
	HoursWorked     float64 `json:"hoursWorked"`

	ServicesBreakdown []ServiceSummary   `json:"servicesBreakdown"`
	Commission        *CommissionSummary `json:"commission,omitempty"`
}

type ServiceSummary struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// CommissionSummary applies the artist's current commission percentage
// to the period revenue. The percentage used is echoed back so a caller
// can see which rate produced the figure.
type CommissionSummary struct {
	ArtistID   uuid.UUID `json:"artistId"`
	ArtistName string    `json:"artistName"`
	Percent    float64   `json:"percent"`
	Earned     float64   `json:"earned"`
}

// GetReportAnalytics returns the rollup for a date range, optionally
// scoped to one artist. Artist accounts are always scoped to their own
// directory entry. Nothing is cached; every call recomputes from raw
// rows.
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := utils.BeginningOfDay(now)

	var err error
	if v := c.Query("from"); v != "" {
		if from, err = time.Parse("2006-01-02", v); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "from must be YYYY-MM-DD")
			return
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err = time.Parse("2006-01-02", v); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "to must be YYYY-MM-DD")
			return
		}
	}

	var artist *models.Artist
	role, _ := c.Get("role")
	if role == models.RoleArtist {
		// Artists only ever see their own numbers
		userID, _ := c.Get("userId")
		var own models.Artist
		if err := config.DB.Where("user_id = ?", userID).First(&own).Error; err != nil {
			utils.RespondWithError(c, http.StatusForbidden, "No artist profile linked to this account")
			return
		}
		artist = &own
	} else if v := c.Query("artistId"); v != "" {
		artistUUID, err := uuid.Parse(v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid artist ID format")
			return
		}
		var scoped models.Artist
		if err := config.DB.First(&scoped, "id = ?", artistUUID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Artist not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		artist = &scoped
	}

	summary := AnalyticsSummary{
		From: from.Format("2006-01-02"),
		To:   to.Format("2006-01-02"),
	}

	base := rc.visitScope(from, to, artist)

	type totalsRow struct {
		Revenue float64
		Cash    float64
		Online  float64
		Count   int
		Clients int
	}
	var totals totalsRow
	if err := base.
		Select("COALESCE(SUM(final_total), 0) as revenue, COALESCE(SUM(cash_amount), 0) as cash, COALESCE(SUM(online_amount), 0) as online, COUNT(*) as count, COUNT(DISTINCT client_contact) as clients").
		Scan(&totals).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute revenue totals")
		return
	}
	summary.Revenue = totals.Revenue
	summary.CashCollected = totals.Cash
	summary.OnlineCollected = totals.Online
	summary.VisitCount = totals.Count
	summary.UniqueClients = totals.Clients

	hours, err := rc.getHoursWorked(from, to, artist)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute hours worked")
		return
	}
	summary.HoursWorked = hours

	breakdown, err := rc.getServicesBreakdown(from, to, artist)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute services breakdown")
		return
	}
	summary.ServicesBreakdown = breakdown

	if artist != nil {
		summary.Commission = &CommissionSummary{
			ArtistID:   artist.ID,
			ArtistName: artist.Name,
			Percent:    artist.Commission,
			Earned:     services.CommissionEarned(totals.Revenue, artist.Commission),
		}
	}

	c.JSON(http.StatusOK, summary)
}

// Helper functions for reports

func (rc *ReportController) visitScope(from, to time.Time, artist *models.Artist) *gorm.DB {
	query := config.DB.Model(&models.Visit{}).
		Where("visit_date BETWEEN ? AND ?", from, to)
	if artist != nil {
		query = query.Where("artist_id = ?", artist.ID)
	}
	return query
}

// getHoursWorked sums the clock spans of the matching visits, each
// clamped to zero.
func (rc *ReportController) getHoursWorked(from, to time.Time, artist *models.Artist) (float64, error) {
	type spanRow struct {
		StartTime string
		EndTime   string
	}
	var rows []spanRow
	if err := rc.visitScope(from, to, artist).
		Select("start_time, end_time").
		Scan(&rows).Error; err != nil {
		return 0, err
	}

	var total float64
	for _, row := range rows {
		total += utils.HoursWorked(row.StartTime, row.EndTime)
	}
	return total, nil
}

// getServicesBreakdown groups by the denormalized snapshot name, so a
// renamed catalog entry shows up under the name it was billed as.
func (rc *ReportController) getServicesBreakdown(from, to time.Time, artist *models.Artist) ([]ServiceSummary, error) {
	var breakdown []ServiceSummary

	query := config.DB.Table("visit_services").
		Select("visit_services.name, COUNT(*) as count, SUM(visit_services.price) as revenue").
		Joins("JOIN visits ON visits.id = visit_services.visit_id").
		Where("visits.visit_date BETWEEN ? AND ?", from, to)
	if artist != nil {
		query = query.Where("visits.artist_id = ?", artist.ID)
	}

	err := query.
		Group("visit_services.name").
		Order("revenue DESC").
		Scan(&breakdown).Error

	return breakdown, err
}
