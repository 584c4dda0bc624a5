package controllers

import (
	"net/http"
	"time"

	"glowdesk-backend/config"
	"glowdesk-backend/models"
	"glowdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type ArtistLeaderboardEntry struct {
	ArtistName string  `json:"artistName"`
	Visits     int     `json:"visits"`
	Revenue    float64 `json:"revenue"`
}

type RecentVisit struct {
	ClientName string  `json:"clientName"`
	ArtistName string  `json:"artistName"`
	FinalTotal float64 `json:"finalTotal"`
	VisitDate  string  `json:"visitDate"` // "Today", "Yesterday", "X days ago"
}

// GetDashboardOverview returns the landing-page rollup: today and
// month-to-date figures, the artist leaderboard and recent visits.
func GetDashboardOverview(c *gin.Context) {
	now := time.Now()
	today := utils.BeginningOfDay(now)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// Today's figures
	var todayRevenue float64
	var todayVisits int64
	config.DB.Model(&models.Visit{}).
		Where("visit_date >= ?", today).
		Select("COALESCE(SUM(final_total), 0)").Scan(&todayRevenue)
	config.DB.Model(&models.Visit{}).
		Where("visit_date >= ?", today).
		Count(&todayVisits)

	// Month to date
	var monthRevenue float64
	var monthVisits int64
	config.DB.Model(&models.Visit{}).
		Where("visit_date >= ?", firstOfMonth).
		Select("COALESCE(SUM(final_total), 0)").Scan(&monthRevenue)
	config.DB.Model(&models.Visit{}).
		Where("visit_date >= ?", firstOfMonth).
		Count(&monthVisits)

	// Top services this month, by snapshot name
	var topServices []ServiceSummary
	config.DB.Table("visit_services").
		Select("visit_services.name, COUNT(*) as count, SUM(visit_services.price) as revenue").
		Joins("JOIN visits ON visits.id = visit_services.visit_id").
		Where("visits.visit_date >= ?", firstOfMonth).
		Group("visit_services.name").
		Order("revenue DESC").
		Limit(4).
		Scan(&topServices)

	// Artist leaderboard this month, by denormalized name
	var leaderboard []ArtistLeaderboardEntry
	config.DB.Table("visits").
		Select("artist_name, COUNT(*) as visits, SUM(final_total) as revenue").
		Where("visit_date >= ?", firstOfMonth).
		Group("artist_name").
		Order("revenue DESC").
		Limit(5).
		Scan(&leaderboard)

	// Recent visits
	var recent []RecentVisit
	var lastVisits []models.Visit
	config.DB.Order("visit_date DESC, created_at DESC").Limit(5).Find(&lastVisits)
	for _, v := range lastVisits {
		daysAgo := utils.DaysBetween(v.VisitDate, now)
		var label string
		switch {
		case daysAgo <= 0:
			label = "Today"
		case daysAgo == 1:
			label = "Yesterday"
		default:
			label = v.VisitDate.Format("02 Jan")
		}
		recent = append(recent, RecentVisit{
			ClientName: v.ClientName,
			ArtistName: v.ArtistName,
			FinalTotal: v.FinalTotal,
			VisitDate:  label,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"todayRevenue":      todayRevenue,
		"todayVisits":       todayVisits,
		"monthRevenue":      monthRevenue,
		"monthVisits":       monthVisits,
		"topServices":       topServices,
		"artistLeaderboard": leaderboard,
		"recentVisits":      recent,
	})
}
