package routes

import (
	"os"
	"time"

	"glowdesk-backend/config"
	"glowdesk-backend/controllers"
	"glowdesk-backend/models"
	"glowdesk-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:3000"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin, "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	// Brute-force protection on login only
	loginRate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  10,
	}
	loginLimiter := ginlimiter.NewMiddleware(limiter.New(memory.NewStore(), loginRate))

	auth := r.Group("/auth")
	{
		auth.POST("/login", loginLimiter, controllers.Login)
		auth.POST("/logout", controllers.Logout)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		staff := []string{models.RoleReceptionist, models.RoleManager, models.RoleOwner}

		// Service catalog: all staff read, owner writes
		servicesGroup := api.Group("/services")
		{
			servicesGroup.GET("", controllers.GetServices)
			servicesGroup.GET("/:id", controllers.GetService)

			ownerOnly := servicesGroup.Group("", utils.RequireRoles(models.RoleOwner))
			ownerOnly.POST("", controllers.CreateService)
			ownerOnly.PUT("/:id", controllers.UpdateService)
			ownerOnly.DELETE("/:id", controllers.DeleteService)
		}

		// Artist directory: all staff read, owner/manager write
		artists := api.Group("/artists")
		{
			artists.GET("", controllers.GetArtists)
			artists.GET("/:id", controllers.GetArtist)

			managers := artists.Group("", utils.RequireRoles(models.RoleOwner, models.RoleManager))
			managers.POST("", controllers.CreateArtist)
			managers.PUT("/:id", controllers.UpdateArtist)
			managers.DELETE("/:id", controllers.DeleteArtist)
		}

		// Visits: recorded at the desk, immutable afterwards
		visits := api.Group("/visits", utils.RequireRoles(staff...))
		{
			visits.POST("", controllers.CreateVisit)
			visits.GET("", controllers.GetVisits)
			visits.GET("/:id", controllers.GetVisit)
		}

		// Payment gateway endpoints
		payments := api.Group("", utils.RequireRoles(staff...))
		{
			payments.POST("/create-order", controllers.CreateOrder)
			payments.POST("/verify-order-payment", controllers.VerifyOrderPayment)
			payments.POST("/create-payment-link", controllers.CreatePaymentLink)
			payments.GET("/verify-payment", controllers.VerifyPayment)
		}

		// Reports: managers and owner see everything, artists see their
		// own numbers only (enforced inside the controller)
		reportController := controllers.ReportController{}
		api.GET("/reports",
			utils.RequireRoles(models.RoleManager, models.RoleOwner, models.RoleArtist),
			reportController.GetReportAnalytics)

		// Dashboard
		api.GET("/dashboard", utils.RequireRoles(staff...), controllers.GetDashboardOverview)

		// Staff accounts: owner only
		users := api.Group("/users", utils.RequireRoles(models.RoleOwner))
		{
			users.GET("", controllers.GetUsers)
			users.POST("", controllers.CreateUser)
			users.PUT("/:id", controllers.UpdateUser)
		}
	}

	return r
}
