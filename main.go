package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"glowdesk-backend/config"
	"glowdesk-backend/controllers"
	"glowdesk-backend/models"
	"glowdesk-backend/routes"
	"glowdesk-backend/services"
	"glowdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Artist{},
		&models.Service{},
		&models.Visit{},
		&models.VisitService{},
		&models.ReconciliationEntry{},
	)
}

func main() {
	seedOwner()

	controllers.Setup(config.DB)

	reconciler := services.NewReconciliationService(config.DB)
	reconciler.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

// seedOwner makes sure exactly one owner account exists, configured
// from the environment. The upsert is idempotent so concurrent or
// repeated starts converge to the same state.
func seedOwner() {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("OWNER_EMAIL")))
	password := os.Getenv("OWNER_PASSWORD")
	if email == "" || password == "" {
		log.Println("OWNER_EMAIL/OWNER_PASSWORD not set, skipping owner seeding")
		return
	}

	var owner models.User
	err := config.DB.Where("role = ?", models.RoleOwner).First(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		owner = models.User{
			Name:     "Owner",
			Email:    email,
			Password: password, // Hashed in BeforeCreate hook
			Role:     models.RoleOwner,
			IsActive: true,
		}
		if err := config.DB.Create(&owner).Error; err != nil {
			log.Printf("Failed to seed owner account: %v", err)
			return
		}
		log.Println("Owner account seeded from environment")
		return
	}
	if err != nil {
		log.Printf("Failed to check for owner account: %v", err)
		return
	}

	// Keep the login in sync with the environment, including a rotated
	// password
	emailChanged, passwordChanged := owner.CredentialsDrift(email, password)
	updates := map[string]interface{}{}
	if emailChanged {
		updates["email"] = email
	}
	if passwordChanged {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			log.Printf("Failed to hash owner password: %v", err)
			return
		}
		updates["password"] = hashed
	}
	if len(updates) > 0 {
		if err := config.DB.Model(&owner).Updates(updates).Error; err != nil {
			log.Printf("Failed to update owner credentials: %v", err)
		} else {
			log.Println("Owner credentials resynced from environment")
		}
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
