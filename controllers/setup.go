// controllers/setup.go
package controllers

import (
	"glowdesk-backend/services"

	"gorm.io/gorm"
)

var (
	gateway    *services.PaymentGateway
	notifier   *services.NotifyService
	reconciler *services.ReconciliationService
)

// Setup wires the controller package to its collaborators. Called once
// from main after the environment and database are ready.
func Setup(db *gorm.DB) {
	gateway = services.NewPaymentGateway()
	notifier = services.NewNotifyService()
	reconciler = services.NewReconciliationService(db)
}
