// services/reconciliation.go
package services

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"glowdesk-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// After this many failed replays an entry is parked for manual action.
const maxReconciliationAttempts = 10

// ReconciliationService replays visit writes whose payment already
// succeeded. Entries are durable rows, so a crash between payment and
// bookkeeping never loses the record of collected money.
type ReconciliationService struct {
	db *gorm.DB
}

func NewReconciliationService(db *gorm.DB) *ReconciliationService {
	return &ReconciliationService{db: db}
}

func (s *ReconciliationService) StartScheduler() {
	c := cron.New()

	// Retry pending entries every 5 minutes
	c.AddFunc("*/5 * * * *", func() {
		s.ProcessPending()
	})

	// Drain anything left over from a previous run
	s.ProcessPending()

	c.Start()
	log.Println("Reconciliation scheduler started")
}

// Enqueue stores the fully computed visit for later replay. Called when
// the visit insert fails after a successful non-cash payment.
func (s *ReconciliationService) Enqueue(visit models.Visit, paymentID string) error {
	raw, err := json.Marshal(visit)
	if err != nil {
		return err
	}

	var payload models.JSONB
	if err := json.Unmarshal(raw, &payload); err != nil {
		return err
	}

	entry := models.ReconciliationEntry{
		PaymentID: paymentID,
		Payload:   payload,
		Status:    models.ReconciliationPending,
	}
	return s.db.Create(&entry).Error
}

// ProcessPending replays every pending entry once.
func (s *ReconciliationService) ProcessPending() {
	var entries []models.ReconciliationEntry
	if err := s.db.Where("status = ?", models.ReconciliationPending).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		log.Printf("Reconciliation: failed to load pending entries: %v", err)
		return
	}

	if len(entries) == 0 {
		return
	}
	log.Printf("Reconciliation: retrying %d pending entries", len(entries))

	for _, entry := range entries {
		s.replayEntry(entry)
	}
}

func (s *ReconciliationService) replayEntry(entry models.ReconciliationEntry) {
	visit, err := s.decodeVisit(entry)
	if err == nil {
		err = s.db.Create(&visit).Error
		if isDuplicateKeyErr(err) {
			// A previous replay inserted this visit but the status
			// update was lost; the preserved visit ID collides, so the
			// record is already on disk.
			err = nil
		}
	}

	updates := map[string]interface{}{
		"attempts": gorm.Expr("attempts + ?", 1),
	}

	if err != nil {
		log.Printf("Reconciliation: replay of entry %s failed: %v", entry.ID, err)
		updates["last_error"] = err.Error()
		if entry.Attempts+1 >= maxReconciliationAttempts {
			updates["status"] = models.ReconciliationAbandoned
			log.Printf("Reconciliation: entry %s abandoned after %d attempts, manual action required",
				entry.ID, entry.Attempts+1)
		}
	} else {
		updates["status"] = models.ReconciliationResolved
		updates["resolved_visit_id"] = visit.ID
		updates["last_error"] = ""
		log.Printf("Reconciliation: entry %s resolved, visit %s recorded", entry.ID, visit.ID)
	}

	if err := s.db.Model(&models.ReconciliationEntry{}).
		Where("id = ?", entry.ID).
		Updates(updates).Error; err != nil {
		log.Printf("Reconciliation: failed to update entry %s: %v", entry.ID, err)
	}
}

func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key")
}

func (s *ReconciliationService) decodeVisit(entry models.ReconciliationEntry) (models.Visit, error) {
	var visit models.Visit

	raw, err := json.Marshal(entry.Payload)
	if err != nil {
		return visit, err
	}
	if err := json.Unmarshal(raw, &visit); err != nil {
		return visit, err
	}
	return visit, nil
}
