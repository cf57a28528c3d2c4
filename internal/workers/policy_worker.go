package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"insurai_backend/internal/logger"
	"insurai_backend/internal/models"
)

const policySweepInterval = 6 * time.Hour

// PolicyWorker expires active policies whose coverage period has ended.
type PolicyWorker struct {
	db *gorm.DB
}

func NewPolicyWorker(db *gorm.DB) *PolicyWorker {
	return &PolicyWorker{db: db}
}

// Start runs the expiry sweep until the context is cancelled. One sweep runs
// immediately so a restart does not wait a full interval.
func (w *PolicyWorker) Start(ctx context.Context) {
	go func() {
		w.sweep()

		ticker := time.NewTicker(policySweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.sweep()
			}
		}
	}()
}

func (w *PolicyWorker) sweep() {
	if err := w.ExpireOverduePolicies(); err != nil {
		logger.Error("policy expiry sweep failed", "error", err)
	}
}

// ExpireOverduePolicies flips Active policies whose end date has passed to
// Expired. Dates are stored as "2006-01-02", so a plain string comparison
// orders them correctly.
func (w *PolicyWorker) ExpireOverduePolicies() error {
	today := time.Now().Format("2006-01-02")

	result := w.db.Model(&models.Policy{}).
		Where("status = ? AND end_date < ?", models.PolicyStatusActive, today).
		Update("status", models.PolicyStatusExpired)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		logger.Info("expired overdue policies", "count", result.RowsAffected)
	}
	return nil
}
