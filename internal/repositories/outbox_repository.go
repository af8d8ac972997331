package repositories

import (
	"time"

	"gorm.io/gorm"

	"petlink_backend/internal/models"
)

type OutboxRepository interface {
	FindPending(limit int) ([]models.EmailOutbox, error)
	MarkSent(id string) error
	// MarkFailedAttempt bumps the attempt counter and records the error.
	// Once attempts reach maxAttempts the row is parked as failed and the
	// worker stops picking it up.
	MarkFailedAttempt(id string, sendErr error, maxAttempts int) error
}

type OutboxRepositoryImpl struct {
	db *gorm.DB
}

func NewOutboxRepository(db *gorm.DB) OutboxRepository {
	return &OutboxRepositoryImpl{db: db}
}

func (r *OutboxRepositoryImpl) FindPending(limit int) ([]models.EmailOutbox, error) {
	entries := []models.EmailOutbox{}
	query := r.db.
		Where("status = ?", models.OutboxStatusPending).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&entries).Error
	return entries, err
}

func (r *OutboxRepositoryImpl) MarkSent(id string) error {
	now := time.Now()
	return r.db.Model(&models.EmailOutbox{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":  models.OutboxStatusSent,
			"sent_at": now,
		}).Error
}

func (r *OutboxRepositoryImpl) MarkFailedAttempt(id string, sendErr error, maxAttempts int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var entry models.EmailOutbox
		if err := tx.First(&entry, "id = ?", id).Error; err != nil {
			return err
		}

		entry.Attempts++
		entry.LastError = sendErr.Error()
		if entry.Attempts >= maxAttempts {
			entry.Status = models.OutboxStatusFailed
		}

		return tx.Model(&entry).Updates(map[string]interface{}{
			"attempts":   entry.Attempts,
			"last_error": entry.LastError,
			"status":     entry.Status,
		}).Error
	})
}
