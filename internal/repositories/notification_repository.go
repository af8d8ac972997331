package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"petlink_backend/internal/models"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

type NotificationRepository interface {
	Create(notification *models.Notification) error

	// CreateWithOutbox persists the notification and queues the advisory
	// email in one transaction. Outbox may be nil when the event has no
	// email counterpart.
	CreateWithOutbox(notification *models.Notification, outbox *models.EmailOutbox) error

	FindByID(id string) (*models.Notification, error)
	FindByRecipient(recipientID, recipientKind string) ([]models.Notification, error)
	MarkAsRead(id string) (*models.Notification, error)
	GetUnreadCount(recipientID, recipientKind string) (int64, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) CreateWithOutbox(notification *models.Notification, outbox *models.EmailOutbox) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(notification).Error; err != nil {
			return err
		}
		if outbox != nil {
			if err := tx.Create(outbox).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *NotificationRepositoryImpl) FindByID(id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) FindByRecipient(recipientID, recipientKind string) ([]models.Notification, error) {
	notifications := []models.Notification{}
	err := r.db.
		Where("recipient_id = ? AND recipient_kind = ?", recipientID, recipientKind).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// MarkAsRead is idempotent: re-reading an already read notification keeps the
// original read_at and reports success.
func (r *NotificationRepositoryImpl) MarkAsRead(id string) (*models.Notification, error) {
	notification, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if notification.IsRead {
		return notification, nil
	}

	now := time.Now()
	err = r.db.Model(notification).Updates(map[string]interface{}{
		"is_read": true,
		"read_at": now,
	}).Error
	if err != nil {
		return nil, err
	}
	notification.IsRead = true
	notification.ReadAt = &now
	return notification, nil
}

func (r *NotificationRepositoryImpl) GetUnreadCount(recipientID, recipientKind string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND recipient_kind = ? AND is_read = ?", recipientID, recipientKind, false).
		Count(&count).Error
	return count, err
}
