package services

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"petlink_backend/internal/models"
	"petlink_backend/internal/repositories"
	"petlink_backend/internal/services/dto"
	"petlink_backend/pkg/apperrors"
)

// Notification types emitted by the domain services.
const (
	NotificationTypeRescueAlert    = "rescue_alert"
	NotificationTypeReportStatus   = "report_status"
	NotificationTypeAdoptionNew    = "adoption_request"
	NotificationTypeAdoptionStatus = "adoption_status"
	NotificationTypeShelterStatus  = "shelter_status"
)

type NotificationService interface {
	// Notify persists the in-app notification and, when the event carries an
	// email, queues it in the same transaction. The email is delivered later
	// by the outbox worker; its failure can never lose the notification.
	Notify(event *dto.NotifyEvent) error

	GetNotifications(recipientID, recipientKind string) (*dto.NotificationListResponse, error)
	MarkAsRead(recipientID, notificationID string) (*dto.NotificationResponse, error)
	GetUnreadCount(recipientID, recipientKind string) (int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) Notify(event *dto.NotifyEvent) error {
	meta, err := marshalJSONField(event.Meta)
	if err != nil {
		return apperrors.InternalError(fmt.Errorf("marshal notification meta: %w", err))
	}

	notification := &models.Notification{
		RecipientID:   event.RecipientID,
		RecipientKind: event.RecipientKind,
		Type:          event.Type,
		Message:       event.Message,
		Meta:          meta,
	}

	var outbox *models.EmailOutbox
	if event.Email != nil {
		data, err := marshalJSONField(event.Email.Data)
		if err != nil {
			return apperrors.InternalError(fmt.Errorf("marshal email data: %w", err))
		}
		outbox = &models.EmailOutbox{
			Recipient: event.Email.Recipient,
			Subject:   event.Email.Subject,
			Template:  event.Email.Template,
			Data:      data,
			Status:    models.OutboxStatusPending,
		}
	}

	if err := s.notificationRepo.CreateWithOutbox(notification, outbox); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *notificationService) GetNotifications(recipientID, recipientKind string) (*dto.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.FindByRecipient(recipientID, recipientKind)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	unread, err := s.notificationRepo.GetUnreadCount(recipientID, recipientKind)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, buildNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: responses,
		UnreadCount:   unread,
	}, nil
}

func (s *notificationService) MarkAsRead(recipientID, notificationID string) (*dto.NotificationResponse, error) {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		if err == repositories.ErrNotificationNotFound {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if notification.RecipientID == nil || *notification.RecipientID != recipientID {
		return nil, apperrors.ErrForbidden
	}

	updated, err := s.notificationRepo.MarkAsRead(notificationID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return buildNotificationResponse(updated), nil
}

func (s *notificationService) GetUnreadCount(recipientID, recipientKind string) (int64, error) {
	count, err := s.notificationRepo.GetUnreadCount(recipientID, recipientKind)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

// ---------------- Helpers ----------------

func buildNotificationResponse(notification *models.Notification) *dto.NotificationResponse {
	response := &dto.NotificationResponse{
		ID:            notification.ID,
		RecipientID:   notification.RecipientID,
		RecipientKind: notification.RecipientKind,
		Type:          notification.Type,
		Message:       notification.Message,
		IsRead:        notification.IsRead,
		ReadAt:        notification.ReadAt,
		CreatedAt:     notification.CreatedAt,
	}

	if len(notification.Meta) > 0 {
		var meta map[string]interface{}
		if err := json.Unmarshal(notification.Meta, &meta); err == nil {
			response.Meta = meta
		}
	}

	return response
}

func marshalJSONField(m map[string]interface{}) (datatypes.JSON, error) {
	if m == nil {
		return nil, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
