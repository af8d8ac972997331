package dto

import "time"

// ---------------- Responses ----------------

type NotificationResponse struct {
	ID            string                 `json:"id"`
	RecipientID   *string                `json:"recipient_id,omitempty"`
	RecipientKind string                 `json:"recipient_kind"`
	Type          string                 `json:"type"`
	Message       string                 `json:"message"`
	Meta          map[string]interface{} `json:"meta,omitempty"`
	IsRead        bool                   `json:"is_read"`
	ReadAt        *time.Time             `json:"read_at,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	UnreadCount   int64                   `json:"unread_count"`
}

// ---------------- Internal event payloads ----------------

// NotifyEvent is what domain services hand to the notification service.
// Email is optional: when set, an advisory email is queued alongside the
// in-app notification.
type NotifyEvent struct {
	RecipientID   *string
	RecipientKind string
	Type          string
	Message       string
	Meta          map[string]interface{}

	Email *EmailEvent
}

type EmailEvent struct {
	Recipient string
	Subject   string
	Template  string
	Data      map[string]interface{}
}
