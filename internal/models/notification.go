package models

import (
	"time"

	"gorm.io/datatypes"
)

// Recipient kinds for notifications.
const (
	RecipientKindUser    = "user"
	RecipientKindShelter = "shelter"
	RecipientKindAdmin   = "admin"
)

type Notification struct {
	BaseModel
	// Recipient id within the kind: user id, shelter id, or admin user id.
	RecipientID   *string `gorm:"index" json:"recipient_id"`
	RecipientKind string  `gorm:"not null;index" json:"recipient_kind"`
	Type          string  `gorm:"not null" json:"type"` // "rescue_alert", "report_status", ...
	Message       string  `gorm:"not null" json:"message"`
	// {"report_id": "...", "status": "...", "note": "..."}
	Meta   datatypes.JSON `gorm:"type:jsonb" json:"meta"`
	IsRead bool           `gorm:"default:false" json:"is_read"`
	ReadAt *time.Time     `json:"read_at"`
}
