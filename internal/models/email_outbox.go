package models

import (
	"time"

	"gorm.io/datatypes"
)

type OutboxStatus string

const (
	OutboxStatusPending OutboxStatus = "pending"
	OutboxStatusSent    OutboxStatus = "sent"
	OutboxStatusFailed  OutboxStatus = "failed"
)

// EmailOutbox is one queued advisory email. Rows are enqueued in the same
// transaction as the notification they describe and drained by the outbox
// worker; delivery failure never affects the primary operation.
type EmailOutbox struct {
	BaseModel
	Recipient string `gorm:"not null" json:"recipient"`
	Subject   string `gorm:"not null" json:"subject"`
	Template  string `gorm:"not null" json:"template"`
	// Template payload, e.g. {"report_id": "...", "pet_type": "...", "dashboard_url": "..."}
	Data      datatypes.JSON `gorm:"type:jsonb" json:"data"`
	Status    OutboxStatus   `gorm:"not null;default:'pending';index" json:"status"`
	Attempts  int            `gorm:"default:0" json:"attempts"`
	LastError string         `json:"last_error"`
	SentAt    *time.Time     `json:"sent_at"`
}
