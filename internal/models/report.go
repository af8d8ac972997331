package models

import "time"

// PetReport is one lost/found sighting.
type PetReport struct {
	BaseModel
	// Nullable: anonymous reports are allowed.
	UserID     *string `gorm:"index" json:"user_id"`
	ReportType string  `gorm:"not null" json:"report_type"` // "lost" | "found"
	PetType    string  `gorm:"not null" json:"pet_type"`
	Location   string  `gorm:"not null" json:"location"`
	Descr      string  `gorm:"column:description" json:"description"`
	ImageURL   *string `json:"image_url"`

	Latitude  float64 `gorm:"not null" json:"latitude"`
	Longitude float64 `gorm:"not null" json:"longitude"`

	// Set once by the proximity resolver at creation, immutable afterwards.
	ShelterID *string `gorm:"index" json:"shelter_id"`

	// Denormalized cache of the latest RescueStatusUpdate; refreshed in the
	// same transaction as the history insert.
	Status RescueStatus `gorm:"not null;default:'open'" json:"status"`
}

// RescueStatusUpdate is one immutable row of a report's status history.
type RescueStatusUpdate struct {
	ID        string       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ReportID  string       `gorm:"not null;index" json:"report_id"`
	Status    RescueStatus `gorm:"not null" json:"status"`
	Note      string       `json:"note"`
	CreatedAt time.Time    `gorm:"default:now()" json:"created_at"`
}
