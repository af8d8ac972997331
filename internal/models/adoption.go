package models

import "time"

// Adoption is a request to adopt an animal from the marketplace.
type Adoption struct {
	BaseModel
	AnimalID    string  `gorm:"not null;index" json:"animal_id"`
	RequesterID string  `gorm:"not null;index" json:"requester_id"`
	OwnerID     *string `json:"owner_id"`
	ShelterID   *string `gorm:"index" json:"shelter_id"`
	Name        string  `gorm:"not null" json:"name"`
	Contact     string  `gorm:"not null" json:"contact"`
	Message     string  `json:"message"`

	// Denormalized cache of the latest AdoptionStatusUpdate; refreshed in
	// the same transaction as the history insert.
	Status AdoptionStatus `gorm:"not null;default:'pending'" json:"status"`

	Animal *Animal `gorm:"foreignKey:AnimalID" json:"animal,omitempty"`
}

// AdoptionStatusUpdate is one immutable row of an adoption's status history.
type AdoptionStatusUpdate struct {
	ID         string         `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	AdoptionID string         `gorm:"not null;index" json:"adoption_id"`
	Status     AdoptionStatus `gorm:"not null" json:"status"`
	Note       string         `json:"note"`
	CreatedAt  time.Time      `gorm:"default:now()" json:"created_at"`
}
