package models

import "github.com/lib/pq"

// Animal is a marketplace listing posted by a shelter or a private owner.
type Animal struct {
	BaseModel
	Title     string  `gorm:"not null" json:"title"`
	Descr     string  `gorm:"column:description" json:"description"`
	Species   string  `gorm:"not null;index" json:"species"`
	Breed     string  `gorm:"index" json:"breed"`
	Age       int     `json:"age"`
	Gender    string  `json:"gender"`
	ImageURL  *string `json:"image_url"`
	// Additional gallery photos beyond the cover image.
	Photos    pq.StringArray `gorm:"type:text[]" json:"photos"`
	ShelterID *string        `gorm:"index" json:"shelter_id"`
	OwnerID   *string        `gorm:"index" json:"owner_id"`
	OwnerName string         `json:"owner_name"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
}
