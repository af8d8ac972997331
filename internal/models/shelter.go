package models

type Shelter struct {
	BaseModel
	AdminUserID string        `gorm:"uniqueIndex;not null" json:"admin_user_id"`
	Name        string        `gorm:"not null" json:"name"`
	Email       string        `gorm:"not null" json:"email"`
	Phone       string        `json:"phone"`
	Address     string        `json:"address"`
	Description string        `json:"description"`
	Status      ShelterStatus `gorm:"not null;default:'pending'" json:"status"`

	// Optional: shelters without coordinates are never eligible for
	// report assignment.
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// HasCoordinates reports whether the shelter can take part in proximity
// assignment.
func (s *Shelter) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}
