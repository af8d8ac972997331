package dto

import (
	"time"

	"petlink_backend/internal/models"
)

// ---------------- Requests ----------------

type RegisterShelterRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone" validate:"omitempty,max=50"`
	Address     string   `json:"address" validate:"omitempty,max=500"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
}

type ReviewShelterRequest struct {
	// Admin decision on a pending shelter request.
	Approve bool   `json:"approve"`
	Note    string `json:"note" validate:"omitempty,max=1000"`
}

// ---------------- Responses ----------------

type ShelterResponse struct {
	ID          string               `json:"id"`
	AdminUserID string               `json:"admin_user_id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Phone       string               `json:"phone,omitempty"`
	Address     string               `json:"address,omitempty"`
	Description string               `json:"description,omitempty"`
	Status      models.ShelterStatus `json:"status"`
	Latitude    *float64             `json:"latitude,omitempty"`
	Longitude   *float64             `json:"longitude,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

type ShelterListResponse struct {
	Shelters []*ShelterResponse `json:"shelters"`
	Total    int                `json:"total"`
}
