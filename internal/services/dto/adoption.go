package dto

import (
	"time"

	"petlink_backend/internal/models"
)

// ---------------- Requests ----------------

type CreateAdoptionRequest struct {
	AnimalID string `json:"animal_id" validate:"required,uuid"`
	Name     string `json:"name" validate:"required,max=200"`
	Contact  string `json:"contact" validate:"required,max=200"`
	Message  string `json:"message" validate:"omitempty,max=2000"`
}

type ReviewAdoptionRequest struct {
	Status string `json:"status" validate:"required,adoption_status"`
	Note   string `json:"note" validate:"omitempty,max=1000"`
}

// ---------------- Responses ----------------

type AdoptionResponse struct {
	ID          string                `json:"id"`
	AnimalID    string                `json:"animal_id"`
	RequesterID string                `json:"requester_id"`
	ShelterID   *string               `json:"shelter_id,omitempty"`
	Name        string                `json:"name"`
	Contact     string                `json:"contact"`
	Message     string                `json:"message,omitempty"`
	Status      models.AdoptionStatus `json:"status"`
	Animal      *AnimalResponse       `json:"animal,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

type AdoptionStatusUpdateResponse struct {
	ID         string                `json:"id"`
	AdoptionID string                `json:"adoption_id"`
	Status     models.AdoptionStatus `json:"status"`
	Note       string                `json:"note,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
}

type AdoptionListResponse struct {
	Adoptions []*AdoptionResponse `json:"adoptions"`
	Total     int                 `json:"total"`
}
