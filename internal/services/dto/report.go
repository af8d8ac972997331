package dto

import (
	"time"

	"petlink_backend/internal/models"
)

// ---------------- Requests ----------------

type CreateReportRequest struct {
	ReportType  string  `json:"report_type" validate:"required,oneof=lost found"`
	PetType     string  `json:"pet_type" validate:"required,max=100"`
	Location    string  `json:"location" validate:"required,max=500"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	// Pointers so a missing coordinate and a zero coordinate (equator,
	// prime meridian) stay distinguishable.
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

type UpdateReportStatusRequest struct {
	Status string `json:"status" validate:"required,rescue_status"`
	Note   string `json:"note" validate:"omitempty,max=1000"`
}

// ---------------- Responses ----------------

type ReportResponse struct {
	ID          string              `json:"id"`
	UserID      *string             `json:"user_id,omitempty"`
	ReportType  string              `json:"report_type"`
	PetType     string              `json:"pet_type"`
	Location    string              `json:"location"`
	Description string              `json:"description"`
	ImageURL    *string             `json:"image_url,omitempty"`
	Latitude    float64             `json:"latitude"`
	Longitude   float64             `json:"longitude"`
	ShelterID   *string             `json:"shelter_id,omitempty"`
	Status      models.RescueStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type StatusUpdateResponse struct {
	ID        string              `json:"id"`
	ReportID  string              `json:"report_id"`
	Status    models.RescueStatus `json:"status"`
	Note      string              `json:"note,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

type ReportWithHistoryResponse struct {
	Report  *ReportResponse         `json:"report"`
	History []*StatusUpdateResponse `json:"history"`
}

type ReportListResponse struct {
	Reports []*ReportResponse `json:"reports"`
	Total   int               `json:"total"`
}
