package dto

import "time"

// ---------------- Requests ----------------

type CreateAnimalRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Species     string   `json:"species" validate:"required,max=100"`
	Breed       string   `json:"breed" validate:"omitempty,max=100"`
	Age         int      `json:"age" validate:"omitempty,min=0,max=100"`
	Gender      string   `json:"gender" validate:"omitempty,oneof=male female unknown"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,url"`
	Photos      []string `json:"photos" validate:"omitempty,max=10,dive,url"`
	OwnerName   string   `json:"owner_name" validate:"omitempty,max=200"`
}

type UpdateAnimalRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Breed       *string  `json:"breed,omitempty" validate:"omitempty,max=100"`
	Age         *int     `json:"age,omitempty" validate:"omitempty,min=0,max=100"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	Photos      []string `json:"photos,omitempty" validate:"omitempty,max=10,dive,url"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

type SearchAnimalsRequest struct {
	Species string `form:"species" validate:"omitempty,max=100"`
	Breed   string `form:"breed" validate:"omitempty,max=100"`
	Query   string `form:"q" validate:"omitempty,max=200"`
	Limit   int    `form:"limit" validate:"omitempty,min=1,max=100"`
	Offset  int    `form:"offset" validate:"omitempty,min=0"`
}

// ---------------- Responses ----------------

type AnimalResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed,omitempty"`
	Age         int       `json:"age"`
	Gender      string    `json:"gender,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Photos      []string  `json:"photos,omitempty"`
	ShelterID   *string   `json:"shelter_id,omitempty"`
	OwnerID     *string   `json:"owner_id,omitempty"`
	OwnerName   string    `json:"owner_name,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type AnimalListResponse struct {
	Animals []*AnimalResponse `json:"animals"`
	Total   int64             `json:"total"`
}
