package models

type Upload struct {
	BaseModel
	UserID   *string `gorm:"index" json:"user_id"`
	FileType string  `json:"file_type"` // "image"
	Path     string  `gorm:"not null" json:"path"`
	MimeType string  `json:"mime_type"`
	Size     int64   `json:"size"`
	IsPublic bool    `gorm:"default:true" json:"is_public"`
}
