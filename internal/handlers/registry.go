package handlers

import (
	"petlink_backend/internal/services"
	"petlink_backend/internal/validator"
)

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ReportHandler       *ReportHandler
	ShelterHandler      *ShelterHandler
	AnimalHandler       *AnimalHandler
	AdoptionHandler     *AdoptionHandler
	NotificationHandler *NotificationHandler
	UploadHandler       *UploadHandler
	HealthHandler       *HealthHandler
}

func NewAppHandlers(v *validator.Validator, svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, svc.AuthService),
		ReportHandler:       NewReportHandler(base, svc.ReportService),
		ShelterHandler:      NewShelterHandler(base, svc.ShelterService),
		AnimalHandler:       NewAnimalHandler(base, svc.AnimalService),
		AdoptionHandler:     NewAdoptionHandler(base, svc.AdoptionService),
		NotificationHandler: NewNotificationHandler(base, svc.NotificationService, svc.ShelterService),
		UploadHandler:       NewUploadHandler(base, svc.UploadService),
		HealthHandler:       NewHealthHandler(base),
	}
}
