package services

import (
	"gorm.io/gorm"

	"petlink_backend/internal/config"
	"petlink_backend/internal/email"
	"petlink_backend/internal/repositories"
	"petlink_backend/internal/storage"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         AuthService
	ReportService       ReportService
	LocatorService      LocatorService
	ShelterService      ShelterService
	AnimalService       AnimalService
	AdoptionService     AdoptionService
	NotificationService NotificationService
	UploadService       UploadService
	EmailService        *EmailService

	OutboxRepo repositories.OutboxRepository
}

// NewServiceContainer wires repositories and services from the shared
// database handle and configuration.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, store storage.Storage, emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	shelterRepo := repositories.NewShelterRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	animalRepo := repositories.NewAnimalRepository(db)
	adoptionRepo := repositories.NewAdoptionRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	uploadRepo := repositories.NewUploadRepository(db)
	outboxRepo := repositories.NewOutboxRepository(db)

	notificationService := NewNotificationService(notificationRepo)
	locatorService := NewLocatorService(shelterRepo)

	return &ServiceContainer{
		AuthService:    NewAuthService(userRepo),
		LocatorService: locatorService,
		ReportService: NewReportService(
			reportRepo, shelterRepo, userRepo,
			locatorService, notificationService, cfg.App.BaseURL,
		),
		ShelterService: NewShelterService(shelterRepo, userRepo, notificationService),
		AnimalService:  NewAnimalService(animalRepo, shelterRepo, userRepo),
		AdoptionService: NewAdoptionService(
			adoptionRepo, animalRepo, shelterRepo, userRepo,
			notificationService, cfg.App.BaseURL,
		),
		NotificationService: notificationService,
		UploadService: NewUploadService(
			uploadRepo, store, cfg.Upload.MaxSize, cfg.Upload.AllowedTypes,
		),
		EmailService: NewEmailService(emailProvider, cfg.Email.FromEmail, cfg.Email.FromName),
		OutboxRepo:   outboxRepo,
	}
}
