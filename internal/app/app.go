package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"petlink_backend/database"
	"petlink_backend/internal/auth"
	"petlink_backend/internal/config"
	"petlink_backend/internal/email"
	"petlink_backend/internal/handlers"
	"petlink_backend/internal/logger"
	"petlink_backend/internal/middleware"
	"petlink_backend/internal/models"
	"petlink_backend/internal/routes"
	"petlink_backend/internal/services"
	"petlink_backend/internal/storage"
	"petlink_backend/internal/validator"
	"petlink_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter, svc := SetupRouter(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startOutboxWorker(ctx, cfg, svc)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the gin engine with all routes mounted. The service
// container is returned so the caller can start the background workers.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *services.ServiceContainer) {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	emailProvider := buildEmailProvider(cfg)

	svc := services.NewServiceContainer(gormDB, cfg, storageInstance, emailProvider)

	customValidator := validator.New()
	appHandlers := handlers.NewAppHandlers(customValidator, svc)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter, svc
}

func buildEmailProvider(cfg *config.Config) email.Provider {
	renderer := email.NewTemplateManager()
	if err := renderer.LoadTemplates(cfg.Email.TemplatesDir); err != nil {
		logger.WithError(err).Warn("failed to load email templates, using builtins",
			"dir", cfg.Email.TemplatesDir)
	}

	return email.NewSMTPProvider(&email.SMTPConfig{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.SMTPUsername,
		Password: cfg.Email.SMTPPassword,
	}, renderer)
}

func startOutboxWorker(ctx context.Context, cfg *config.Config, svc *services.ServiceContainer) {
	worker := workers.NewOutboxWorker(
		svc.OutboxRepo,
		svc.EmailService,
		time.Duration(cfg.Outbox.Interval)*time.Second,
		cfg.Outbox.BatchSize,
		cfg.Outbox.MaxAttempts,
	)
	worker.Start(ctx)
	logger.Info("Outbox worker started",
		"interval_s", cfg.Outbox.Interval,
		"batch_size", cfg.Outbox.BatchSize)
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdmin.Email
	adminPassword := cfg.FirstAdmin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("first_admin credentials are not set, skipping admin seeding")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists, skipping creation", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Seeded first admin user", "email", adminEmail)
	return nil
}
