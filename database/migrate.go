package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"petlink_backend/internal/config"
	"petlink_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens the shared GORM handle using the configured driver.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	case "postgres", "":
		dialector = postgres.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model.
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Shelter{},
		&models.PetReport{},
		&models.RescueStatusUpdate{},
		&models.Animal{},
		&models.Adoption{},
		&models.AdoptionStatusUpdate{},
		&models.Notification{},
		&models.EmailOutbox{},
		&models.Upload{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	return nil
}
