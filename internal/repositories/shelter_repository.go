package repositories

import (
	"errors"

	"gorm.io/gorm"

	"petlink_backend/internal/models"
)

var (
	ErrShelterNotFound = errors.New("shelter not found")
)

type ShelterRepository interface {
	Create(shelter *models.Shelter) error
	FindByID(id string) (*models.Shelter, error)
	FindByAdminUserID(adminUserID string) (*models.Shelter, error)
	// FindApproved returns approved shelters in stable creation order; the
	// proximity resolver depends on that order for its tie-break.
	FindApproved() ([]models.Shelter, error)
	FindPending() ([]models.Shelter, error)
	UpdateStatus(id string, status models.ShelterStatus) (*models.Shelter, error)
}

type ShelterRepositoryImpl struct {
	db *gorm.DB
}

func NewShelterRepository(db *gorm.DB) ShelterRepository {
	return &ShelterRepositoryImpl{db: db}
}

func (r *ShelterRepositoryImpl) Create(shelter *models.Shelter) error {
	return r.db.Create(shelter).Error
}

func (r *ShelterRepositoryImpl) FindByID(id string) (*models.Shelter, error) {
	var shelter models.Shelter
	err := r.db.First(&shelter, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShelterNotFound
		}
		return nil, err
	}
	return &shelter, nil
}

func (r *ShelterRepositoryImpl) FindByAdminUserID(adminUserID string) (*models.Shelter, error) {
	var shelter models.Shelter
	err := r.db.First(&shelter, "admin_user_id = ?", adminUserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShelterNotFound
		}
		return nil, err
	}
	return &shelter, nil
}

func (r *ShelterRepositoryImpl) FindApproved() ([]models.Shelter, error) {
	var shelters []models.Shelter
	err := r.db.
		Where("status = ?", models.ShelterStatusApproved).
		Order("created_at ASC").
		Find(&shelters).Error
	return shelters, err
}

func (r *ShelterRepositoryImpl) FindPending() ([]models.Shelter, error) {
	var shelters []models.Shelter
	err := r.db.
		Where("status = ?", models.ShelterStatusPending).
		Order("created_at DESC").
		Find(&shelters).Error
	return shelters, err
}

func (r *ShelterRepositoryImpl) UpdateStatus(id string, status models.ShelterStatus) (*models.Shelter, error) {
	shelter, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(shelter).Update("status", status).Error; err != nil {
		return nil, err
	}
	shelter.Status = status
	return shelter, nil
}
