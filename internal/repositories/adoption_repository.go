package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"petlink_backend/internal/models"
)

var (
	ErrAdoptionNotFound          = errors.New("adoption request not found")
	ErrInvalidAdoptionTransition = errors.New("adoption status transition not allowed")
)

type AdoptionRepository interface {
	Create(adoption *models.Adoption) error
	FindByID(id string) (*models.Adoption, error)
	FindByRequester(userID string) ([]models.Adoption, error)
	FindByShelter(shelterID string) ([]models.Adoption, error)

	// Same transactional shape as ReportRepository.TransitionStatus.
	TransitionStatus(adoptionID string, status models.AdoptionStatus, note string) (*models.Adoption, error)
	FindHistory(adoptionID string) ([]models.AdoptionStatusUpdate, error)
}

type AdoptionRepositoryImpl struct {
	db *gorm.DB
}

func NewAdoptionRepository(db *gorm.DB) AdoptionRepository {
	return &AdoptionRepositoryImpl{db: db}
}

func (r *AdoptionRepositoryImpl) Create(adoption *models.Adoption) error {
	return r.db.Create(adoption).Error
}

func (r *AdoptionRepositoryImpl) FindByID(id string) (*models.Adoption, error) {
	var adoption models.Adoption
	err := r.db.Preload("Animal").First(&adoption, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdoptionNotFound
		}
		return nil, err
	}
	return &adoption, nil
}

func (r *AdoptionRepositoryImpl) FindByRequester(userID string) ([]models.Adoption, error) {
	var adoptions []models.Adoption
	err := r.db.
		Preload("Animal").
		Where("requester_id = ?", userID).
		Order("created_at DESC").
		Find(&adoptions).Error
	return adoptions, err
}

func (r *AdoptionRepositoryImpl) FindByShelter(shelterID string) ([]models.Adoption, error) {
	var adoptions []models.Adoption
	err := r.db.
		Preload("Animal").
		Where("shelter_id = ?", shelterID).
		Order("created_at DESC").
		Find(&adoptions).Error
	return adoptions, err
}

func (r *AdoptionRepositoryImpl) TransitionStatus(adoptionID string, status models.AdoptionStatus, note string) (*models.Adoption, error) {
	var updated *models.Adoption

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var adoption models.Adoption
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&adoption, "id = ?", adoptionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAdoptionNotFound
			}
			return err
		}

		if !adoption.Status.CanTransitionTo(status) {
			return ErrInvalidAdoptionTransition
		}

		if err := tx.Model(&adoption).Update("status", status).Error; err != nil {
			return err
		}

		entry := models.AdoptionStatusUpdate{
			AdoptionID: adoptionID,
			Status:     status,
			Note:       note,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		adoption.Status = status
		updated = &adoption
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *AdoptionRepositoryImpl) FindHistory(adoptionID string) ([]models.AdoptionStatusUpdate, error) {
	updates := []models.AdoptionStatusUpdate{}
	err := r.db.
		Where("adoption_id = ?", adoptionID).
		Order("created_at DESC").
		Find(&updates).Error
	return updates, err
}
