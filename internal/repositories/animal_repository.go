package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"petlink_backend/internal/models"
)

var (
	ErrAnimalNotFound = errors.New("animal not found")
)

// AnimalSearchFilter narrows the marketplace listing. Zero values mean
// "no filter".
type AnimalSearchFilter struct {
	Species string
	Breed   string
	Query   string
	Limit   int
	Offset  int
}

type AnimalRepository interface {
	Create(animal *models.Animal) error
	FindByID(id string) (*models.Animal, error)
	Search(filter AnimalSearchFilter) ([]models.Animal, int64, error)
	FindByShelter(shelterID string) ([]models.Animal, error)
	Update(animal *models.Animal) error
	Deactivate(id string) error
	DistinctBreeds(species string) ([]string, error)
}

type AnimalRepositoryImpl struct {
	db *gorm.DB
}

func NewAnimalRepository(db *gorm.DB) AnimalRepository {
	return &AnimalRepositoryImpl{db: db}
}

func (r *AnimalRepositoryImpl) Create(animal *models.Animal) error {
	return r.db.Create(animal).Error
}

func (r *AnimalRepositoryImpl) FindByID(id string) (*models.Animal, error) {
	var animal models.Animal
	err := r.db.First(&animal, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimalNotFound
		}
		return nil, err
	}
	return &animal, nil
}

func (r *AnimalRepositoryImpl) Search(filter AnimalSearchFilter) ([]models.Animal, int64, error) {
	query := r.db.Model(&models.Animal{}).Where("is_active = ?", true)

	if filter.Species != "" {
		query = query.Where("species = ?", filter.Species)
	}
	if filter.Breed != "" {
		query = query.Where("breed = ?", filter.Breed)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var animals []models.Animal
	err := query.Order("created_at DESC").Find(&animals).Error
	return animals, total, err
}

func (r *AnimalRepositoryImpl) FindByShelter(shelterID string) ([]models.Animal, error) {
	var animals []models.Animal
	err := r.db.
		Where("shelter_id = ?", shelterID).
		Order("created_at DESC").
		Find(&animals).Error
	return animals, err
}

func (r *AnimalRepositoryImpl) Update(animal *models.Animal) error {
	return r.db.Save(animal).Error
}

func (r *AnimalRepositoryImpl) Deactivate(id string) error {
	result := r.db.Model(&models.Animal{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAnimalNotFound
	}
	return nil
}

func (r *AnimalRepositoryImpl) DistinctBreeds(species string) ([]string, error) {
	var breeds []string
	query := r.db.Model(&models.Animal{}).
		Where("is_active = ? AND breed <> ''", true)
	if species != "" {
		query = query.Where("species = ?", species)
	}
	err := query.Distinct("breed").Order("breed ASC").Pluck("breed", &breeds).Error
	return breeds, err
}
