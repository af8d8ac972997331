package services

import (
	"petlink_backend/internal/models"
	"petlink_backend/internal/repositories"
	"petlink_backend/internal/services/dto"
	"petlink_backend/pkg/apperrors"
)

type AnimalService interface {
	// CreateAnimal posts a listing. Approved shelter admins post on behalf
	// of their shelter; everyone else posts as a private owner.
	CreateAnimal(userID string, req *dto.CreateAnimalRequest) (*dto.AnimalResponse, error)

	GetAnimal(animalID string) (*dto.AnimalResponse, error)
	SearchAnimals(req *dto.SearchAnimalsRequest) (*dto.AnimalListResponse, error)
	GetBreeds(species string) ([]string, error)

	UpdateAnimal(userID, animalID string, req *dto.UpdateAnimalRequest) (*dto.AnimalResponse, error)
	DeactivateAnimal(userID, animalID string) error
}

type animalService struct {
	animalRepo  repositories.AnimalRepository
	shelterRepo repositories.ShelterRepository
	userRepo    repositories.UserRepository
}

func NewAnimalService(
	animalRepo repositories.AnimalRepository,
	shelterRepo repositories.ShelterRepository,
	userRepo repositories.UserRepository,
) AnimalService {
	return &animalService{
		animalRepo:  animalRepo,
		shelterRepo: shelterRepo,
		userRepo:    userRepo,
	}
}

func (s *animalService) CreateAnimal(userID string, req *dto.CreateAnimalRequest) (*dto.AnimalResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	animal := &models.Animal{
		Title:    req.Title,
		Descr:    req.Description,
		Species:  req.Species,
		Breed:    req.Breed,
		Age:      req.Age,
		Gender:   req.Gender,
		ImageURL: req.ImageURL,
		Photos:   req.Photos,
		IsActive: true,
	}

	if user.Role == models.UserRoleShelterAdmin {
		shelter, err := s.shelterRepo.FindByAdminUserID(userID)
		if err != nil && err != repositories.ErrShelterNotFound {
			return nil, apperrors.DatabaseError(err)
		}
		if err == nil && shelter.Status == models.ShelterStatusApproved {
			animal.ShelterID = &shelter.ID
			animal.OwnerName = shelter.Name
		}
	}
	if animal.ShelterID == nil {
		animal.OwnerID = &user.ID
		animal.OwnerName = req.OwnerName
		if animal.OwnerName == "" {
			animal.OwnerName = user.Name
		}
	}

	if err := s.animalRepo.Create(animal); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return buildAnimalResponse(animal), nil
}

func (s *animalService) GetAnimal(animalID string) (*dto.AnimalResponse, error) {
	animal, err := s.findAnimal(animalID)
	if err != nil {
		return nil, err
	}
	return buildAnimalResponse(animal), nil
}

func (s *animalService) SearchAnimals(req *dto.SearchAnimalsRequest) (*dto.AnimalListResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}

	animals, total, err := s.animalRepo.Search(repositories.AnimalSearchFilter{
		Species: req.Species,
		Breed:   req.Breed,
		Query:   req.Query,
		Limit:   limit,
		Offset:  req.Offset,
	})
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]*dto.AnimalResponse, 0, len(animals))
	for i := range animals {
		responses = append(responses, buildAnimalResponse(&animals[i]))
	}
	return &dto.AnimalListResponse{
		Animals: responses,
		Total:   total,
	}, nil
}

func (s *animalService) GetBreeds(species string) ([]string, error) {
	breeds, err := s.animalRepo.DistinctBreeds(species)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return breeds, nil
}

func (s *animalService) UpdateAnimal(userID, animalID string, req *dto.UpdateAnimalRequest) (*dto.AnimalResponse, error) {
	animal, err := s.findAnimal(animalID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeListingChange(userID, animal); err != nil {
		return nil, err
	}

	if req.Title != nil {
		animal.Title = *req.Title
	}
	if req.Description != nil {
		animal.Descr = *req.Description
	}
	if req.Breed != nil {
		animal.Breed = *req.Breed
	}
	if req.Age != nil {
		animal.Age = *req.Age
	}
	if req.ImageURL != nil {
		animal.ImageURL = req.ImageURL
	}
	if req.Photos != nil {
		animal.Photos = req.Photos
	}
	if req.IsActive != nil {
		animal.IsActive = *req.IsActive
	}

	if err := s.animalRepo.Update(animal); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return buildAnimalResponse(animal), nil
}

func (s *animalService) DeactivateAnimal(userID, animalID string) error {
	animal, err := s.findAnimal(animalID)
	if err != nil {
		return err
	}

	if err := s.authorizeListingChange(userID, animal); err != nil {
		return err
	}

	if err := s.animalRepo.Deactivate(animalID); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *animalService) findAnimal(animalID string) (*models.Animal, error) {
	animal, err := s.animalRepo.FindByID(animalID)
	if err != nil {
		if err == repositories.ErrAnimalNotFound {
			return nil, apperrors.ErrAnimalNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return animal, nil
}

func (s *animalService) authorizeListingChange(userID string, animal *models.Animal) error {
	actor, err := s.userRepo.FindByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return apperrors.ErrForbidden
		}
		return apperrors.DatabaseError(err)
	}

	if actor.Role == models.UserRoleAdmin {
		return nil
	}
	if animal.OwnerID != nil && *animal.OwnerID == userID {
		return nil
	}
	if animal.ShelterID != nil {
		shelter, err := s.shelterRepo.FindByAdminUserID(userID)
		if err == nil && shelter.ID == *animal.ShelterID {
			return nil
		}
		if err != nil && err != repositories.ErrShelterNotFound {
			return apperrors.DatabaseError(err)
		}
	}
	return apperrors.ErrForbidden
}

// ---------------- Builders ----------------

func buildAnimalResponse(animal *models.Animal) *dto.AnimalResponse {
	return &dto.AnimalResponse{
		ID:          animal.ID,
		Title:       animal.Title,
		Description: animal.Descr,
		Species:     animal.Species,
		Breed:       animal.Breed,
		Age:         animal.Age,
		Gender:      animal.Gender,
		ImageURL:    animal.ImageURL,
		Photos:      animal.Photos,
		ShelterID:   animal.ShelterID,
		OwnerID:     animal.OwnerID,
		OwnerName:   animal.OwnerName,
		IsActive:    animal.IsActive,
		CreatedAt:   animal.CreatedAt,
	}
}
