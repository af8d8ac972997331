package services

import (
	"fmt"

	"petlink_backend/internal/email"
	"petlink_backend/internal/logger"
	"petlink_backend/internal/models"
	"petlink_backend/internal/repositories"
	"petlink_backend/internal/services/dto"
	"petlink_backend/pkg/apperrors"
)

type AdoptionService interface {
	// CreateAdoption files a pending request for an active listing and
	// notifies whoever posted it.
	CreateAdoption(requesterID string, req *dto.CreateAdoptionRequest) (*dto.AdoptionResponse, error)

	GetAdoption(adoptionID string) (*dto.AdoptionResponse, error)
	GetMyAdoptions(requesterID string) (*dto.AdoptionListResponse, error)
	GetShelterAdoptions(adminUserID string) (*dto.AdoptionListResponse, error)

	// ReviewAdoption resolves a pending request. Approval retires the
	// listing. The status write and history append land atomically.
	ReviewAdoption(actorUserID, adoptionID string, req *dto.ReviewAdoptionRequest) (*dto.AdoptionResponse, error)
	GetHistory(adoptionID string) ([]*dto.AdoptionStatusUpdateResponse, error)
}

type adoptionService struct {
	adoptionRepo repositories.AdoptionRepository
	animalRepo   repositories.AnimalRepository
	shelterRepo  repositories.ShelterRepository
	userRepo     repositories.UserRepository
	notification NotificationService
	baseURL      string
}

func NewAdoptionService(
	adoptionRepo repositories.AdoptionRepository,
	animalRepo repositories.AnimalRepository,
	shelterRepo repositories.ShelterRepository,
	userRepo repositories.UserRepository,
	notification NotificationService,
	baseURL string,
) AdoptionService {
	return &adoptionService{
		adoptionRepo: adoptionRepo,
		animalRepo:   animalRepo,
		shelterRepo:  shelterRepo,
		userRepo:     userRepo,
		notification: notification,
		baseURL:      baseURL,
	}
}

func (s *adoptionService) CreateAdoption(requesterID string, req *dto.CreateAdoptionRequest) (*dto.AdoptionResponse, error) {
	animal, err := s.animalRepo.FindByID(req.AnimalID)
	if err != nil {
		if err == repositories.ErrAnimalNotFound {
			return nil, apperrors.ErrAnimalNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	if !animal.IsActive {
		return nil, apperrors.ErrAnimalNotActive
	}

	adoption := &models.Adoption{
		AnimalID:    animal.ID,
		RequesterID: requesterID,
		OwnerID:     animal.OwnerID,
		ShelterID:   animal.ShelterID,
		Name:        req.Name,
		Contact:     req.Contact,
		Message:     req.Message,
		Status:      models.AdoptionStatusPending,
	}

	if err := s.adoptionRepo.Create(adoption); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	adoption.Animal = animal

	s.notifyPosterOfRequest(adoption, animal)

	return buildAdoptionResponse(adoption), nil
}

func (s *adoptionService) GetAdoption(adoptionID string) (*dto.AdoptionResponse, error) {
	adoption, err := s.findAdoption(adoptionID)
	if err != nil {
		return nil, err
	}
	return buildAdoptionResponse(adoption), nil
}

func (s *adoptionService) GetMyAdoptions(requesterID string) (*dto.AdoptionListResponse, error) {
	adoptions, err := s.adoptionRepo.FindByRequester(requesterID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return buildAdoptionListResponse(adoptions), nil
}

func (s *adoptionService) GetShelterAdoptions(adminUserID string) (*dto.AdoptionListResponse, error) {
	shelter, err := s.shelterRepo.FindByAdminUserID(adminUserID)
	if err != nil {
		if err == repositories.ErrShelterNotFound {
			return nil, apperrors.ErrShelterNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	adoptions, err := s.adoptionRepo.FindByShelter(shelter.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return buildAdoptionListResponse(adoptions), nil
}

func (s *adoptionService) ReviewAdoption(actorUserID, adoptionID string, req *dto.ReviewAdoptionRequest) (*dto.AdoptionResponse, error) {
	status := models.AdoptionStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	adoption, err := s.findAdoption(adoptionID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeReview(actorUserID, adoption); err != nil {
		return nil, err
	}

	updated, err := s.adoptionRepo.TransitionStatus(adoptionID, status, req.Note)
	if err != nil {
		switch err {
		case repositories.ErrAdoptionNotFound:
			return nil, apperrors.ErrAdoptionNotFound
		case repositories.ErrInvalidAdoptionTransition:
			return nil, apperrors.ErrInvalidTransition
		default:
			return nil, apperrors.DatabaseError(err)
		}
	}
	updated.Animal = adoption.Animal

	if status == models.AdoptionStatusApproved {
		if err := s.animalRepo.Deactivate(updated.AnimalID); err != nil {
			logger.WithError(err).Error("failed to retire adopted listing",
				"adoption_id", updated.ID, "animal_id", updated.AnimalID)
		}
	}

	s.notifyRequesterOfDecision(updated, req.Note)

	return buildAdoptionResponse(updated), nil
}

func (s *adoptionService) GetHistory(adoptionID string) ([]*dto.AdoptionStatusUpdateResponse, error) {
	if _, err := s.findAdoption(adoptionID); err != nil {
		return nil, err
	}

	history, err := s.adoptionRepo.FindHistory(adoptionID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]*dto.AdoptionStatusUpdateResponse, 0, len(history))
	for i := range history {
		entry := &history[i]
		responses = append(responses, &dto.AdoptionStatusUpdateResponse{
			ID:         entry.ID,
			AdoptionID: entry.AdoptionID,
			Status:     entry.Status,
			Note:       entry.Note,
			CreatedAt:  entry.CreatedAt,
		})
	}
	return responses, nil
}

func (s *adoptionService) findAdoption(adoptionID string) (*models.Adoption, error) {
	adoption, err := s.adoptionRepo.FindByID(adoptionID)
	if err != nil {
		if err == repositories.ErrAdoptionNotFound {
			return nil, apperrors.ErrAdoptionNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return adoption, nil
}

// authorizeReview allows platform admins, the listing owner and the admin of
// the listing's shelter.
func (s *adoptionService) authorizeReview(actorUserID string, adoption *models.Adoption) error {
	actor, err := s.userRepo.FindByID(actorUserID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return apperrors.ErrForbidden
		}
		return apperrors.DatabaseError(err)
	}

	if actor.Role == models.UserRoleAdmin {
		return nil
	}
	if adoption.OwnerID != nil && *adoption.OwnerID == actorUserID {
		return nil
	}
	if adoption.ShelterID != nil {
		shelter, err := s.shelterRepo.FindByAdminUserID(actorUserID)
		if err == nil && shelter.ID == *adoption.ShelterID {
			return nil
		}
		if err != nil && err != repositories.ErrShelterNotFound {
			return apperrors.DatabaseError(err)
		}
	}
	return apperrors.ErrForbidden
}

// ---------------- Fan-out ----------------

func (s *adoptionService) notifyPosterOfRequest(adoption *models.Adoption, animal *models.Animal) {
	var recipientID *string
	recipientKind := models.RecipientKindUser
	emailTo := ""

	switch {
	case animal.ShelterID != nil:
		recipientID = animal.ShelterID
		recipientKind = models.RecipientKindShelter
		if shelter, err := s.shelterRepo.FindByID(*animal.ShelterID); err == nil {
			emailTo = shelter.Email
		}
	case animal.OwnerID != nil:
		recipientID = animal.OwnerID
		if owner, err := s.userRepo.FindByID(*animal.OwnerID); err == nil {
			emailTo = owner.Email
		}
	default:
		return
	}

	event := &dto.NotifyEvent{
		RecipientID:   recipientID,
		RecipientKind: recipientKind,
		Type:          NotificationTypeAdoptionNew,
		Message:       fmt.Sprintf("New adoption request for %s from %s", animal.Title, adoption.Name),
		Meta: map[string]interface{}{
			"adoption_id": adoption.ID,
			"animal_id":   animal.ID,
		},
	}
	if emailTo != "" {
		event.Email = &dto.EmailEvent{
			Recipient: emailTo,
			Subject:   fmt.Sprintf("New adoption request for %s", animal.Title),
			Template:  email.TemplateAdoptionRequest,
			Data: map[string]interface{}{
				"animal_title":   animal.Title,
				"requester_name": adoption.Name,
				"contact":        adoption.Contact,
				"message":        adoption.Message,
				"dashboard_url":  fmt.Sprintf("%s/adoptions/%s", s.baseURL, adoption.ID),
			},
		}
	}

	if err := s.notification.Notify(event); err != nil {
		logger.WithError(err).Warn("failed to notify poster of adoption request",
			"adoption_id", adoption.ID)
	}
}

func (s *adoptionService) notifyRequesterOfDecision(adoption *models.Adoption, note string) {
	animalTitle := ""
	if adoption.Animal != nil {
		animalTitle = adoption.Animal.Title
	}

	event := &dto.NotifyEvent{
		RecipientID:   &adoption.RequesterID,
		RecipientKind: models.RecipientKindUser,
		Type:          NotificationTypeAdoptionStatus,
		Message:       fmt.Sprintf("Your adoption request was %s", adoption.Status),
		Meta: map[string]interface{}{
			"adoption_id": adoption.ID,
			"status":      string(adoption.Status),
			"note":        note,
		},
	}

	if requester, err := s.userRepo.FindByID(adoption.RequesterID); err == nil {
		event.Email = &dto.EmailEvent{
			Recipient: requester.Email,
			Subject:   fmt.Sprintf("Adoption request %s", adoption.Status),
			Template:  email.TemplateAdoptionStatus,
			Data: map[string]interface{}{
				"animal_title": animalTitle,
				"status":       string(adoption.Status),
				"note":         note,
			},
		}
	}

	if err := s.notification.Notify(event); err != nil {
		logger.WithError(err).Warn("failed to notify requester of adoption decision",
			"adoption_id", adoption.ID)
	}
}

// ---------------- Builders ----------------

func buildAdoptionResponse(adoption *models.Adoption) *dto.AdoptionResponse {
	response := &dto.AdoptionResponse{
		ID:          adoption.ID,
		AnimalID:    adoption.AnimalID,
		RequesterID: adoption.RequesterID,
		ShelterID:   adoption.ShelterID,
		Name:        adoption.Name,
		Contact:     adoption.Contact,
		Message:     adoption.Message,
		Status:      adoption.Status,
		CreatedAt:   adoption.CreatedAt,
	}
	if adoption.Animal != nil {
		response.Animal = buildAnimalResponse(adoption.Animal)
	}
	return response
}

func buildAdoptionListResponse(adoptions []models.Adoption) *dto.AdoptionListResponse {
	responses := make([]*dto.AdoptionResponse, 0, len(adoptions))
	for i := range adoptions {
		responses = append(responses, buildAdoptionResponse(&adoptions[i]))
	}
	return &dto.AdoptionListResponse{
		Adoptions: responses,
		Total:     len(responses),
	}
}
