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

type ShelterService interface {
	// RegisterShelter files a pending shelter request for the user. One
	// request per user; admins review it later.
	RegisterShelter(userID string, req *dto.RegisterShelterRequest) (*dto.ShelterResponse, error)

	GetShelter(shelterID string) (*dto.ShelterResponse, error)
	GetMyShelter(userID string) (*dto.ShelterResponse, error)
	GetApprovedShelters() (*dto.ShelterListResponse, error)
	GetPendingShelters() (*dto.ShelterListResponse, error)

	// ReviewShelter is the admin decision. Approval promotes the requesting
	// user to shelter_admin.
	ReviewShelter(shelterID string, req *dto.ReviewShelterRequest) (*dto.ShelterResponse, error)
}

type shelterService struct {
	shelterRepo  repositories.ShelterRepository
	userRepo     repositories.UserRepository
	notification NotificationService
}

func NewShelterService(
	shelterRepo repositories.ShelterRepository,
	userRepo repositories.UserRepository,
	notification NotificationService,
) ShelterService {
	return &shelterService{
		shelterRepo:  shelterRepo,
		userRepo:     userRepo,
		notification: notification,
	}
}

func (s *shelterService) RegisterShelter(userID string, req *dto.RegisterShelterRequest) (*dto.ShelterResponse, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if _, err := s.shelterRepo.FindByAdminUserID(userID); err == nil {
		return nil, apperrors.ErrShelterAlreadyExists
	} else if err != repositories.ErrShelterNotFound {
		return nil, apperrors.DatabaseError(err)
	}

	shelter := &models.Shelter{
		AdminUserID: userID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Description: req.Description,
		Status:      models.ShelterStatusPending,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}

	if err := s.shelterRepo.Create(shelter); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.notifyAdminsOfRequest(shelter)

	return buildShelterResponse(shelter), nil
}

// notifyAdminsOfRequest fans out one notification per platform admin, so
// each admin reads and clears the request from their own feed.
func (s *shelterService) notifyAdminsOfRequest(shelter *models.Shelter) {
	admins, err := s.userRepo.FindByRole(models.UserRoleAdmin)
	if err != nil {
		logger.WithError(err).Warn("failed to load admins for shelter request",
			"shelter_id", shelter.ID)
		return
	}

	for i := range admins {
		event := &dto.NotifyEvent{
			RecipientID:   &admins[i].ID,
			RecipientKind: models.RecipientKindAdmin,
			Type:          NotificationTypeShelterStatus,
			Message:       fmt.Sprintf("New shelter registration request: %s", shelter.Name),
			Meta: map[string]interface{}{
				"shelter_id": shelter.ID,
				"status":     string(shelter.Status),
			},
		}
		if err := s.notification.Notify(event); err != nil {
			logger.WithError(err).Warn("failed to notify admin of shelter request",
				"shelter_id", shelter.ID, "admin_id", admins[i].ID)
		}
	}
}

func (s *shelterService) GetShelter(shelterID string) (*dto.ShelterResponse, error) {
	shelter, err := s.findShelter(shelterID)
	if err != nil {
		return nil, err
	}
	return buildShelterResponse(shelter), nil
}

func (s *shelterService) GetMyShelter(userID string) (*dto.ShelterResponse, error) {
	shelter, err := s.shelterRepo.FindByAdminUserID(userID)
	if err != nil {
		if err == repositories.ErrShelterNotFound {
			return nil, apperrors.ErrShelterNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return buildShelterResponse(shelter), nil
}

func (s *shelterService) GetApprovedShelters() (*dto.ShelterListResponse, error) {
	shelters, err := s.shelterRepo.FindApproved()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return buildShelterListResponse(shelters), nil
}

func (s *shelterService) GetPendingShelters() (*dto.ShelterListResponse, error) {
	shelters, err := s.shelterRepo.FindPending()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return buildShelterListResponse(shelters), nil
}

func (s *shelterService) ReviewShelter(shelterID string, req *dto.ReviewShelterRequest) (*dto.ShelterResponse, error) {
	shelter, err := s.findShelter(shelterID)
	if err != nil {
		return nil, err
	}

	if shelter.Status != models.ShelterStatusPending {
		return nil, apperrors.NewConflictError("Shelter request has already been reviewed")
	}

	status := models.ShelterStatusRejected
	if req.Approve {
		status = models.ShelterStatusApproved
	}

	updated, err := s.shelterRepo.UpdateStatus(shelterID, status)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if status == models.ShelterStatusApproved {
		if err := s.userRepo.UpdateRole(updated.AdminUserID, models.UserRoleShelterAdmin); err != nil {
			logger.WithError(err).Error("failed to promote shelter admin",
				"shelter_id", updated.ID, "user_id", updated.AdminUserID)
		}
	}

	s.notifyShelterOfDecision(updated, req.Note)

	return buildShelterResponse(updated), nil
}

func (s *shelterService) findShelter(shelterID string) (*models.Shelter, error) {
	shelter, err := s.shelterRepo.FindByID(shelterID)
	if err != nil {
		if err == repositories.ErrShelterNotFound {
			return nil, apperrors.ErrShelterNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return shelter, nil
}

func (s *shelterService) notifyShelterOfDecision(shelter *models.Shelter, note string) {
	event := &dto.NotifyEvent{
		RecipientID:   &shelter.AdminUserID,
		RecipientKind: models.RecipientKindUser,
		Type:          NotificationTypeShelterStatus,
		Message:       fmt.Sprintf("Your shelter registration was %s", shelter.Status),
		Meta: map[string]interface{}{
			"shelter_id": shelter.ID,
			"status":     string(shelter.Status),
			"note":       note,
		},
		Email: &dto.EmailEvent{
			Recipient: shelter.Email,
			Subject:   fmt.Sprintf("Shelter registration %s", shelter.Status),
			Template:  email.TemplateShelterStatus,
			Data: map[string]interface{}{
				"shelter_name": shelter.Name,
				"status":       string(shelter.Status),
				"note":         note,
			},
		},
	}

	if err := s.notification.Notify(event); err != nil {
		logger.WithError(err).Warn("failed to notify shelter of review decision",
			"shelter_id", shelter.ID)
	}
}

// ---------------- Builders ----------------

func buildShelterResponse(shelter *models.Shelter) *dto.ShelterResponse {
	return &dto.ShelterResponse{
		ID:          shelter.ID,
		AdminUserID: shelter.AdminUserID,
		Name:        shelter.Name,
		Email:       shelter.Email,
		Phone:       shelter.Phone,
		Address:     shelter.Address,
		Description: shelter.Description,
		Status:      shelter.Status,
		Latitude:    shelter.Latitude,
		Longitude:   shelter.Longitude,
		CreatedAt:   shelter.CreatedAt,
	}
}

func buildShelterListResponse(shelters []models.Shelter) *dto.ShelterListResponse {
	responses := make([]*dto.ShelterResponse, 0, len(shelters))
	for i := range shelters {
		responses = append(responses, buildShelterResponse(&shelters[i]))
	}
	return &dto.ShelterListResponse{
		Shelters: responses,
		Total:    len(responses),
	}
}
