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

type ReportService interface {
	// CreateReport resolves the nearest shelter, persists the report and
	// fans out the rescue alert. No shelter available means no report.
	CreateReport(userID *string, req *dto.CreateReportRequest) (*dto.ReportResponse, error)

	GetReport(reportID string) (*dto.ReportWithHistoryResponse, error)
	GetOpenReports() (*dto.ReportListResponse, error)
	GetMyReports(userID string) (*dto.ReportListResponse, error)

	// UpdateStatus advances the rescue lifecycle. The status write and the
	// history append land atomically; the reporter is notified afterwards.
	UpdateStatus(actorUserID, reportID string, req *dto.UpdateReportStatusRequest) (*dto.ReportResponse, error)
	GetHistory(reportID string) ([]*dto.StatusUpdateResponse, error)
}

type reportService struct {
	reportRepo   repositories.ReportRepository
	shelterRepo  repositories.ShelterRepository
	userRepo     repositories.UserRepository
	locator      LocatorService
	notification NotificationService
	baseURL      string
}

func NewReportService(
	reportRepo repositories.ReportRepository,
	shelterRepo repositories.ShelterRepository,
	userRepo repositories.UserRepository,
	locator LocatorService,
	notification NotificationService,
	baseURL string,
) ReportService {
	return &reportService{
		reportRepo:   reportRepo,
		shelterRepo:  shelterRepo,
		userRepo:     userRepo,
		locator:      locator,
		notification: notification,
		baseURL:      baseURL,
	}
}

func (s *reportService) CreateReport(userID *string, req *dto.CreateReportRequest) (*dto.ReportResponse, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return nil, apperrors.ErrInvalidCoordinates
	}
	lat, lng := *req.Latitude, *req.Longitude

	nearest, err := s.locator.FindNearestShelter(lat, lng)
	if err != nil {
		return nil, err
	}
	shelter := nearest.Shelter

	report := &models.PetReport{
		UserID:     userID,
		ReportType: req.ReportType,
		PetType:    req.PetType,
		Location:   req.Location,
		Descr:      req.Description,
		ImageURL:   req.ImageURL,
		Latitude:   lat,
		Longitude:  lng,
		ShelterID:  &shelter.ID,
		Status:     models.RescueStatusOpen,
	}

	if err := s.reportRepo.Create(report); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.notifyShelterOfReport(report, nearest)

	return buildReportResponse(report), nil
}

func (s *reportService) GetReport(reportID string) (*dto.ReportWithHistoryResponse, error) {
	report, err := s.reportRepo.FindByID(reportID)
	if err != nil {
		if err == repositories.ErrReportNotFound {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	history, err := s.reportRepo.FindHistory(reportID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.ReportWithHistoryResponse{
		Report:  buildReportResponse(report),
		History: buildHistoryResponses(history),
	}, nil
}

func (s *reportService) GetOpenReports() (*dto.ReportListResponse, error) {
	reports, err := s.reportRepo.FindOpen()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return buildReportListResponse(reports), nil
}

func (s *reportService) GetMyReports(userID string) (*dto.ReportListResponse, error) {
	reports, err := s.reportRepo.FindByReporter(userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return buildReportListResponse(reports), nil
}

func (s *reportService) UpdateStatus(actorUserID, reportID string, req *dto.UpdateReportStatusRequest) (*dto.ReportResponse, error) {
	status := models.RescueStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	if err := s.authorizeStatusUpdate(actorUserID, reportID); err != nil {
		return nil, err
	}

	report, err := s.reportRepo.TransitionStatus(reportID, status, req.Note)
	if err != nil {
		switch err {
		case repositories.ErrReportNotFound:
			return nil, apperrors.ErrReportNotFound
		case repositories.ErrInvalidRescueTransition:
			return nil, apperrors.ErrInvalidTransition
		default:
			return nil, apperrors.DatabaseError(err)
		}
	}

	s.notifyReporterOfStatus(report, req.Note)

	return buildReportResponse(report), nil
}

func (s *reportService) GetHistory(reportID string) ([]*dto.StatusUpdateResponse, error) {
	if _, err := s.reportRepo.FindByID(reportID); err != nil {
		if err == repositories.ErrReportNotFound {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	history, err := s.reportRepo.FindHistory(reportID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return buildHistoryResponses(history), nil
}

// authorizeStatusUpdate allows platform admins and the admin of the assigned
// shelter.
func (s *reportService) authorizeStatusUpdate(actorUserID, reportID string) error {
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
	if actor.Role != models.UserRoleShelterAdmin {
		return apperrors.ErrForbidden
	}

	report, err := s.reportRepo.FindByID(reportID)
	if err != nil {
		if err == repositories.ErrReportNotFound {
			return apperrors.ErrReportNotFound
		}
		return apperrors.DatabaseError(err)
	}

	shelter, err := s.shelterRepo.FindByAdminUserID(actorUserID)
	if err != nil {
		if err == repositories.ErrShelterNotFound {
			return apperrors.ErrForbidden
		}
		return apperrors.DatabaseError(err)
	}

	if report.ShelterID == nil || *report.ShelterID != shelter.ID {
		return apperrors.ErrForbidden
	}
	return nil
}

// ---------------- Fan-out ----------------

func (s *reportService) notifyShelterOfReport(report *models.PetReport, nearest *NearestShelter) {
	shelter := nearest.Shelter
	event := &dto.NotifyEvent{
		RecipientID:   &shelter.ID,
		RecipientKind: models.RecipientKindShelter,
		Type:          NotificationTypeRescueAlert,
		Message:       fmt.Sprintf("New %s pet report: %s at %s", report.ReportType, report.PetType, report.Location),
		Meta: map[string]interface{}{
			"report_id":   report.ID,
			"report_type": report.ReportType,
			"pet_type":    report.PetType,
			"distance_km": nearest.DistanceKm,
		},
		Email: &dto.EmailEvent{
			Recipient: shelter.Email,
			Subject:   fmt.Sprintf("New %s pet report near %s", report.ReportType, shelter.Name),
			Template:  email.TemplateRescueAlert,
			Data: map[string]interface{}{
				"report_id":     report.ID,
				"report_type":   report.ReportType,
				"pet_type":      report.PetType,
				"location":      report.Location,
				"description":   report.Descr,
				"dashboard_url": fmt.Sprintf("%s/shelter/reports/%s", s.baseURL, report.ID),
			},
		},
	}

	// The report already stands; a failed alert is logged, not surfaced.
	if err := s.notification.Notify(event); err != nil {
		logger.WithError(err).Warn("failed to notify shelter of new report",
			"report_id", report.ID, "shelter_id", shelter.ID)
	}
}

func (s *reportService) notifyReporterOfStatus(report *models.PetReport, note string) {
	if report.UserID == nil {
		return
	}

	event := &dto.NotifyEvent{
		RecipientID:   report.UserID,
		RecipientKind: models.RecipientKindUser,
		Type:          NotificationTypeReportStatus,
		Message:       fmt.Sprintf("Your %s report is now %s", report.PetType, report.Status),
		Meta: map[string]interface{}{
			"report_id": report.ID,
			"status":    string(report.Status),
			"note":      note,
		},
	}

	if reporter, err := s.userRepo.FindByID(*report.UserID); err == nil {
		event.Email = &dto.EmailEvent{
			Recipient: reporter.Email,
			Subject:   fmt.Sprintf("Update on your %s report", report.PetType),
			Template:  email.TemplateReportStatus,
			Data: map[string]interface{}{
				"pet_type": report.PetType,
				"status":   string(report.Status),
				"note":     note,
			},
		}
	}

	if err := s.notification.Notify(event); err != nil {
		logger.WithError(err).Warn("failed to notify reporter of status change",
			"report_id", report.ID)
	}
}

// ---------------- Builders ----------------

func buildReportResponse(report *models.PetReport) *dto.ReportResponse {
	return &dto.ReportResponse{
		ID:          report.ID,
		UserID:      report.UserID,
		ReportType:  report.ReportType,
		PetType:     report.PetType,
		Location:    report.Location,
		Description: report.Descr,
		ImageURL:    report.ImageURL,
		Latitude:    report.Latitude,
		Longitude:   report.Longitude,
		ShelterID:   report.ShelterID,
		Status:      report.Status,
		CreatedAt:   report.CreatedAt,
		UpdatedAt:   report.UpdatedAt,
	}
}

func buildReportListResponse(reports []models.PetReport) *dto.ReportListResponse {
	responses := make([]*dto.ReportResponse, 0, len(reports))
	for i := range reports {
		responses = append(responses, buildReportResponse(&reports[i]))
	}
	return &dto.ReportListResponse{
		Reports: responses,
		Total:   len(responses),
	}
}

func buildHistoryResponses(history []models.RescueStatusUpdate) []*dto.StatusUpdateResponse {
	responses := make([]*dto.StatusUpdateResponse, 0, len(history))
	for i := range history {
		entry := &history[i]
		responses = append(responses, &dto.StatusUpdateResponse{
			ID:        entry.ID,
			ReportID:  entry.ReportID,
			Status:    entry.Status,
			Note:      entry.Note,
			CreatedAt: entry.CreatedAt,
		})
	}
	return responses
}
