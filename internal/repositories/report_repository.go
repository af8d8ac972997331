package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"petlink_backend/internal/models"
)

var (
	ErrReportNotFound          = errors.New("report not found")
	ErrInvalidRescueTransition = errors.New("rescue status transition not allowed")
)

type ReportRepository interface {
	Create(report *models.PetReport) error
	FindByID(id string) (*models.PetReport, error)
	FindOpen() ([]models.PetReport, error)
	FindByReporter(userID string) ([]models.PetReport, error)

	// TransitionStatus updates the report's status column and appends the
	// matching history row in a single transaction, so readers never observe
	// the status and the history disagreeing.
	TransitionStatus(reportID string, status models.RescueStatus, note string) (*models.PetReport, error)

	// FindHistory returns the report's status updates, newest first. A report
	// with no transitions yields an empty slice, not an error.
	FindHistory(reportID string) ([]models.RescueStatusUpdate, error)
}

type ReportRepositoryImpl struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &ReportRepositoryImpl{db: db}
}

func (r *ReportRepositoryImpl) Create(report *models.PetReport) error {
	return r.db.Create(report).Error
}

func (r *ReportRepositoryImpl) FindByID(id string) (*models.PetReport, error) {
	var report models.PetReport
	err := r.db.First(&report, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepositoryImpl) FindOpen() ([]models.PetReport, error) {
	var reports []models.PetReport
	err := r.db.
		Where("status = ?", models.RescueStatusOpen).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *ReportRepositoryImpl) FindByReporter(userID string) ([]models.PetReport, error) {
	var reports []models.PetReport
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *ReportRepositoryImpl) TransitionStatus(reportID string, status models.RescueStatus, note string) (*models.PetReport, error) {
	var updated *models.PetReport

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var report models.PetReport
		// Row lock serializes concurrent transitions on the same report.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&report, "id = ?", reportID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReportNotFound
			}
			return err
		}

		if !report.Status.CanTransitionTo(status) {
			return ErrInvalidRescueTransition
		}

		if err := tx.Model(&report).Update("status", status).Error; err != nil {
			return err
		}

		entry := models.RescueStatusUpdate{
			ReportID: reportID,
			Status:   status,
			Note:     note,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		report.Status = status
		updated = &report
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *ReportRepositoryImpl) FindHistory(reportID string) ([]models.RescueStatusUpdate, error) {
	updates := []models.RescueStatusUpdate{}
	err := r.db.
		Where("report_id = ?", reportID).
		Order("created_at DESC").
		Find(&updates).Error
	return updates, err
}
