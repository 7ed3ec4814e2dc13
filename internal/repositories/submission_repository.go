package repositories

import (
	"errors"
	"time"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSubmissionNotFound = errors.New("submission not found")

type SubmissionRepository interface {
	Create(submission *models.ContactSubmission) error
	FindByID(id uint) (*models.ContactSubmission, error)
	FindAll() ([]models.ContactSubmission, error)
	FindByStatus(status models.SubmissionStatus) ([]models.ContactSubmission, error)
	UpdateStatus(id uint, status models.SubmissionStatus) error
	Delete(id uint) error
	CountAll() (int64, error)
	CountByStatus(status models.SubmissionStatus) (int64, error)
}

type SubmissionRepositoryImpl struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &SubmissionRepositoryImpl{db: db}
}

func (r *SubmissionRepositoryImpl) Create(submission *models.ContactSubmission) error {
	return r.db.Create(submission).Error
}

func (r *SubmissionRepositoryImpl) FindByID(id uint) (*models.ContactSubmission, error) {
	var submission models.ContactSubmission
	err := r.db.First(&submission, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &submission, nil
}

func (r *SubmissionRepositoryImpl) FindAll() ([]models.ContactSubmission, error) {
	var submissions []models.ContactSubmission
	err := r.db.Order("created_at DESC").Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepositoryImpl) FindByStatus(status models.SubmissionStatus) ([]models.ContactSubmission, error) {
	var submissions []models.ContactSubmission
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&submissions).Error
	return submissions, err
}

// UpdateStatus меняет только status и updated_at, остальные поля не трогает.
func (r *SubmissionRepositoryImpl) UpdateStatus(id uint, status models.SubmissionStatus) error {
	result := r.db.Model(&models.ContactSubmission{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

func (r *SubmissionRepositoryImpl) Delete(id uint) error {
	result := r.db.Where("id = ?", id).Delete(&models.ContactSubmission{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

func (r *SubmissionRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactSubmission{}).Count(&count).Error
	return count, err
}

func (r *SubmissionRepositoryImpl) CountByStatus(status models.SubmissionStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactSubmission{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
