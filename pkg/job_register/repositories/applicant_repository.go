package repositories

import (
	"context"
	"errors"

	"github.com/skillbridge/job-register/pkg/job_register/models"
	"gorm.io/gorm"
)

type ApplicantRepository interface {
	Save(ctx context.Context, applicant *models.Applicant) error
	GetApplicantByID(ctx context.Context, id string) (*models.Applicant, error)
	UpdateResumeURL(ctx context.Context, id, url string) error
	AddCertification(ctx context.Context, cert *models.Certification) error
	RemoveCertification(ctx context.Context, applicantID, skillTag, url string) error
	GetCertifications(ctx context.Context, applicantID string) ([]models.Certification, error)
	GetSubmissions(ctx context.Context, applicantID string) ([]models.Submission, error)
	AllApplicantIDs(ctx context.Context) ([]string, error)
}

type applicantRepository struct {
	db *gorm.DB
}

func NewApplicantRepository(db *gorm.DB) ApplicantRepository {
	return &applicantRepository{db: db}
}

func (r *applicantRepository) Save(ctx context.Context, applicant *models.Applicant) error {
	return r.db.WithContext(ctx).Save(applicant).Error
}

// GetApplicantByID returns (nil, nil) when the applicant does not exist.
func (r *applicantRepository) GetApplicantByID(ctx context.Context, id string) (*models.Applicant, error) {
	var applicant models.Applicant
	err := r.db.WithContext(ctx).
		Preload("Certifications", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		First(&applicant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &applicant, nil
}

func (r *applicantRepository) UpdateResumeURL(ctx context.Context, id, url string) error {
	return r.db.WithContext(ctx).
		Model(&models.Applicant{}).
		Where("id = ?", id).
		Update("resume_url", url).Error
}

// AddCertification inserts a single row. The row-per-artifact layout makes
// concurrent appends on the same tag safe without optimistic retries.
func (r *applicantRepository) AddCertification(ctx context.Context, cert *models.Certification) error {
	return r.db.WithContext(ctx).Create(cert).Error
}

// RemoveCertification deletes exactly the rows matching the reference, again
// as a single statement.
func (r *applicantRepository) RemoveCertification(ctx context.Context, applicantID, skillTag, url string) error {
	return r.db.WithContext(ctx).
		Where("applicant_id = ? AND skill_tag = ? AND url = ?", applicantID, skillTag, url).
		Delete(&models.Certification{}).Error
}

func (r *applicantRepository) GetCertifications(ctx context.Context, applicantID string) ([]models.Certification, error) {
	var certs []models.Certification
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at ASC, id ASC").
		Find(&certs).Error
	return certs, err
}

func (r *applicantRepository) GetSubmissions(ctx context.Context, applicantID string) ([]models.Submission, error) {
	var subs []models.Submission
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("submitted_at ASC").
		Find(&subs).Error
	return subs, err
}

func (r *applicantRepository) AllApplicantIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.Applicant{}).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}
