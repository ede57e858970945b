package repositories

import (
	"context"
	"errors"

	"github.com/skillbridge/job-register/pkg/job_register/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobRepository interface {
	SaveJob(ctx context.Context, job *models.JobPosting) error
	GetJobByID(ctx context.Context, id string) (*models.JobPosting, error)
	AllJobs(ctx context.Context) ([]models.JobPosting, error)
	JobsByEmployer(ctx context.Context, employerID string) ([]models.JobPosting, error)
	UpsertApplication(ctx context.Context, app *models.Application) error
	GetApplications(ctx context.Context, jobID string) ([]models.Application, error)
	SaveEmployer(ctx context.Context, employer *models.Employer) error
	GetEmployerByID(ctx context.Context, id string) (*models.Employer, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) SaveJob(ctx context.Context, job *models.JobPosting) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// GetJobByID returns (nil, nil) when the posting does not exist.
func (r *jobRepository) GetJobByID(ctx context.Context, id string) (*models.JobPosting, error) {
	var job models.JobPosting
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) AllJobs(ctx context.Context) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	err := r.db.WithContext(ctx).Order("created_at DESC, id").Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) JobsByEmployer(ctx context.Context, employerID string) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("created_at DESC, id").
		Find(&jobs).Error
	return jobs, err
}

// UpsertApplication writes the application keyed by (job_id, applicant_id).
// A second apply for the same pair overwrites the stored snapshot; the key is
// deterministic, so concurrent applies cannot duplicate.
func (r *jobRepository) UpsertApplication(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "job_id"}, {Name: "applicant_id"}},
			UpdateAll: true,
		}).
		Create(app).Error
}

func (r *jobRepository) GetApplications(ctx context.Context, jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("applied_at ASC").
		Find(&apps).Error
	return apps, err
}

func (r *jobRepository) SaveEmployer(ctx context.Context, employer *models.Employer) error {
	return r.db.WithContext(ctx).Save(employer).Error
}

// GetEmployerByID returns (nil, nil) when the employer does not exist.
func (r *jobRepository) GetEmployerByID(ctx context.Context, id string) (*models.Employer, error) {
	var employer models.Employer
	err := r.db.WithContext(ctx).First(&employer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &employer, nil
}
