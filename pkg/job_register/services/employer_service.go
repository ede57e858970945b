package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/skillbridge/job-register/pkg/job_register/helpers/problem"
	"github.com/skillbridge/job-register/pkg/job_register/models"
	"github.com/skillbridge/job-register/pkg/job_register/repositories"
	"github.com/teris-io/shortid"
	"go.uber.org/zap"
)

// EmployerService covers the employer side: profile registration, job
// postings and application review.
type EmployerService struct {
	jobs repositories.JobRepository
	log  *zap.Logger
}

func NewEmployerService(jobs repositories.JobRepository, log *zap.Logger) *EmployerService {
	return &EmployerService{jobs: jobs, log: log}
}

// RegisterEmployer stores the employer profile for a provider-issued identity.
func (s *EmployerService) RegisterEmployer(ctx context.Context, in *models.NewEmployerInput) (*models.Employer, error) {
	if strings.TrimSpace(in.CompanyName) == "" {
		return nil, problem.NewBadRequest(in.Id, "companyName is required",
			problem.InvalidParam{Name: "companyName", Reason: "companyName is required"})
	}
	employer := &models.Employer{
		Id:          in.Id,
		CompanyName: in.CompanyName,
		Email:       in.Email,
	}
	if err := s.jobs.SaveEmployer(ctx, employer); err != nil {
		return nil, err
	}
	return employer, nil
}

// CreateJob creates a posting owned by the employer. The eligibility
// threshold is fixed here; the company name is denormalized onto the posting
// at this moment; the creation time comes from the server clock.
func (s *EmployerService) CreateJob(ctx context.Context, employerID string, in *models.CreateJobInput) (*models.JobPosting, error) {
	if in.Threshold < 0 || in.Threshold > 100 {
		return nil, problem.NewBadRequest(employerID, "threshold must be between 0 and 100",
			problem.InvalidParam{Name: "threshold", Reason: "must be between 0 and 100"})
	}

	employer, err := s.jobs.GetEmployerByID(ctx, employerID)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmployerNotFound, employerID)
	}

	job := &models.JobPosting{
		Id:          "job_" + shortid.MustGenerate(),
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		EmployerID:  employer.Id,
		CompanyName: employer.CompanyName,
		Threshold:   in.Threshold,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.jobs.SaveJob(ctx, job); err != nil {
		return nil, err
	}

	s.log.Info("job posted",
		zap.String("job", job.Id),
		zap.String("employer", employerID),
		zap.Float64("threshold", job.Threshold))
	return job, nil
}

func (s *EmployerService) ListJobs(ctx context.Context, employerID string) ([]models.JobPosting, error) {
	return s.jobs.JobsByEmployer(ctx, employerID)
}

// ListApplications returns the application set of one posting, only for the
// employer that owns it.
func (s *EmployerService) ListApplications(ctx context.Context, employerID, jobID string) ([]models.Application, error) {
	job, err := s.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}
	if job.EmployerID != employerID {
		return nil, fmt.Errorf("%w: %s", ErrNotJobOwner, jobID)
	}
	return s.jobs.GetApplications(ctx, jobID)
}
