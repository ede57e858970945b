package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/skillbridge/job-register/pkg/job_register/helpers/problem"
	"github.com/skillbridge/job-register/pkg/job_register/models"
	"github.com/skillbridge/job-register/pkg/job_register/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEmployerServiceRegisterRequiresCompanyName(t *testing.T) {
	svc := services.NewEmployerService(&stubJobRepo{}, zap.NewNop())

	_, err := svc.RegisterEmployer(context.Background(), &models.NewEmployerInput{Id: "emp1", CompanyName: "  "})
	var apiErr problem.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)

	emp, err := svc.RegisterEmployer(context.Background(), &models.NewEmployerInput{Id: "emp1", CompanyName: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", emp.CompanyName)
}

func TestEmployerServiceCreateJob(t *testing.T) {
	var saved *models.JobPosting
	repo := &stubJobRepo{
		getEmployerFunc: func(ctx context.Context, id string) (*models.Employer, error) {
			if id == "emp1" {
				return &models.Employer{Id: "emp1", CompanyName: "Acme"}, nil
			}
			return nil, nil
		},
		saveJobFunc: func(ctx context.Context, job *models.JobPosting) error {
			saved = job
			return nil
		},
	}
	svc := services.NewEmployerService(repo, zap.NewNop())

	job, err := svc.CreateJob(context.Background(), "emp1", &models.CreateJobInput{
		Title: "Frontend Developer", Location: "Remote", Threshold: 70,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.True(t, strings.HasPrefix(job.Id, "job_"))
	assert.Equal(t, "emp1", job.EmployerID)
	// company name is denormalized from the employer profile at posting time
	assert.Equal(t, "Acme", job.CompanyName)
	assert.False(t, job.CreatedAt.IsZero())
}

func TestEmployerServiceCreateJobThresholdRange(t *testing.T) {
	svc := services.NewEmployerService(&stubJobRepo{}, zap.NewNop())

	for _, threshold := range []float64{-1, 101} {
		_, err := svc.CreateJob(context.Background(), "emp1", &models.CreateJobInput{Title: "x", Threshold: threshold})
		var apiErr problem.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.Status)
	}
}

func TestEmployerServiceCreateJobUnknownEmployer(t *testing.T) {
	svc := services.NewEmployerService(&stubJobRepo{}, zap.NewNop())
	_, err := svc.CreateJob(context.Background(), "ghost", &models.CreateJobInput{Title: "x", Threshold: 50})
	assert.ErrorIs(t, err, services.ErrEmployerNotFound)
}

func TestEmployerServiceListApplicationsOwnership(t *testing.T) {
	repo := &stubJobRepo{
		getJobFunc: func(ctx context.Context, id string) (*models.JobPosting, error) {
			if id == "job_1" {
				return &models.JobPosting{Id: "job_1", EmployerID: "emp1"}, nil
			}
			return nil, nil
		},
		appsFunc: func(ctx context.Context, jobID string) ([]models.Application, error) {
			return []models.Application{{JobID: jobID, ApplicantID: "a1"}}, nil
		},
	}
	svc := services.NewEmployerService(repo, zap.NewNop())
	ctx := context.Background()

	apps, err := svc.ListApplications(ctx, "emp1", "job_1")
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	_, err = svc.ListApplications(ctx, "emp2", "job_1")
	assert.ErrorIs(t, err, services.ErrNotJobOwner)

	_, err = svc.ListApplications(ctx, "emp1", "job_404")
	assert.ErrorIs(t, err, services.ErrJobNotFound)
}
