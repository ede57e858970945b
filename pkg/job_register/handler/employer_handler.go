package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge/job-register/pkg/job_register/models"
	"github.com/skillbridge/job-register/pkg/job_register/services"
)

// EmployersAPIController binds employer-facing HTTP requests to the
// employer service.
type EmployersAPIController struct {
	Service *services.EmployerService
}

func NewEmployersAPIController(s *services.EmployerService) *EmployersAPIController {
	return &EmployersAPIController{Service: s}
}

// RegisterEmployer handles POST /employers
func (c *EmployersAPIController) RegisterEmployer(ctx *gin.Context, body *models.NewEmployerInput) (*models.Employer, error) {
	employer, err := c.Service.RegisterEmployer(ctx.Request.Context(), body)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return employer, nil
}

// CreateJob handles POST /employers/:id/jobs
func (c *EmployersAPIController) CreateJob(ctx *gin.Context, body *models.CreateJobInput) (*models.JobPosting, error) {
	job, err := c.Service.CreateJob(ctx.Request.Context(), body.Id, body)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return job, nil
}

// ListJobs handles GET /employers/:id/jobs
func (c *EmployersAPIController) ListJobs(ctx *gin.Context, params *models.EmployerParams) ([]models.JobPosting, error) {
	jobs, err := c.Service.ListJobs(ctx.Request.Context(), params.Id)
	if err != nil {
		return nil, mapServiceError(err)
	}
	ctx.Header("X-Total-Count", fmt.Sprintf("%d", len(jobs)))
	return jobs, nil
}

// ListApplications handles GET /employers/:id/jobs/:jobId/applications
func (c *EmployersAPIController) ListApplications(ctx *gin.Context, params *models.JobApplicationsParams) ([]models.Application, error) {
	apps, err := c.Service.ListApplications(ctx.Request.Context(), params.Id, params.JobID)
	if err != nil {
		return nil, mapServiceError(err)
	}
	ctx.Header("X-Total-Count", fmt.Sprintf("%d", len(apps)))
	return apps, nil
}
