package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/skillbridge/job-register/pkg/job_register/models"
	"github.com/skillbridge/job-register/pkg/job_register/services"
)

// ApplicantsAPIController binds applicant-facing HTTP requests to the
// artifact, match and application services.
type ApplicantsAPIController struct {
	Artifacts    *services.ArtifactService
	Matcher      *services.MatchService
	Applications *services.ApplicationService
}

func NewApplicantsAPIController(
	artifacts *services.ArtifactService,
	matcher *services.MatchService,
	applications *services.ApplicationService,
) *ApplicantsAPIController {
	return &ApplicantsAPIController{
		Artifacts:    artifacts,
		Matcher:      matcher,
		Applications: applications,
	}
}

// RegisterApplicant handles POST /applicants
func (c *ApplicantsAPIController) RegisterApplicant(ctx *gin.Context, body *models.NewApplicantInput) (*models.Applicant, error) {
	applicant, err := c.Artifacts.RegisterApplicant(ctx.Request.Context(), body)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return applicant, nil
}

// RetrieveProfile handles GET /applicants/:id
func (c *ApplicantsAPIController) RetrieveProfile(ctx *gin.Context, params *models.ApplicantParams) (*models.ApplicantProfile, error) {
	profile, err := c.Artifacts.Profile(ctx.Request.Context(), params.Id)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return profile, nil
}

// UploadArtifact handles POST /applicants/:id/artifacts
func (c *ApplicantsAPIController) UploadArtifact(ctx *gin.Context, body *models.UploadArtifactInput) (*models.ArtifactRef, error) {
	ref, err := c.Artifacts.Upload(ctx.Request.Context(), body.Id, body.Kind, body.FileName, body.Content, body.SkillTag)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return ref, nil
}

// DeleteArtifact handles DELETE /applicants/:id/artifacts
func (c *ApplicantsAPIController) DeleteArtifact(ctx *gin.Context, body *models.DeleteArtifactInput) error {
	err := c.Artifacts.Delete(ctx.Request.Context(), body.Id, body.Kind, body.URL, body.SkillTag)
	return mapServiceError(err)
}

// ListArchive handles GET /applicants/:id/archive
func (c *ApplicantsAPIController) ListArchive(ctx *gin.Context, params *models.ApplicantParams) ([]models.ArchivedArtifact, error) {
	recs, err := c.Artifacts.Archive(ctx.Request.Context(), params.Id)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return recs, nil
}

// SearchJobs handles GET /applicants/:id/jobs
func (c *ApplicantsAPIController) SearchJobs(ctx *gin.Context, params *models.SearchJobsParams) (*models.JobSearchResult, error) {
	result, err := c.Matcher.SearchJobs(ctx.Request.Context(), params.Id, params.Query)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return result, nil
}

// Apply handles POST /applicants/:id/applications
func (c *ApplicantsAPIController) Apply(ctx *gin.Context, body *models.ApplyInput) (*models.Application, error) {
	app, err := c.Applications.Apply(ctx.Request.Context(), body.Id, body.JobID)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return app, nil
}
