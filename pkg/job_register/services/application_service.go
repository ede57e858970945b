package services

import (
	"context"
	"fmt"
	"time"

	"github.com/skillbridge/job-register/pkg/job_register/helpers/util"
	"github.com/skillbridge/job-register/pkg/job_register/models"
	"github.com/skillbridge/job-register/pkg/job_register/repositories"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ApplicationService assembles and persists the immutable application
// snapshot for a (job, applicant) pair.
type ApplicationService struct {
	applicants repositories.ApplicantRepository
	jobs       repositories.JobRepository
	skills     *models.SkillRegistry
	log        *zap.Logger
}

func NewApplicationService(
	applicants repositories.ApplicantRepository,
	jobs repositories.JobRepository,
	skills *models.SkillRegistry,
	log *zap.Logger,
) *ApplicationService {
	return &ApplicationService{applicants: applicants, jobs: jobs, skills: skills, log: log}
}

// Apply snapshots the applicant's current credentials and submissions into
// an application keyed by (jobID, applicantID) and upserts it. Calling it
// again overwrites the stored record with the newer snapshot; no duplicate
// can exist and nothing counts how often an applicant applied.
//
// The credential and submission reads are two separate queries without a
// transactional snapshot; a concurrent credential edit may land in one and
// not the other. Accepted best-effort window.
func (s *ApplicationService) Apply(ctx context.Context, applicantID, jobID string) (*models.Application, error) {
	applicant, err := s.applicants.GetApplicantByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, fmt.Errorf("%w: %s", ErrApplicantNotFound, applicantID)
	}

	job, err := s.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}

	var (
		certs []models.Certification
		subs  []models.Submission
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		certs, err = s.applicants.GetCertifications(gctx, applicantID)
		return err
	})
	g.Go(func() error {
		var err error
		subs, err = s.applicants.GetSubmissions(gctx, applicantID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	app := &models.Application{
		JobID:          jobID,
		ApplicantID:    applicantID,
		Name:           applicant.Name,
		Email:          applicant.Email,
		GithubLink:     applicant.GithubLink,
		ResumeURL:      applicant.ResumeURL,
		Certifications: util.ToCertificationSet(certs, s.skills),
		Submissions:    util.ToSubmissionSnapshots(subs),
		AppliedAt:      time.Now().UTC(),
	}

	if err := s.jobs.UpsertApplication(ctx, app); err != nil {
		return nil, err
	}

	s.log.Info("application stored",
		zap.String("job", jobID),
		zap.String("applicant", applicantID),
		zap.Int("submissions", len(app.Submissions)))
	return app, nil
}
