package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/skillbridge/job-register/pkg/job_register/helpers/util"
	"github.com/skillbridge/job-register/pkg/job_register/models"
	"github.com/skillbridge/job-register/pkg/job_register/repositories"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

// MatchService filters job postings against an applicant's score and a
// free-text query. Read-only: no posting is ever mutated here.
type MatchService struct {
	applicants repositories.ApplicantRepository
	jobs       repositories.JobRepository
	log        *zap.Logger
}

func NewMatchService(applicants repositories.ApplicantRepository, jobs repositories.JobRepository, log *zap.Logger) *MatchService {
	return &MatchService{applicants: applicants, jobs: jobs, log: log}
}

var fold = cases.Fold()

// SearchJobs returns both views over the text-filtered posting set: AllJobs
// (text filter only) and EligibleJobs (score >= threshold on top, a tie is
// eligible). An applicant without a computed score gets an empty eligible
// set, not an error.
func (s *MatchService) SearchJobs(ctx context.Context, applicantID, query string) (*models.JobSearchResult, error) {
	applicant, err := s.applicants.GetApplicantByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, fmt.Errorf("%w: %s", ErrApplicantNotFound, applicantID)
	}

	jobs, err := s.jobs.AllJobs(ctx)
	if err != nil {
		return nil, err
	}

	needle := fold.String(strings.TrimSpace(query))
	result := &models.JobSearchResult{
		EligibleJobs: []models.JobSummary{},
		AllJobs:      []models.JobSummary{},
	}
	for i := range jobs {
		job := &jobs[i]
		if !matchesQuery(job, needle) {
			continue
		}
		summary := util.ToJobSummary(job)
		result.AllJobs = append(result.AllJobs, summary)
		if applicant.SkillScore != nil && *applicant.SkillScore >= job.Threshold {
			result.EligibleJobs = append(result.EligibleJobs, summary)
		}
	}

	s.log.Debug("job search",
		zap.String("applicant", applicantID),
		zap.String("query", query),
		zap.Int("matching", len(result.AllJobs)),
		zap.Int("eligible", len(result.EligibleJobs)))
	return result, nil
}

// matchesQuery is the text filter: a case-folded substring match on title or
// description. An empty query passes everything.
func matchesQuery(job *models.JobPosting, foldedQuery string) bool {
	if foldedQuery == "" {
		return true
	}
	return strings.Contains(fold.String(job.Title), foldedQuery) ||
		strings.Contains(fold.String(job.Description), foldedQuery)
}
