package util

import (
	"github.com/skillbridge/job-register/pkg/job_register/models"
)

func ToJobSummary(job *models.JobPosting) models.JobSummary {
	return models.JobSummary{
		Id:          job.Id,
		Title:       job.Title,
		Description: job.Description,
		Location:    job.Location,
		CompanyName: job.CompanyName,
		Threshold:   job.Threshold,
		CreatedAt:   job.CreatedAt,
	}
}

// ToCertificationSet groups certificate rows into the tag-to-URLs map used
// by profile views and application snapshots. Every registered tag is
// present, with an empty slice when nothing is filed under it.
func ToCertificationSet(certs []models.Certification, skills *models.SkillRegistry) models.CertificationSet {
	set := make(models.CertificationSet, len(skills.Tags()))
	for _, tag := range skills.Tags() {
		set[tag] = []string{}
	}
	for _, cert := range certs {
		set[cert.SkillTag] = append(set[cert.SkillTag], cert.URL)
	}
	return set
}

func ToSubmissionSnapshots(subs []models.Submission) models.SubmissionSnapshots {
	out := make(models.SubmissionSnapshots, 0, len(subs))
	for _, sub := range subs {
		snap := models.SubmissionSnapshot{
			Id:            sub.Id,
			DemoVideoLink: sub.DemoVideoLink,
			LiveDemoLink:  sub.LiveDemoLink,
			Scores: models.ScoreBreakdown{
				CSS:        sub.CSSScore,
				HTML:       sub.HTMLScore,
				JavaScript: sub.JSScore,
			},
		}
		if !sub.SubmittedAt.IsZero() {
			ts := sub.SubmittedAt
			snap.Timestamp = &ts
		}
		out = append(out, snap)
	}
	return out
}
