package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Application is the point-in-time snapshot stored when an applicant applies
// to a job. Keyed by (JobID, ApplicantID): re-applying overwrites, never
// duplicates. Later credential edits do not touch stored applications.
type Application struct {
	JobID       string `gorm:"column:job_id;primaryKey" json:"jobId"`
	ApplicantID string `gorm:"column:applicant_id;primaryKey" json:"applicantId"`

	Name           string              `json:"name"`
	Email          string              `json:"email"`
	GithubLink     string              `json:"githubLink,omitempty"`
	ResumeURL      string              `json:"resumeURL,omitempty"`
	Certifications CertificationSet    `gorm:"type:text" json:"certifications"`
	Submissions    SubmissionSnapshots `gorm:"type:text" json:"submissions"`

	// AppliedAt is stamped with the server clock at the point of write,
	// never client-supplied.
	AppliedAt time.Time `json:"appliedAt"`
}

// CertificationSet is the snapshot of an applicant's certificate map,
// skill tag to ordered artifact URLs. Stored as a JSON column.
type CertificationSet map[string][]string

func (c CertificationSet) Value() (driver.Value, error) {
	if c == nil {
		c = CertificationSet{}
	}
	return json.Marshal(c)
}

func (c *CertificationSet) Scan(value interface{}) error {
	return scanJSON(value, c)
}

// ScoreBreakdown mirrors the per-skill scores of a graded submission.
type ScoreBreakdown struct {
	CSS        float64 `json:"css"`
	HTML       float64 `json:"html"`
	JavaScript float64 `json:"javascript"`
}

// SubmissionSnapshot is one submission as frozen into an application.
type SubmissionSnapshot struct {
	Id            string         `json:"id"`
	DemoVideoLink string         `json:"demoVideoLink,omitempty"`
	LiveDemoLink  string         `json:"liveDemoLink,omitempty"`
	Scores        ScoreBreakdown `json:"scores"`
	Timestamp     *time.Time     `json:"timestamp,omitempty"`
}

// SubmissionSnapshots is stored as a JSON column.
type SubmissionSnapshots []SubmissionSnapshot

func (s SubmissionSnapshots) Value() (driver.Value, error) {
	if s == nil {
		s = SubmissionSnapshots{}
	}
	return json.Marshal(s)
}

func (s *SubmissionSnapshots) Scan(value interface{}) error {
	return scanJSON(value, s)
}

func scanJSON(value, dst interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("cannot scan %T into JSON column", value)
	}
}
