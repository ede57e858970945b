package models

import "time"

// Applicant is the profile document for a job seeker. The Id is issued by the
// identity provider and treated as an opaque, already-authenticated string.
type Applicant struct {
	Id         string `gorm:"column:id;primaryKey" json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	GithubLink string `json:"githubLink,omitempty"`
	ResumeURL  string `json:"resumeURL,omitempty"`

	// SkillScore is the externally computed average score. nil means the
	// score has not been computed yet; the matcher then yields no eligible
	// jobs instead of failing.
	SkillScore *float64 `gorm:"column:skill_average" json:"skillScore,omitempty"`

	Certifications []Certification `gorm:"foreignKey:ApplicantID" json:"certifications,omitempty"`
}

// Certification is a single certificate artifact filed under one skill tag.
// One row per artifact: append and remove are single-row statements, so
// concurrent uploads/deletes on the same tag cannot lose updates the way a
// whole-map overwrite would.
type Certification struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ApplicantID string    `gorm:"index:idx_certifications_applicant_tag" json:"applicantId"`
	SkillTag    string    `gorm:"index:idx_certifications_applicant_tag" json:"skillTag"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Submission is a graded assignment record. This service only reads them to
// snapshot into applications; grading lives elsewhere.
type Submission struct {
	Id            string    `gorm:"column:id;primaryKey" json:"id"`
	ApplicantID   string    `gorm:"index" json:"applicantId"`
	DemoVideoLink string    `json:"demoVideoLink,omitempty"`
	LiveDemoLink  string    `json:"liveDemoLink,omitempty"`
	CSSScore      float64   `gorm:"column:css_score" json:"cssScore"`
	HTMLScore     float64   `gorm:"column:html_score" json:"htmlScore"`
	JSScore       float64   `gorm:"column:js_score" json:"jsScore"`
	SubmittedAt   time.Time `json:"submittedAt"`
}
