package models

import "time"

// JobPosting is a vacancy created by an employer. Threshold is the minimum
// applicant score for eligibility, set once at creation; CompanyName is
// denormalized from the employer document at that moment.
type JobPosting struct {
	Id          string    `gorm:"column:id;primaryKey" json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	EmployerID  string    `gorm:"index" json:"employerId"`
	CompanyName string    `json:"companyName"`
	Threshold   float64   `json:"threshold"`
	CreatedAt   time.Time `json:"createdAt"`
}

// JobSummary is the external view of a posting.
type JobSummary struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	CompanyName string    `json:"companyName"`
	Threshold   float64   `json:"threshold"`
	CreatedAt   time.Time `json:"createdAt"`
}

// JobSearchResult carries the two views over the same text-filtered set:
// AllJobs has only the text filter applied, EligibleJobs additionally the
// score filter. EligibleJobs is always a subset of AllJobs.
type JobSearchResult struct {
	EligibleJobs []JobSummary `json:"eligibleJobs"`
	AllJobs      []JobSummary `json:"allJobs"`
}
