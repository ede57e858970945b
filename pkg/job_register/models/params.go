package models

// ApplicantParams addresses a single applicant.
type ApplicantParams struct {
	Id string `path:"id" validate:"required"`
}

// NewApplicantInput registers a profile for a provider-issued identity.
type NewApplicantInput struct {
	Id         string `json:"id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	GithubLink string `json:"githubLink,omitempty"`
}

// NewEmployerInput registers an employer profile.
type NewEmployerInput struct {
	Id          string `json:"id" binding:"required"`
	CompanyName string `json:"companyName" binding:"required"`
	Email       string `json:"email,omitempty"`
}

// UploadArtifactInput carries an artifact upload. Content travels base64 in
// JSON. SkillTag is required iff Kind is "certificate".
type UploadArtifactInput struct {
	Id       string `path:"id"`
	Kind     string `json:"kind" binding:"required"`
	FileName string `json:"fileName" binding:"required"`
	Content  []byte `json:"content" binding:"required"`
	SkillTag string `json:"skillTag,omitempty"`
}

// DeleteArtifactInput addresses one artifact reference for a ledgered delete.
type DeleteArtifactInput struct {
	Id       string `path:"id"`
	Kind     string `json:"kind" binding:"required"`
	URL      string `json:"url" binding:"required"`
	SkillTag string `json:"skillTag,omitempty"`
}

// ArtifactRef is returned from a successful upload.
type ArtifactRef struct {
	Kind     string `json:"kind"`
	SkillTag string `json:"skillTag,omitempty"`
	URL      string `json:"url"`
}

// SearchJobsParams feeds the matcher. An empty query passes all jobs.
type SearchJobsParams struct {
	Id    string `path:"id"`
	Query string `query:"query"`
}

// ApplyInput applies the addressed applicant to one job.
type ApplyInput struct {
	Id    string `path:"id"`
	JobID string `json:"jobId" binding:"required"`
}

// CreateJobInput creates a posting for the addressed employer. Threshold is
// set once here and never changed afterwards.
type CreateJobInput struct {
	Id          string  `path:"id"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Threshold   float64 `json:"threshold" binding:"min=0,max=100"`
}

// EmployerParams addresses a single employer.
type EmployerParams struct {
	Id string `path:"id" validate:"required"`
}

// JobApplicationsParams addresses the application set of one posting.
type JobApplicationsParams struct {
	Id    string `path:"id"`
	JobID string `path:"jobId"`
}
