package models

// SkillBadge marks one registered tag as certified or not. A tag is
// certified iff it has at least one certificate on file.
type SkillBadge struct {
	SkillTag  string `json:"skillTag"`
	Certified bool   `json:"certified"`
}

// ApplicantProfile is the external view of an applicant, including the badge
// derivation over the current credential set.
type ApplicantProfile struct {
	Id             string              `json:"id"`
	Name           string              `json:"name"`
	Email          string              `json:"email"`
	GithubLink     string              `json:"githubLink,omitempty"`
	ResumeURL      string              `json:"resumeURL,omitempty"`
	SkillScore     *float64            `json:"skillScore,omitempty"`
	Certifications map[string][]string `json:"certifications"`
	Badges         []SkillBadge        `json:"badges"`
}
