package services

import (
	"errors"
	"fmt"
)

var (
	ErrApplicantNotFound = errors.New("applicant not found")
	ErrEmployerNotFound  = errors.New("employer not found")
	ErrJobNotFound       = errors.New("job posting not found")

	// ErrKindMismatch means the skillTag/kind combination is invalid:
	// a resume with a tag, or a certificate without one. Rejected before
	// any I/O happens.
	ErrKindMismatch = errors.New("skill tag does not match artifact kind")

	// ErrUnknownSkillTag means the tag is not in the registry.
	ErrUnknownSkillTag = errors.New("unknown skill tag")

	// ErrNotJobOwner means an employer addressed a posting owned by
	// someone else.
	ErrNotJobOwner = errors.New("job posting belongs to another employer")
)

// Dependency failure operations.
const (
	OpUpload  = "upload"
	OpArchive = "archive"
	OpDelete  = "delete"
)

// DependencyError wraps a failed call to an external collaborator with the
// operation and target needed for a manual retry.
type DependencyError struct {
	Op     string
	Target string
	Err    error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }
