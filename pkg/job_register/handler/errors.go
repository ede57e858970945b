package handler

import (
	"errors"

	problem "github.com/skillbridge/job-register/pkg/job_register/helpers/problem"
	"github.com/skillbridge/job-register/pkg/job_register/services"
)

// mapServiceError translates service sentinels into problem+json responses.
// Anything unrecognized falls through to the tonic error hook as a 500.
func mapServiceError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, services.ErrApplicantNotFound):
		return problem.NewNotFound("applicant", err.Error())
	case errors.Is(err, services.ErrEmployerNotFound):
		return problem.NewNotFound("employer", err.Error())
	case errors.Is(err, services.ErrJobNotFound):
		return problem.NewNotFound("job", err.Error())
	case errors.Is(err, services.ErrNotJobOwner):
		return problem.NewForbidden("job", err.Error())
	case errors.Is(err, services.ErrKindMismatch), errors.Is(err, services.ErrUnknownSkillTag):
		return problem.NewBadRequest("artifact", err.Error())
	}

	var dep *services.DependencyError
	if errors.As(err, &dep) {
		return problem.NewDependencyFailure(dep.Op, dep.Target, dep.Err.Error())
	}
	return err
}
