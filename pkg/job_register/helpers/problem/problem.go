package problem

import "fmt"

type InvalidParam struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// APIError implements error + Problem Details (RFC 7807).
type APIError struct {
	Title         string         `json:"title"`
	Status        int            `json:"status"`
	Detail        string         `json:"detail,omitempty"`
	InvalidParams []InvalidParam `json:"invalidParams,omitempty"`
}

func (e APIError) Error() string { return e.Title }

func NewBadRequest(target, detail string, params ...InvalidParam) APIError {
	return APIError{
		Title:         "Bad Request",
		Status:        400,
		Detail:        withTarget(target, detail),
		InvalidParams: params,
	}
}

func NewNotFound(target, detail string) APIError {
	return APIError{
		Title:  "Not Found",
		Status: 404,
		Detail: withTarget(target, detail),
	}
}

func NewForbidden(target, detail string) APIError {
	return APIError{
		Title:  "Forbidden",
		Status: 403,
		Detail: withTarget(target, detail),
	}
}

func NewInternalServerError(detail string) APIError {
	return APIError{
		Title:  "Internal Server Error",
		Status: 500,
		Detail: detail,
	}
}

// NewDependencyFailure reports a failed call to an external collaborator
// (blob store, archive ledger). Operation and target stay in the detail so
// the caller can retry manually; the core never retries.
func NewDependencyFailure(op, target, detail string) APIError {
	return APIError{
		Title:  "Upstream Dependency Failure",
		Status: 502,
		Detail: fmt.Sprintf("%s %s: %s", op, target, detail),
	}
}

func withTarget(target, detail string) string {
	if target == "" {
		return detail
	}
	return fmt.Sprintf("%s: %s", target, detail)
}
