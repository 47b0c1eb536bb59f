package services

import "errors"

// Sentinel errors mapped to HTTP statuses by the handler layer.
var (
	// ErrInvalidCredentials covers both unknown student IDs and wrong
	// PINs so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound     = errors.New("user not found")
	ErrBuildingNotFound = errors.New("building not found")
	ErrReportNotFound   = errors.New("report not found")

	// ErrStudentIDExhausted is returned when ID generation keeps
	// colliding with existing accounts.
	ErrStudentIDExhausted = errors.New("could not allocate a unique student id")

	// ErrForbidden is returned when a caller targets a record they do
	// not own.
	ErrForbidden = errors.New("forbidden")
)
