package domain

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrParentTaskNotFound = errors.New("parent task not found")
	ErrTestPeriodNotFound = errors.New("test period not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidStatus      = errors.New("invalid task status")
	ErrInvalidDateRange   = errors.New("end date before start date")
	ErrTestPeriodActive   = errors.New("test period is not soft-deleted")
	ErrTestPeriodDeleted  = errors.New("test period is deleted")
	ErrNoStudentsInGrade  = errors.New("no students in grade")
)
