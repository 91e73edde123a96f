package servicerequest

import "errors"

var (
	ErrRequestNotFound    = errors.New("service request not found")
	ErrPlanNotFound       = errors.New("warranty plan not found")
	ErrPlanNotActive      = errors.New("warranty plan is not active")
	ErrTechnicianNotFound = errors.New("technician not found")
	ErrNoVisitsLeft       = errors.New("no service visits remaining")
	ErrForbidden          = errors.New("request belongs to another user")
	ErrValidation         = errors.New("validation error")
	ErrInvalidTransition  = errors.New("invalid status transition")
)
