package warranty

import "errors"

var (
	ErrPlanNotFound = errors.New("warranty plan not found")
	ErrValidation   = errors.New("validation error")
	ErrForbidden    = errors.New("plan belongs to another user")
	ErrNotActive    = errors.New("plan is not active")
)
