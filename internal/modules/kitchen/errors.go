package kitchen

import "errors"

var (
	ErrNotFound   = errors.New("kitchen details not found")
	ErrValidation = errors.New("validation error")
)
