package contract

import "errors"

var (
	ErrContractNotFound = errors.New("contract not found")
	ErrPlanNotFound     = errors.New("warranty plan not found")
	ErrKitchenRequired  = errors.New("kitchen details required before contract generation")
	ErrForbidden        = errors.New("contract belongs to another user")
	ErrAlreadyAccepted  = errors.New("contract already accepted")
)
