package warranty

import "kitchencare/internal/domain"

type PurchasePlanRequest struct {
	PlanID int64 `json:"planId" binding:"required"`
}

// UserPlanView reports the stored record together with the status derived
// from the end date at read time.
type UserPlanView struct {
	domain.UserPlan
	EffectiveStatus domain.PlanStatus `json:"effectiveStatus"`
}
