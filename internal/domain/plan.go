package domain

import "time"

// WarrantyPlan is a purchasable plan tier.
type WarrantyPlan struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	DurationMonths int       `json:"durationMonths"`
	Price          float64   `json:"price"`
	Features       []string  `json:"features"`
	ServiceVisits  int       `json:"serviceVisits"`
	IsPopular      bool      `json:"isPopular"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type PlanStatus string

const (
	PlanActive    PlanStatus = "active"
	PlanExpired   PlanStatus = "expired"
	PlanCancelled PlanStatus = "cancelled"
)

// UserPlan is a purchased warranty plan instance bound to a user and a time
// window. The stored Status is never transitioned by a background process;
// readers derive expiry from EndDate instead (see EffectiveStatus).
type UserPlan struct {
	ID                 int64      `json:"id"`
	UserID             int64      `json:"userId"`
	PlanID             int64      `json:"planId"`
	PlanName           string     `json:"planName"`
	StartDate          time.Time  `json:"startDate"`
	EndDate            time.Time  `json:"endDate"`
	Status             PlanStatus `json:"status"`
	PurchaseAmount     float64    `json:"purchaseAmount"`
	ServiceVisitsUsed  int        `json:"serviceVisitsUsed"`
	ServiceVisitsTotal int        `json:"serviceVisitsTotal"`
	ContractID         string     `json:"contractId"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// EffectiveStatus reports the plan status with expiry derived at read time.
// A record still stored as active past its end date reads as expired.
func (p UserPlan) EffectiveStatus(now time.Time) PlanStatus {
	if p.Status == PlanActive && now.After(p.EndDate) {
		return PlanExpired
	}
	return p.Status
}
