package domain

import "time"

type CoveragePeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type ClientInfo struct {
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

type KitchenInfo struct {
	KitchenType      string    `json:"kitchenType"`
	InstallationDate time.Time `json:"installationDate"`
	Size             string    `json:"size"`
	ImageURL         string    `json:"imageUrl,omitempty"`
}

// DigitalContract is the legal agreement generated once per plan purchase.
// Acceptance sets the terms flag and both signature dates in a single update;
// separate client and company signing is not modeled.
type DigitalContract struct {
	ID                   int64          `json:"id"`
	UserID               int64          `json:"userId"`
	PlanID               int64          `json:"planId"`
	AgreementNumber      string         `json:"agreementNumber"`
	IssueDate            time.Time      `json:"issueDate"`
	PlanType             string         `json:"planType"`
	CoveragePeriod       CoveragePeriod `json:"coveragePeriod"`
	AmountPaid           float64        `json:"amountPaid"`
	ClientInfo           ClientInfo     `json:"clientInfo"`
	KitchenDetails       KitchenInfo    `json:"kitchenDetails"`
	CoverageDetails      []string       `json:"coverageDetails"`
	TermsAccepted        bool           `json:"termsAccepted"`
	ClientSignatureDate  *time.Time     `json:"clientSignatureDate,omitempty"`
	CompanySignatureDate *time.Time     `json:"companySignatureDate,omitempty"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}
