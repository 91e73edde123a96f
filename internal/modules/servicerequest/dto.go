package servicerequest

import (
	"time"

	"kitchencare/internal/domain"
)

type CreateRequestRequest struct {
	PlanID            int64              `form:"planId" binding:"required"`
	ServiceType       domain.ServiceType `form:"serviceType" binding:"required"`
	Description       string             `form:"description" binding:"required"`
	PreferredDate     time.Time          `form:"preferredDate" binding:"required" time_format:"2006-01-02"`
	PreferredTimeSlot string             `form:"preferredTimeSlot" binding:"required"`
}

type UpdateStatusRequest struct {
	Status domain.ServiceRequestStatus `json:"status" binding:"required"`
}

type AssignTechnicianRequest struct {
	TechnicianID int64 `json:"technicianId" binding:"required"`
}

// ImageUpload is a decoded multipart file ready for the blob store.
type ImageUpload struct {
	Name     string
	Content  []byte
	MimeType string
}

// TaxonomyResponse bundles the static data the request form needs.
type TaxonomyResponse struct {
	Appliances        []Appliance                     `json:"appliances"`
	IssuesByAppliance map[domain.ServiceType][]string `json:"issuesByAppliance"`
	TimeSlots         []string                        `json:"timeSlots"`
	ServiceCharges    map[domain.ServiceType]float64  `json:"serviceCharges"`
}
