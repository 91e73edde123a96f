package domain

import "time"

type ServiceType string

const (
	ServiceChimney    ServiceType = "chimney"
	ServiceHob        ServiceType = "hob"
	ServiceMicrowave  ServiceType = "microwave"
	ServiceCooktop    ServiceType = "cooktop"
	ServicePlumbing   ServiceType = "plumbing"
	ServiceCabinet    ServiceType = "cabinet"
	ServiceAppliance  ServiceType = "appliance"
	ServiceElectrical ServiceType = "electrical"
	ServiceOther      ServiceType = "other"
)

type ServiceRequestStatus string

const (
	RequestPending   ServiceRequestStatus = "pending"
	RequestScheduled ServiceRequestStatus = "scheduled"
	RequestCompleted ServiceRequestStatus = "completed"
	RequestCancelled ServiceRequestStatus = "cancelled"
)

// ServiceRequest consumes one service visit from the referenced user plan at
// creation time. Cancelling a request does not refund the visit.
type ServiceRequest struct {
	ID                int64                `json:"id"`
	UserID            int64                `json:"userId"`
	PlanID            int64                `json:"planId"`
	ServiceType       ServiceType          `json:"serviceType"`
	Description       string               `json:"description"`
	ImageURLs         []string             `json:"imageUrls"`
	PreferredDate     time.Time            `json:"preferredDate"`
	PreferredTimeSlot string               `json:"preferredTimeSlot"`
	Status            ServiceRequestStatus `json:"status"`
	TechnicianID      *int64               `json:"technicianId,omitempty"`
	TechnicianName    string               `json:"technicianName,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

type Technician struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Specialization    string    `json:"specialization"`
	PhoneNumber       string    `json:"phoneNumber"`
	Email             string    `json:"email"`
	IsAvailable       bool      `json:"isAvailable"`
	Rating            float64   `json:"rating"`
	CompletedServices int       `json:"completedServices"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
