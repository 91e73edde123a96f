package servicerequest

import (
	"time"

	"kitchencare/internal/domain"
)

// Appliance is one of the serviceable appliance categories shown during
// request creation.
type Appliance struct {
	ID   domain.ServiceType `json:"id"`
	Name string             `json:"name"`
	Icon string             `json:"icon"`
}

var Appliances = []Appliance{
	{ID: domain.ServiceChimney, Name: "Kitchen Chimney", Icon: "chimney-icon.png"},
	{ID: domain.ServiceHob, Name: "Built-in Hob", Icon: "hob-icon.png"},
	{ID: domain.ServiceMicrowave, Name: "Microwave/Oven", Icon: "microwave-icon.png"},
	{ID: domain.ServiceCooktop, Name: "Cooktop", Icon: "cooktop-icon.png"},
}

// TimeSlots are the bookable visit windows.
var TimeSlots = []string{
	"9:00 AM - 12:00 PM",
	"12:00 PM - 3:00 PM",
	"3:00 PM - 6:00 PM",
}

// ServiceCharges is the visit fee per appliance type, applied when the
// request is not covered by a warranty plan.
var ServiceCharges = map[domain.ServiceType]float64{
	domain.ServiceChimney:   499,
	domain.ServiceHob:       599,
	domain.ServiceMicrowave: 699,
	domain.ServiceCooktop:   549,
}

const DefaultServiceCharge = 499

// IssuesByAppliance lists the common issues offered per appliance type.
// Every list ends with "Other" as the free-form escape hatch.
var IssuesByAppliance = map[domain.ServiceType][]string{
	domain.ServiceChimney: {
		"Not working",
		"Low suction power",
		"Unusual noise",
		"Filter cleaning/replacement",
		"Control panel issues",
		"Other",
	},
	domain.ServiceHob: {
		"Burner not igniting",
		"Gas leakage",
		"Flame issues",
		"Control knob problems",
		"Glass surface damage",
		"Other",
	},
	domain.ServiceMicrowave: {
		"Not heating",
		"Unusual noise",
		"Door not closing properly",
		"Display not working",
		"Interior light issues",
		"Other",
	},
	domain.ServiceCooktop: {
		"Element not heating",
		"Temperature control issues",
		"Surface damage",
		"Power problems",
		"Control panel issues",
		"Other",
	},
}

// BookingWindow reports the allowed preferred-date range: tomorrow through
// 14 days out.
func BookingWindow(now time.Time) (min, max time.Time) {
	return now.AddDate(0, 0, 1), now.AddDate(0, 0, 14)
}

func validTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
