package warranty

// Tier is a fixed plan offering. The coverage, per-appliance issue lists and
// exclusions are static configuration shown during plan selection, not
// computed from anything.
type Tier struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	Price          float64             `json:"price"`
	DurationMonths int                 `json:"durationMonths"`
	ServiceVisits  int                 `json:"serviceVisits"`
	Coverage       []string            `json:"coverage"`
	Appliances     map[string][]string `json:"appliances"`
	Exclusions     []string            `json:"exclusions"`
}

var Tiers = []Tier{
	{
		ID:             "1year",
		Title:          "1 Year Standard",
		Price:          2999,
		DurationMonths: 12,
		ServiceVisits:  2,
		Coverage: []string{
			"Parts and Labor for repairs",
			"Technical phone support",
			"2 service visits per year",
			"Emergency repairs (standard response)",
			"1 preventive maintenance check-up",
		},
		Appliances: map[string][]string{
			"chimney":   {"Motor issues", "Electrical components", "Filter replacements"},
			"hob":       {"Burner problems", "Gas leakage issues", "Ignition failures"},
			"microwave": {"Heating elements", "Electronic controls", "Door mechanisms"},
			"cooktop":   {"Surface damage (non-cosmetic)", "Heating elements", "Control panel issues"},
		},
		Exclusions: []string{
			"Cosmetic damage",
			"Unauthorized repairs",
			"Normal wear and tear",
			"Damage from misuse or accidents",
		},
	},
	{
		ID:             "3year",
		Title:          "3 Year Premium",
		Price:          7999,
		DurationMonths: 36,
		ServiceVisits:  12,
		Coverage: []string{
			"All parts and labor for repairs",
			"Priority technical support",
			"4 service visits per year",
			"Emergency repairs (24-hour response)",
			"Annual preventive maintenance",
			"One-time replacement if unrepairable",
		},
		Appliances: map[string][]string{
			"chimney":   {"Motor issues", "Electrical components", "Filter replacements", "Control panel issues"},
			"hob":       {"Burner problems", "Gas leakage issues", "Ignition failures", "Control knob replacements"},
			"microwave": {"Heating elements", "Electronic controls", "Door mechanisms", "Interior lighting"},
			"cooktop":   {"Surface damage (non-cosmetic)", "Heating elements", "Temperature controls", "Electrical components"},
		},
		Exclusions: []string{
			"Cosmetic damage",
			"Unauthorized repairs",
			"Damage from misuse or accidents",
		},
	},
	{
		ID:             "5year",
		Title:          "5 Year Elite",
		Price:          12999,
		DurationMonths: 60,
		ServiceVisits:  60,
		Coverage: []string{
			"Complete parts and labor coverage",
			"VIP technical support",
			"Unlimited service visits",
			"Emergency repairs (12-hour response)",
			"Bi-annual preventive maintenance",
			"One-time replacement if unrepairable",
			"Extended hours service availability",
		},
		Appliances: map[string][]string{
			"chimney":   {"Full coverage for all components", "Annual filter replacement included"},
			"hob":       {"Full coverage for all components", "Annual safety inspection included"},
			"microwave": {"Full coverage for all components", "Annual calibration included"},
			"cooktop":   {"Full coverage for all components", "Annual inspection included"},
		},
		Exclusions: []string{
			"Intentional damage",
			"Unauthorized modifications",
		},
	},
	{
		ID:             "10year",
		Title:          "10 Year Ultimate",
		Price:          19999,
		DurationMonths: 120,
		ServiceVisits:  120,
		Coverage: []string{
			"Lifetime parts and labor coverage",
			"Dedicated support representative",
			"Unlimited service visits",
			"Emergency repairs (6-hour response)",
			"Quarterly preventive maintenance",
			"Two-time replacement if unrepairable",
			"24/7 service availability",
			"Coverage transferable to new owner",
		},
		Appliances: map[string][]string{
			"chimney":   {"Complete coverage with no exceptions", "Bi-annual filter replacement included"},
			"hob":       {"Complete coverage with no exceptions", "Bi-annual safety inspection included"},
			"microwave": {"Complete coverage with no exceptions", "Bi-annual calibration included"},
			"cooktop":   {"Complete coverage with no exceptions", "Bi-annual inspection included"},
		},
		Exclusions: []string{
			"Intentional damage only",
		},
	},
}
