package therapist

func floatPtr(v float64) *float64 { return &v }

// DemoCatalog returns the fixed fallback directory used when no live backend
// is configured. Order matters: the fallback engine maps its keyword bands to
// catalog positions and pads unmatched slots in this order.
func DemoCatalog() []Therapist {
	return []Therapist{
		{
			ID:                "demo-therapist-1",
			Name:              "Dr. Sarah Johnson",
			Location:          "San Francisco, CA",
			Specialties:       []string{"Anxiety", "Stress Management", "CBT"},
			InsuranceAccepted: []string{"Aetna", "Blue Cross", "Self-pay"},
			Availability:      "Weekdays 9am-5pm",
			ContactInfo:       "sarah.johnson@example.com",
			SessionFormats:    []string{"video", "in-person"},
			Languages:         []string{"English"},
			Rating:            floatPtr(4.8),
		},
		{
			ID:                "demo-therapist-2",
			Name:              "Dr. Michael Chen",
			Location:          "Oakland, CA",
			Specialties:       []string{"LGBTQ+ Affirming Therapy", "Identity", "Depression"},
			InsuranceAccepted: []string{"Kaiser", "Cigna", "Self-pay"},
			Availability:      "Evenings and weekends",
			ContactInfo:       "michael.chen@example.com",
			SessionFormats:    []string{"video", "phone"},
			Languages:         []string{"English", "Mandarin"},
			Rating:            floatPtr(4.9),
		},
		{
			ID:                "demo-therapist-3",
			Name:              "Dr. Emily Rodriguez",
			Location:          "Berkeley, CA",
			Specialties:       []string{"Family Therapy", "Couples Counseling", "Relationships"},
			InsuranceAccepted: []string{"United Healthcare", "Aetna", "Self-pay"},
			Availability:      "Weekdays 10am-7pm",
			ContactInfo:       "emily.rodriguez@example.com",
			SessionFormats:    []string{"in-person", "video", "flexible"},
			Languages:         []string{"English", "Spanish"},
			Rating:            floatPtr(4.7),
		},
	}
}
