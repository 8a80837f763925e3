package classify

import "github.com/bitmark-inc/relief-api/schema"

const lowBattery = 20

// IsCritical decides the critical badge of a request. It is computed for
// display and never stored.
func IsCritical(r schema.HelpRequest) bool {
	if r.WaterLevel.AtLeast(schema.WaterWaistDeep) {
		return true
	}
	if r.Occupants.Any() && r.NumberOfPeople > 0 {
		return true
	}
	return r.PhoneBatteryPercent != nil && *r.PhoneBatteryPercent < lowBattery
}

// Facets are the display badges of a request card
type Facets struct {
	Critical      bool     `json:"critical"`
	Vulnerable    []string `json:"vulnerable,omitempty"`
	Needs         []string `json:"needs,omitempty"`
	LowBattery    bool     `json:"low_battery"`
	HasLocation   bool     `json:"has_location"`
	HoursToDanger *int     `json:"hours_to_danger,omitempty"`
}

func FacetsOf(r schema.HelpRequest) Facets {
	return Facets{
		Critical:      IsCritical(r),
		Vulnerable:    r.Occupants.Labels(),
		Needs:         r.Needs.Labels(),
		LowBattery:    r.PhoneBatteryPercent != nil && *r.PhoneBatteryPercent < lowBattery,
		HasLocation:   r.Location != nil,
		HoursToDanger: r.SafeForHours,
	}
}

// Stats are the dashboard counters
type Stats struct {
	TotalRequests    int `json:"total_requests"`
	VerifiedRequests int `json:"verified_requests"`
	ActionsTaken     int `json:"actions_taken"`
	CriticalRequests int `json:"critical_requests"`
	MissingPersons   int `json:"missing_persons"`
}

// Count derives the request counters of a snapshot
func Count(requests []schema.HelpRequest) Stats {
	var s Stats
	for _, r := range requests {
		s.TotalRequests++
		if r.IsVerified {
			s.VerifiedRequests++
		}
		if r.ActionTaken {
			s.ActionsTaken++
		}
		if IsCritical(r) && r.Status != schema.StatusClosed {
			s.CriticalRequests++
		}
	}
	return s
}
