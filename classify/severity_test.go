package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relief-api/schema"
)

func percent(v int) *int {
	return &v
}

func TestIsCritical(t *testing.T) {
	testCases := []struct {
		name    string
		request schema.HelpRequest
		expect  bool
	}{
		{"nothing set", schema.HelpRequest{NumberOfPeople: 1}, false},
		{"knee deep", schema.HelpRequest{WaterLevel: schema.WaterKneeDeep}, false},
		{"waist deep", schema.HelpRequest{WaterLevel: schema.WaterWaistDeep}, true},
		{"over head", schema.HelpRequest{WaterLevel: schema.WaterOverHead}, true},
		{"children present", schema.HelpRequest{NumberOfPeople: 2, Occupants: schema.Occupants{HasChildren: true}}, true},
		{"flag without people", schema.HelpRequest{Occupants: schema.Occupants{HasDisabled: true}}, false},
		{"battery low", schema.HelpRequest{PhoneBatteryPercent: percent(19)}, true},
		{"battery at threshold", schema.HelpRequest{PhoneBatteryPercent: percent(20)}, false},
		{"battery empty", schema.HelpRequest{PhoneBatteryPercent: percent(0)}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, IsCritical(tc.request))
		})
	}
}

func TestFacetsOf(t *testing.T) {
	hours := 4
	r := schema.HelpRequest{
		NumberOfPeople:      2,
		Occupants:           schema.Occupants{HasChildren: true, HasMedicalNeeds: true},
		Needs:               schema.ResourceNeeds{NeedsWater: true},
		PhoneBatteryPercent: percent(12),
		SafeForHours:        &hours,
	}

	f := FacetsOf(r)
	assert.True(t, f.Critical)
	assert.True(t, f.LowBattery)
	assert.False(t, f.HasLocation)
	assert.Equal(t, []string{"children", "medical"}, f.Vulnerable)
	assert.Equal(t, []string{"water"}, f.Needs)
	assert.Equal(t, &hours, f.HoursToDanger)
}

func TestCount(t *testing.T) {
	requests := []schema.HelpRequest{
		{Status: schema.StatusOpen, IsVerified: true, WaterLevel: schema.WaterChestDeep},
		{Status: schema.StatusClosed, ActionTaken: true, WaterLevel: schema.WaterChestDeep},
		{Status: schema.StatusInProgress, IsVerified: true, ActionTaken: true},
	}

	assert.Equal(t, Stats{
		TotalRequests:    3,
		VerifiedRequests: 2,
		ActionsTaken:     2,
		CriticalRequests: 1,
	}, Count(requests))
}
