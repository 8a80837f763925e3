package geo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relief-api/classify"
	"github.com/bitmark-inc/relief-api/schema"
)

func located(id string, t schema.EmergencyType, lat, lng float64) schema.HelpRequest {
	return schema.HelpRequest{
		ID:            uuid.MustParse(id),
		Title:         "Need help",
		EmergencyType: t,
		Status:        schema.StatusOpen,
		Location:      &schema.Location{Latitude: lat, Longitude: lng},
	}
}

func TestMarkerColor(t *testing.T) {
	testCases := []struct {
		kind   schema.EmergencyType
		expect string
	}{
		{schema.EmergencyTrappedByFlood, "#dc2626"},
		{schema.EmergencyEvacuationNeeded, "#dc2626"},
		{schema.EmergencyMedical, "#ea580c"},
		{schema.EmergencyFoodWaterNeeded, "#f59e0b"},
		{schema.EmergencyMissingPerson, "#7c3aed"},
		{schema.EmergencyOther, "#6b7280"},
		{"", "#6b7280"},
		{"landslide", "#6b7280"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expect, MarkerColor(tc.kind), string(tc.kind))
	}
}

func TestBuildMarkers(t *testing.T) {
	r := located("a0000000-0000-0000-0000-000000000000", schema.EmergencyMedical, 6.9, 79.9)
	r.IsVerified = true
	r.Description = strings.Repeat("x", 160)
	r.NumberOfPeople = 4
	r.WaterLevel = schema.WaterChestDeep
	r.Area = &schema.Area{Name: "Kaduwela", District: "Colombo"}

	markers := BuildMarkers([]schema.HelpRequest{r})
	if !assert.Len(t, markers, 1) {
		return
	}

	m := markers[0]
	assert.Equal(t, "a0000000-0000-0000-0000-000000000000", m.RequestID)
	assert.Equal(t, ColorOrange, m.Color)
	assert.True(t, m.Verified)
	assert.True(t, m.Critical)
	assert.Equal(t, strings.Repeat("x", 150)+"...", m.Popup.Summary)
	assert.Equal(t, "MEDICAL EMERGENCY", m.Popup.Emergency)
	assert.Equal(t, "CHEST DEEP", m.Popup.WaterLevel)
	assert.Equal(t, 4, m.Popup.People)
	assert.Equal(t, "Kaduwela, Colombo", m.Popup.Area)
	assert.Nil(t, m.Popup.Battery)
}

func TestSummaryKeepsShortText(t *testing.T) {
	assert.Equal(t, "water up to the roof", summarize("water up to the roof"))
	assert.Equal(t, strings.Repeat("අ", 150), summarize(strings.Repeat("අ", 150)))
}

// A request without gps stays in the list but never reaches the map.
func TestRequestWithoutLocation(t *testing.T) {
	withGPS := located("a0000000-0000-0000-0000-000000000000", schema.EmergencyTrappedByFlood, 6.9, 79.9)
	withoutGPS := schema.HelpRequest{ID: uuid.MustParse("b0000000-0000-0000-0000-000000000000"), Status: schema.StatusOpen}
	snapshot := []schema.HelpRequest{withGPS, withoutGPS}

	assert.Len(t, classify.FilterRequests(snapshot, classify.RequestFilter{}), 2)

	markers := BuildMarkers(classify.FilterForMap(snapshot, classify.MapFilter{}))
	assert.Len(t, markers, 1)
	assert.Equal(t, withGPS.ID.String(), markers[0].RequestID)

	// even unfiltered input is safe
	assert.Len(t, BuildMarkers(snapshot), 1)
}

func TestFitKeepsViewportWithoutMarkers(t *testing.T) {
	a := NewAdapter(DefaultPadding, DefaultMaxZoom)
	current := Viewport{Center: schema.Location{Latitude: 7.2, Longitude: 80.6}, Zoom: 9.5}

	assert.Equal(t, current, a.Fit(nil, current, DefaultSize))

	view := a.Render(nil, DefaultViewport, DefaultSize)
	assert.Equal(t, DefaultViewport, view.Viewport)
	assert.Empty(t, view.Markers)
	assert.Nil(t, view.Collection.BoundingBox)
}

func TestFitSingleMarkerUsesMaxZoom(t *testing.T) {
	a := NewAdapter(DefaultPadding, DefaultMaxZoom)
	markers := BuildMarkers([]schema.HelpRequest{located("a0000000-0000-0000-0000-000000000000", "", 6.9, 79.9)})

	v := a.Fit(markers, DefaultViewport, DefaultSize)
	assert.Equal(t, schema.Location{Latitude: 6.9, Longitude: 79.9}, v.Center)
	assert.Equal(t, float64(DefaultMaxZoom), v.Zoom)
}

func TestFitSpreadMarkers(t *testing.T) {
	a := NewAdapter(DefaultPadding, DefaultMaxZoom)
	markers := BuildMarkers([]schema.HelpRequest{
		located("a0000000-0000-0000-0000-000000000000", "", 6.0, 80.0),
		located("b0000000-0000-0000-0000-000000000000", "", 9.8, 81.2),
		located("c0000000-0000-0000-0000-000000000000", "", 7.0, 79.8),
	})

	v := a.Fit(markers, DefaultViewport, DefaultSize)
	assert.InDelta(t, 7.9, v.Center.Latitude, 1e-9)
	assert.InDelta(t, 80.5, v.Center.Longitude, 1e-9)
	assert.Less(t, v.Zoom, float64(DefaultMaxZoom))
	assert.Greater(t, v.Zoom, 5.0)

	tighter := NewAdapter(200, DefaultMaxZoom).Fit(markers, DefaultViewport, DefaultSize)
	assert.Less(t, tighter.Zoom, v.Zoom, "more padding zooms further out")

	capped := NewAdapter(DefaultPadding, 4).Fit(markers, DefaultViewport, DefaultSize)
	assert.Equal(t, 4.0, capped.Zoom)
}

func TestFeatureCollection(t *testing.T) {
	r := located("a0000000-0000-0000-0000-000000000000", schema.EmergencyMissingPerson, 6.9, 79.9)
	s := located("b0000000-0000-0000-0000-000000000000", schema.EmergencyOther, 7.1, 80.2)

	fc := FeatureCollection(BuildMarkers([]schema.HelpRequest{r, s}))
	assert.Len(t, fc.Features, 2)
	assert.Equal(t, []float64{79.9, 6.9, 80.2, 7.1}, fc.BoundingBox)
	assert.Equal(t, []float64{79.9, 6.9}, fc.Features[0].Geometry.Point)
	assert.Equal(t, ColorPurple, fc.Features[0].Properties["color"])

	raw, err := json.Marshal(fc)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"FeatureCollection"`)
}
