package geo

import (
	"fmt"
	"math"
	"strings"
	"time"

	geojson "github.com/paulmach/go.geojson"

	"github.com/bitmark-inc/relief-api/classify"
	"github.com/bitmark-inc/relief-api/schema"
)

const (
	ColorRed    = "#dc2626"
	ColorOrange = "#ea580c"
	ColorAmber  = "#f59e0b"
	ColorPurple = "#7c3aed"
	ColorGray   = "#6b7280"

	DefaultPadding = 50
	DefaultMaxZoom = 12

	summaryLength = 150
	tileSize      = 512
)

// DefaultViewport is the initial camera over Sri Lanka
var DefaultViewport = Viewport{
	Center: schema.Location{Latitude: 7.8731, Longitude: 80.7718},
	Zoom:   7,
}

var markerColors = map[schema.EmergencyType]string{
	schema.EmergencyTrappedByFlood:   ColorRed,
	schema.EmergencyEvacuationNeeded: ColorRed,
	schema.EmergencyMedical:          ColorOrange,
	schema.EmergencyFoodWaterNeeded:  ColorAmber,
	schema.EmergencyMissingPerson:    ColorPurple,
}

// MarkerColor returns the marker fill of an emergency type, gray when the
// type is other or unset
func MarkerColor(t schema.EmergencyType) string {
	if c, ok := markerColors[t]; ok {
		return c
	}
	return ColorGray
}

type Popup struct {
	Title      string    `json:"title"`
	Emergency  string    `json:"emergency,omitempty"`
	Summary    string    `json:"summary"`
	People     int       `json:"people,omitempty"`
	Vulnerable []string  `json:"vulnerable,omitempty"`
	WaterLevel string    `json:"water_level,omitempty"`
	Needs      []string  `json:"needs,omitempty"`
	Battery    *int      `json:"low_battery,omitempty"`
	Area       string    `json:"area,omitempty"`
	Landmark   string    `json:"landmark,omitempty"`
	Contact    string    `json:"contact"`
	CreatedAt  time.Time `json:"created_at"`
}

type Marker struct {
	RequestID string          `json:"request_id"`
	Position  schema.Location `json:"position"`
	Color     string          `json:"color"`
	Verified  bool            `json:"verified"`
	Critical  bool            `json:"critical"`
	Popup     Popup           `json:"popup"`
}

type Viewport struct {
	Center schema.Location `json:"center"`
	Zoom   float64         `json:"zoom"`
}

// Size is the pixel size of the rendered map
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

var DefaultSize = Size{Width: 1024, Height: 768}

// MapView is one render of the map: markers, the fitted camera and the same
// markers as geojson
type MapView struct {
	Markers    []Marker                   `json:"markers"`
	Viewport   Viewport                   `json:"viewport"`
	Collection *geojson.FeatureCollection `json:"collection"`
}

type Adapter struct {
	Padding int
	MaxZoom float64
}

func NewAdapter(padding int, maxZoom float64) Adapter {
	if padding < 0 {
		padding = DefaultPadding
	}
	if maxZoom <= 0 {
		maxZoom = DefaultMaxZoom
	}
	return Adapter{Padding: padding, MaxZoom: maxZoom}
}

// Render rebuilds every marker of the requests and fits the camera around
// them. The camera stays at current when nothing is visible.
func (a Adapter) Render(requests []schema.HelpRequest, current Viewport, size Size) MapView {
	markers := BuildMarkers(requests)
	return MapView{
		Markers:    markers,
		Viewport:   a.Fit(markers, current, size),
		Collection: FeatureCollection(markers),
	}
}

func humanize(value string) string {
	return strings.ToUpper(strings.ReplaceAll(value, "_", " "))
}

func summarize(text string) string {
	runes := []rune(text)
	if len(runes) <= summaryLength {
		return text
	}
	return string(runes[:summaryLength]) + "..."
}

func popupOf(r schema.HelpRequest) Popup {
	p := Popup{
		Title:      r.Title,
		Emergency:  humanize(string(r.EmergencyType)),
		Summary:    summarize(r.Description),
		Vulnerable: r.Occupants.Labels(),
		WaterLevel: humanize(string(r.WaterLevel)),
		Needs:      r.Needs.Labels(),
		Landmark:   r.Landmark,
		Contact:    r.ContactInfo,
		CreatedAt:  r.CreatedAt,
	}
	if r.NumberOfPeople > 1 {
		p.People = r.NumberOfPeople
	}
	if r.PhoneBatteryPercent != nil && *r.PhoneBatteryPercent < 20 {
		p.Battery = r.PhoneBatteryPercent
	}
	if r.Area != nil {
		p.Area = fmt.Sprintf("%s, %s", r.Area.Name, r.Area.District)
	}
	return p
}

// BuildMarkers turns requests into markers. Requests without a location
// have nowhere to go and are skipped.
func BuildMarkers(requests []schema.HelpRequest) []Marker {
	markers := make([]Marker, 0, len(requests))
	for _, r := range requests {
		if r.Location == nil {
			continue
		}
		markers = append(markers, Marker{
			RequestID: r.ID.String(),
			Position:  *r.Location,
			Color:     MarkerColor(r.EmergencyType),
			Verified:  r.IsVerified,
			Critical:  classify.IsCritical(r),
			Popup:     popupOf(r),
		})
	}
	return markers
}

// Bounds is a lng/lat box
type Bounds struct {
	West, South, East, North float64
}

func BoundsOf(markers []Marker) (Bounds, bool) {
	if len(markers) == 0 {
		return Bounds{}, false
	}

	first := markers[0].Position
	b := Bounds{West: first.Longitude, East: first.Longitude, South: first.Latitude, North: first.Latitude}
	for _, m := range markers[1:] {
		b.West = math.Min(b.West, m.Position.Longitude)
		b.East = math.Max(b.East, m.Position.Longitude)
		b.South = math.Min(b.South, m.Position.Latitude)
		b.North = math.Max(b.North, m.Position.Latitude)
	}
	return b, true
}

// mercatorY projects a latitude to the web mercator y in [-pi, pi]
func mercatorY(latitude float64) float64 {
	sin := math.Sin(latitude * math.Pi / 180)
	y := math.Log((1+sin)/(1-sin)) / 2
	return math.Max(math.Min(y, math.Pi), -math.Pi)
}

func (a Adapter) Fit(markers []Marker, current Viewport, size Size) Viewport {
	b, ok := BoundsOf(markers)
	if !ok {
		return current
	}
	if size.Width <= 0 || size.Height <= 0 {
		size = DefaultSize
	}

	center := schema.Location{
		Longitude: (b.West + b.East) / 2,
		Latitude:  (b.South + b.North) / 2,
	}

	width := math.Max(float64(size.Width-2*a.Padding), 1)
	height := math.Max(float64(size.Height-2*a.Padding), 1)

	zoom := a.MaxZoom
	if lngFraction := (b.East - b.West) / 360; lngFraction > 0 {
		zoom = math.Min(zoom, math.Log2(width/tileSize/lngFraction))
	}
	if latFraction := (mercatorY(b.North) - mercatorY(b.South)) / (2 * math.Pi); latFraction > 0 {
		zoom = math.Min(zoom, math.Log2(height/tileSize/latFraction))
	}

	return Viewport{Center: center, Zoom: math.Max(zoom, 0)}
}

func FeatureCollection(markers []Marker) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, m := range markers {
		f := geojson.NewPointFeature([]float64{m.Position.Longitude, m.Position.Latitude})
		f.ID = m.RequestID
		f.SetProperty("color", m.Color)
		f.SetProperty("verified", m.Verified)
		f.SetProperty("critical", m.Critical)
		f.SetProperty("title", m.Popup.Title)
		f.SetProperty("summary", m.Popup.Summary)
		fc.AddFeature(f)
	}

	if b, ok := BoundsOf(markers); ok {
		fc.BoundingBox = []float64{b.West, b.South, b.East, b.North}
	}
	return fc
}
