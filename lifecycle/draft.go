package lifecycle

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bitmark-inc/relief-api/schema"
)

const (
	minPhoneDigits = 9
	maxAge         = 150
)

var nonDigits = regexp.MustCompile(`\D`)

func phoneDigits(s string) int {
	return len(nonDigits.ReplaceAllString(s, ""))
}

func validPhone(field, value string) error {
	if phoneDigits(value) < minPhoneDigits {
		return invalid(field, "phone number needs at least 9 digits")
	}
	return nil
}

func required(field, value string) error {
	if value == "" {
		return invalid(field, "required")
	}
	return nil
}

func requiredArea(id uuid.UUID) error {
	if id == uuid.Nil {
		return invalid("area_id", "required")
	}
	return nil
}

func validLocation(loc *schema.Location) error {
	if loc != nil && !loc.Valid() {
		return invalid("location", schema.ErrInvalidCoordinates.Error())
	}
	return nil
}

// firstError returns the first non nil error
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// RequestDraft holds the requester editable content of a help request
type RequestDraft struct {
	AreaID          uuid.UUID            `json:"area_id"`
	EmergencyType   schema.EmergencyType `json:"emergency_type"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	Location        *schema.Location     `json:"location"`
	Landmark        string               `json:"landmark"`
	LocationDetails string               `json:"location_details"`

	NumberOfPeople      *int                 `json:"number_of_people"`
	Occupants           schema.Occupants     `json:"occupants"`
	WaterLevel          schema.WaterLevel    `json:"water_level"`
	SafeForHours        *int                 `json:"safe_for_hours"`
	Needs               schema.ResourceNeeds `json:"needs"`
	PhoneBatteryPercent *int                 `json:"phone_battery_percent"`

	ContactInfo    string `json:"contact_info"`
	AlternatePhone string `json:"alternate_phone"`
}

func draftOf(r *schema.HelpRequest) RequestDraft {
	return RequestDraft{
		AreaID:              r.AreaID,
		EmergencyType:       r.EmergencyType,
		Title:               r.Title,
		Description:         r.Description,
		Location:            r.Location,
		Landmark:            r.Landmark,
		LocationDetails:     r.LocationDetails,
		NumberOfPeople:      intPtr(r.NumberOfPeople),
		Occupants:           r.Occupants,
		WaterLevel:          r.WaterLevel,
		SafeForHours:        r.SafeForHours,
		Needs:               r.Needs,
		PhoneBatteryPercent: r.PhoneBatteryPercent,
		ContactInfo:         r.ContactInfo,
		AlternatePhone:      r.AlternatePhone,
	}
}

// normalize trims text and fills defaults before validation
func (d *RequestDraft) normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.Landmark = strings.TrimSpace(d.Landmark)
	d.LocationDetails = strings.TrimSpace(d.LocationDetails)
	d.ContactInfo = strings.TrimSpace(d.ContactInfo)
	d.AlternatePhone = strings.TrimSpace(d.AlternatePhone)
}

// defaults fills the fields a new request may omit
func (d *RequestDraft) defaults() {
	if d.NumberOfPeople == nil {
		d.NumberOfPeople = intPtr(1)
	}
}

func intPtr(v int) *int {
	return &v
}

func (d RequestDraft) validate() error {
	if err := firstError(
		required("title", d.Title),
		required("description", d.Description),
		required("contact_info", d.ContactInfo),
		requiredArea(d.AreaID),
		validPhone("contact_info", d.ContactInfo),
		validLocation(d.Location),
	); err != nil {
		return err
	}

	if d.AlternatePhone != "" {
		if err := validPhone("alternate_phone", d.AlternatePhone); err != nil {
			return err
		}
	}

	if !d.EmergencyType.Valid() {
		return invalid("emergency_type", "unknown emergency type")
	}

	if !d.WaterLevel.Valid() {
		return invalid("water_level", "unknown water level")
	}

	if d.NumberOfPeople == nil || *d.NumberOfPeople < 1 {
		return invalid("number_of_people", "must be at least 1")
	}

	if d.SafeForHours != nil && *d.SafeForHours < 0 {
		return invalid("safe_for_hours", "must not be negative")
	}

	if d.PhoneBatteryPercent != nil && (*d.PhoneBatteryPercent < 0 || *d.PhoneBatteryPercent > 100) {
		return invalid("phone_battery_percent", "must be between 0 and 100")
	}

	return nil
}

// apply copies the draft onto a request
func (d RequestDraft) apply(r *schema.HelpRequest) {
	r.AreaID = d.AreaID
	r.EmergencyType = d.EmergencyType
	r.Title = d.Title
	r.Description = d.Description
	r.Location = d.Location
	r.Landmark = d.Landmark
	r.LocationDetails = d.LocationDetails
	r.NumberOfPeople = *d.NumberOfPeople
	r.Occupants = d.Occupants
	r.WaterLevel = d.WaterLevel
	r.SafeForHours = d.SafeForHours
	r.Needs = d.Needs
	r.PhoneBatteryPercent = d.PhoneBatteryPercent
	r.ContactInfo = d.ContactInfo
	r.AlternatePhone = d.AlternatePhone
}

// columns is the update set of the draft content
func (d RequestDraft) columns() map[string]interface{} {
	var lat, lng *float64
	if d.Location != nil {
		la, ln := d.Location.Latitude, d.Location.Longitude
		lat, lng = &la, &ln
	}

	return map[string]interface{}{
		"area_id":               d.AreaID,
		"emergency_type":        d.EmergencyType,
		"title":                 d.Title,
		"description":           d.Description,
		"gps_latitude":          lat,
		"gps_longitude":         lng,
		"landmark":              d.Landmark,
		"location_details":      d.LocationDetails,
		"number_of_people":      *d.NumberOfPeople,
		"has_children":          d.Occupants.HasChildren,
		"has_elderly":           d.Occupants.HasElderly,
		"has_disabled":          d.Occupants.HasDisabled,
		"has_medical_needs":     d.Occupants.HasMedicalNeeds,
		"water_level":           d.WaterLevel,
		"safe_for_hours":        d.SafeForHours,
		"needs_food":            d.Needs.NeedsFood,
		"needs_water":           d.Needs.NeedsWater,
		"needs_power":           d.Needs.NeedsPower,
		"phone_battery_percent": d.PhoneBatteryPercent,
		"contact_info":          d.ContactInfo,
		"alternate_phone":       d.AlternatePhone,
	}
}

// RequestPatch changes the fields that are set
type RequestPatch struct {
	AreaID          *uuid.UUID            `json:"area_id"`
	EmergencyType   *schema.EmergencyType `json:"emergency_type"`
	Title           *string               `json:"title"`
	Description     *string               `json:"description"`
	Location        *schema.Location      `json:"location"`
	ClearLocation   bool                  `json:"clear_location"`
	Landmark        *string               `json:"landmark"`
	LocationDetails *string               `json:"location_details"`

	NumberOfPeople      *int                  `json:"number_of_people"`
	Occupants           *schema.Occupants     `json:"occupants"`
	WaterLevel          *schema.WaterLevel    `json:"water_level"`
	SafeForHours        *int                  `json:"safe_for_hours"`
	Needs               *schema.ResourceNeeds `json:"needs"`
	PhoneBatteryPercent *int                  `json:"phone_battery_percent"`

	ContactInfo    *string `json:"contact_info"`
	AlternatePhone *string `json:"alternate_phone"`
}

func (p RequestPatch) applyTo(d *RequestDraft) {
	if p.AreaID != nil {
		d.AreaID = *p.AreaID
	}
	if p.EmergencyType != nil {
		d.EmergencyType = *p.EmergencyType
	}
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.ClearLocation {
		d.Location = nil
	} else if p.Location != nil {
		loc := *p.Location
		d.Location = &loc
	}
	if p.Landmark != nil {
		d.Landmark = *p.Landmark
	}
	if p.LocationDetails != nil {
		d.LocationDetails = *p.LocationDetails
	}
	if p.NumberOfPeople != nil {
		d.NumberOfPeople = intPtr(*p.NumberOfPeople)
	}
	if p.Occupants != nil {
		d.Occupants = *p.Occupants
	}
	if p.WaterLevel != nil {
		d.WaterLevel = *p.WaterLevel
	}
	if p.SafeForHours != nil {
		d.SafeForHours = p.SafeForHours
	}
	if p.Needs != nil {
		d.Needs = *p.Needs
	}
	if p.PhoneBatteryPercent != nil {
		d.PhoneBatteryPercent = p.PhoneBatteryPercent
	}
	if p.ContactInfo != nil {
		d.ContactInfo = *p.ContactInfo
	}
	if p.AlternatePhone != nil {
		d.AlternatePhone = *p.AlternatePhone
	}
}

// OfferDraft is the content of a new help offer
type OfferDraft struct {
	AreaID      uuid.UUID `json:"area_id"`
	HelpType    string    `json:"help_type"`
	Description string    `json:"description"`
	ContactInfo string    `json:"contact_info"`
}

func (d *OfferDraft) validate() error {
	d.HelpType = strings.TrimSpace(d.HelpType)
	d.Description = strings.TrimSpace(d.Description)
	d.ContactInfo = strings.TrimSpace(d.ContactInfo)

	return firstError(
		required("help_type", d.HelpType),
		required("description", d.Description),
		required("contact_info", d.ContactInfo),
		requiredArea(d.AreaID),
	)
}

// MissingPersonDraft is the content of a missing person report
type MissingPersonDraft struct {
	AreaID              uuid.UUID        `json:"area_id"`
	FullName            string           `json:"full_name"`
	Age                 *int             `json:"age"`
	Gender              string           `json:"gender"`
	LastSeenDate        *time.Time       `json:"last_seen_date"`
	LastSeenLocation    string           `json:"last_seen_location"`
	PhysicalDescription string           `json:"physical_description"`
	ClothingDescription string           `json:"clothing_description"`
	Description         string           `json:"description"`
	ContactInfo         string           `json:"contact_info"`
	PhotoURL            string           `json:"photo_url"`
	Location            *schema.Location `json:"location"`
}

func (d *MissingPersonDraft) validate() error {
	d.FullName = strings.TrimSpace(d.FullName)
	d.Description = strings.TrimSpace(d.Description)
	d.ContactInfo = strings.TrimSpace(d.ContactInfo)
	d.LastSeenLocation = strings.TrimSpace(d.LastSeenLocation)

	if err := firstError(
		required("full_name", d.FullName),
		required("description", d.Description),
		required("contact_info", d.ContactInfo),
		requiredArea(d.AreaID),
		validLocation(d.Location),
	); err != nil {
		return err
	}

	if d.Age != nil && (*d.Age < 0 || *d.Age > maxAge) {
		return invalid("age", "must be between 0 and 150")
	}

	return nil
}

// AlertDraft is the content of a weather alert
type AlertDraft struct {
	AreaID      uuid.UUID            `json:"area_id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Severity    schema.AlertSeverity `json:"severity"`
}

func (d *AlertDraft) validate() error {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	if d.Severity == "" {
		d.Severity = schema.SeverityWarning
	}

	if err := firstError(
		required("title", d.Title),
		required("description", d.Description),
		requiredArea(d.AreaID),
	); err != nil {
		return err
	}

	if !d.Severity.Valid() {
		return invalid("severity", "unknown severity")
	}
	return nil
}
