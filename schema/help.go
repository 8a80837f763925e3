package schema

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	StatusOpen       RequestStatus = "open"
	StatusInProgress RequestStatus = "in_progress"
	StatusFulfilled  RequestStatus = "fulfilled"
	StatusClosed     RequestStatus = "closed"
)

var RequestStatuses = []RequestStatus{StatusOpen, StatusInProgress, StatusFulfilled, StatusClosed}

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusFulfilled, StatusClosed:
		return true
	}
	return false
}

type EmergencyType string

const (
	EmergencyTrappedByFlood   EmergencyType = "trapped_by_flood"
	EmergencyMedical          EmergencyType = "medical_emergency"
	EmergencyFoodWaterNeeded  EmergencyType = "food_water_needed"
	EmergencyEvacuationNeeded EmergencyType = "evacuation_needed"
	EmergencyMissingPerson    EmergencyType = "missing_person"
	EmergencyOther            EmergencyType = "other_emergency"
)

// Valid reports whether t is a known emergency type. The empty value means
// the requester did not classify the emergency and is accepted.
func (t EmergencyType) Valid() bool {
	switch t {
	case "", EmergencyTrappedByFlood, EmergencyMedical, EmergencyFoodWaterNeeded,
		EmergencyEvacuationNeeded, EmergencyMissingPerson, EmergencyOther:
		return true
	}
	return false
}

type WaterLevel string

const (
	WaterAnkleDeep WaterLevel = "ankle_deep"
	WaterKneeDeep  WaterLevel = "knee_deep"
	WaterWaistDeep WaterLevel = "waist_deep"
	WaterChestDeep WaterLevel = "chest_deep"
	WaterOverHead  WaterLevel = "over_head"
)

var waterLevelRank = map[WaterLevel]int{
	WaterAnkleDeep: 1,
	WaterKneeDeep:  2,
	WaterWaistDeep: 3,
	WaterChestDeep: 4,
	WaterOverHead:  5,
}

// Rank returns the ordinal of the water level, 0 when unset or unknown.
func (w WaterLevel) Rank() int {
	return waterLevelRank[w]
}

func (w WaterLevel) Valid() bool {
	return w == "" || w.Rank() > 0
}

// AtLeast reports whether w is set and at or above other.
func (w WaterLevel) AtLeast(other WaterLevel) bool {
	return w.Rank() > 0 && w.Rank() >= other.Rank()
}

// Occupants groups the vulnerability flags of the people behind a request.
type Occupants struct {
	HasChildren     bool `json:"has_children" gorm:"column:has_children;not null;default:false"`
	HasElderly      bool `json:"has_elderly" gorm:"column:has_elderly;not null;default:false"`
	HasDisabled     bool `json:"has_disabled" gorm:"column:has_disabled;not null;default:false"`
	HasMedicalNeeds bool `json:"has_medical_needs" gorm:"column:has_medical_needs;not null;default:false"`
}

// Any reports whether at least one vulnerability flag is set.
func (o Occupants) Any() bool {
	return o.HasChildren || o.HasElderly || o.HasDisabled || o.HasMedicalNeeds
}

// Labels lists the set flags in display order.
func (o Occupants) Labels() []string {
	labels := make([]string, 0, 4)
	if o.HasChildren {
		labels = append(labels, "children")
	}
	if o.HasElderly {
		labels = append(labels, "elderly")
	}
	if o.HasDisabled {
		labels = append(labels, "disabled")
	}
	if o.HasMedicalNeeds {
		labels = append(labels, "medical")
	}
	return labels
}

type ResourceNeeds struct {
	NeedsFood  bool `json:"needs_food" gorm:"column:needs_food;not null;default:false"`
	NeedsWater bool `json:"needs_water" gorm:"column:needs_water;not null;default:false"`
	NeedsPower bool `json:"needs_power" gorm:"column:needs_power;not null;default:false"`
}

func (n ResourceNeeds) Any() bool {
	return n.NeedsFood || n.NeedsWater || n.NeedsPower
}

func (n ResourceNeeds) Labels() []string {
	labels := make([]string, 0, 3)
	if n.NeedsFood {
		labels = append(labels, "food")
	}
	if n.NeedsWater {
		labels = append(labels, "water")
	}
	if n.NeedsPower {
		labels = append(labels, "power")
	}
	return labels
}

type HelpRequest struct {
	ID            uuid.UUID     `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	UserID        string        `json:"user_id" gorm:"not null;index"`
	AreaID        uuid.UUID     `json:"area_id" gorm:"type:uuid;not null;index"`
	EmergencyType EmergencyType `json:"emergency_type,omitempty"`
	Title         string        `json:"title" gorm:"not null"`
	Description   string        `json:"description" gorm:"not null"`

	Status        RequestStatus `json:"status" gorm:"type:varchar(16);not null;default:'open';index"`
	IsVerified    bool          `json:"is_verified" gorm:"not null;default:false;index"`
	VerifiedAt    *time.Time    `json:"verified_at,omitempty"`
	ActionTaken   bool          `json:"action_taken" gorm:"not null;default:false;index"`
	ActionTakenAt *time.Time    `json:"action_taken_at,omitempty"`
	ActionNotes   string        `json:"action_notes,omitempty"`

	Location        *Location `json:"location,omitempty" gorm:"-"`
	GPSLatitude     *float64  `json:"-" gorm:"column:gps_latitude"`
	GPSLongitude    *float64  `json:"-" gorm:"column:gps_longitude"`
	Landmark        string    `json:"landmark,omitempty"`
	LocationDetails string    `json:"location_details,omitempty"`

	NumberOfPeople      int           `json:"number_of_people" gorm:"not null;default:1"`
	Occupants           Occupants     `json:"occupants" gorm:"embedded"`
	WaterLevel          WaterLevel    `json:"water_level,omitempty"`
	SafeForHours        *int          `json:"safe_for_hours,omitempty"`
	Needs               ResourceNeeds `json:"needs" gorm:"embedded"`
	PhoneBatteryPercent *int          `json:"phone_battery_percent,omitempty"`

	ContactInfo    string `json:"contact_info" gorm:"not null"`
	AlternatePhone string `json:"alternate_phone,omitempty"`

	Area *Area `json:"area,omitempty" gorm:"foreignkey:AreaID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (HelpRequest) TableName() string {
	return string(TableHelpRequests)
}

func (r *HelpRequest) BeforeSave() error {
	r.GPSLatitude, r.GPSLongitude = r.Location.columns()
	return nil
}

func (r *HelpRequest) AfterFind() error {
	r.Location = locationFromColumns(r.GPSLatitude, r.GPSLongitude)
	return nil
}

// ActionSortTime is the timestamp the actions-taken view orders by.
func (r HelpRequest) ActionSortTime() time.Time {
	if r.ActionTakenAt != nil {
		return *r.ActionTakenAt
	}
	return r.CreatedAt
}
