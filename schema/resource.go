package schema

import (
	"time"

	"github.com/google/uuid"
)

// Table names double as change-signal topics.
type Table string

const (
	TableAreas          Table = "areas"
	TableHelpRequests   Table = "help_requests"
	TableHelpOffers     Table = "help_offers"
	TableMissingPersons Table = "missing_persons"
	TableWeatherAlerts  Table = "weather_alerts"
	TableUserRoles      Table = "user_roles"
)

// WatchedTables are the collections clients keep live views of.
var WatchedTables = []Table{TableHelpRequests, TableHelpOffers, TableMissingPersons, TableWeatherAlerts}

type Area struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Name      string    `json:"name" gorm:"not null"`
	District  string    `json:"district" gorm:"not null"`
	Province  string    `json:"province" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Area) TableName() string {
	return string(TableAreas)
}

type HelpOffer struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	UserID      string    `json:"user_id" gorm:"not null;index"`
	AreaID      uuid.UUID `json:"area_id" gorm:"type:uuid;not null;index"`
	HelpType    string    `json:"help_type" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	ContactInfo string    `json:"contact_info" gorm:"not null"`
	IsAvailable bool      `json:"is_available" gorm:"not null;default:true;index"`
	Area        *Area     `json:"area,omitempty" gorm:"foreignkey:AreaID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (HelpOffer) TableName() string {
	return string(TableHelpOffers)
}

const (
	MissingStatusMissing = "missing"
	MissingStatusFound   = "found"
)

type MissingPerson struct {
	ID                  uuid.UUID  `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	UserID              string     `json:"user_id" gorm:"not null;index"`
	AreaID              uuid.UUID  `json:"area_id" gorm:"type:uuid;not null;index"`
	FullName            string     `json:"full_name" gorm:"not null"`
	Age                 *int       `json:"age,omitempty"`
	Gender              string     `json:"gender,omitempty"`
	LastSeenDate        *time.Time `json:"last_seen_date,omitempty"`
	LastSeenLocation    string     `json:"last_seen_location,omitempty"`
	PhysicalDescription string     `json:"physical_description,omitempty"`
	ClothingDescription string     `json:"clothing_description,omitempty"`
	Description         string     `json:"description" gorm:"not null"`
	ContactInfo         string     `json:"contact_info" gorm:"not null"`
	PhotoURL            string     `json:"photo_url,omitempty"`

	Location     *Location `json:"location,omitempty" gorm:"-"`
	GPSLatitude  *float64  `json:"-" gorm:"column:gps_latitude"`
	GPSLongitude *float64  `json:"-" gorm:"column:gps_longitude"`

	IsFound bool       `json:"is_found" gorm:"not null;default:false"`
	FoundAt *time.Time `json:"found_at,omitempty"`
	Status  string     `json:"status" gorm:"not null;default:'missing'"`

	Area      *Area     `json:"area,omitempty" gorm:"foreignkey:AreaID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MissingPerson) TableName() string {
	return string(TableMissingPersons)
}

func (p *MissingPerson) BeforeSave() error {
	p.GPSLatitude, p.GPSLongitude = p.Location.columns()
	return nil
}

func (p *MissingPerson) AfterFind() error {
	p.Location = locationFromColumns(p.GPSLatitude, p.GPSLongitude)
	return nil
}

type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

func (s AlertSeverity) Valid() bool {
	return s == SeverityInfo || s == SeverityWarning || s == SeverityCritical
}

type WeatherAlert struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	AreaID      uuid.UUID     `json:"area_id" gorm:"type:uuid;not null;index"`
	CreatedBy   string        `json:"created_by" gorm:"not null"`
	Title       string        `json:"title" gorm:"not null"`
	Description string        `json:"description" gorm:"not null"`
	Severity    AlertSeverity `json:"severity" gorm:"type:varchar(16);not null;default:'warning'"`
	IsActive    bool          `json:"is_active" gorm:"not null;default:true;index"`
	Area        *Area         `json:"area,omitempty" gorm:"foreignkey:AreaID"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (WeatherAlert) TableName() string {
	return string(TableWeatherAlerts)
}
