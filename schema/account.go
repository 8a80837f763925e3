package schema

import (
	"errors"
	"time"
)

var ErrInvalidCoordinates = errors.New("invalid gps coordinates")

// Location is a GPS pair. Entities hold a *Location so that latitude and
// longitude are either both present or both absent.
type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// NewLocation validates the coordinate ranges and returns a location.
func NewLocation(latitude, longitude float64) (*Location, error) {
	l := &Location{Latitude: latitude, Longitude: longitude}
	if !l.Valid() {
		return nil, ErrInvalidCoordinates
	}
	return l, nil
}

func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

func (l *Location) columns() (*float64, *float64) {
	if l == nil {
		return nil, nil
	}
	lat, lng := l.Latitude, l.Longitude
	return &lat, &lng
}

func locationFromColumns(lat, lng *float64) *Location {
	if lat == nil || lng == nil {
		return nil
	}
	return &Location{Latitude: *lat, Longitude: *lng}
}

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleModerator || r == RoleUser
}

// Rank orders roles by privilege, 0 for none.
func (r Role) Rank() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleModerator:
		return 2
	case RoleUser:
		return 1
	}
	return 0
}

// CanModerate reports whether the role may verify, flag, close and purge.
func (r Role) CanModerate() bool {
	return r == RoleAdmin || r == RoleModerator
}

// UserRole grants a role to a user. A user may hold several rows; the
// strongest one applies.
type UserRole struct {
	UserID    string    `json:"user_id" gorm:"primary_key"`
	Role      Role      `json:"role" gorm:"primary_key;type:varchar(16)"`
	CreatedAt time.Time `json:"created_at"`
}

func (UserRole) TableName() string {
	return string(TableUserRoles)
}
