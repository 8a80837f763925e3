package store

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/bitmark-inc/relief-api/schema"
)

// RequestQuery narrows a help request listing. Zero values match everything.
type RequestQuery struct {
	AreaID        uuid.UUID
	Statuses      []schema.RequestStatus
	ExcludeStatus schema.RequestStatus
	EmergencyType schema.EmergencyType
	Verified      *bool
	ActionTaken   *bool
	HasLocation   bool
	OrderBy       string
	Ascending     bool
	Limit         int
}

func (q RequestQuery) where(db *gorm.DB) *gorm.DB {
	if q.AreaID != uuid.Nil {
		db = db.Where("area_id = ?", q.AreaID)
	}
	if len(q.Statuses) > 0 {
		db = db.Where("status IN (?)", q.Statuses)
	}
	if q.ExcludeStatus != "" {
		db = db.Where("status <> ?", q.ExcludeStatus)
	}
	if q.EmergencyType != "" {
		db = db.Where("emergency_type = ?", q.EmergencyType)
	}
	if q.Verified != nil {
		db = db.Where("is_verified = ?", *q.Verified)
	}
	if q.ActionTaken != nil {
		db = db.Where("action_taken = ?", *q.ActionTaken)
	}
	if q.HasLocation {
		db = db.Where("gps_latitude IS NOT NULL AND gps_longitude IS NOT NULL")
	}
	return db
}

func (q RequestQuery) apply(db *gorm.DB) *gorm.DB {
	return page(q.where(db), order(q.OrderBy, q.Ascending, requestOrderColumns), q.Limit)
}

// OfferQuery narrows a help offer listing
type OfferQuery struct {
	AreaID    uuid.UUID
	Available *bool
	HelpType  string
	Limit     int
}

func (q OfferQuery) apply(db *gorm.DB) *gorm.DB {
	if q.AreaID != uuid.Nil {
		db = db.Where("area_id = ?", q.AreaID)
	}
	if q.Available != nil {
		db = db.Where("is_available = ?", *q.Available)
	}
	if q.HelpType != "" {
		db = db.Where("help_type = ?", q.HelpType)
	}
	return page(db, order("", false, nil), q.Limit)
}

// MissingPersonQuery narrows a missing person listing
type MissingPersonQuery struct {
	AreaID uuid.UUID
	Found  *bool
	Limit  int
}

func (q MissingPersonQuery) where(db *gorm.DB) *gorm.DB {
	if q.AreaID != uuid.Nil {
		db = db.Where("area_id = ?", q.AreaID)
	}
	if q.Found != nil {
		db = db.Where("is_found = ?", *q.Found)
	}
	return db
}

func (q MissingPersonQuery) apply(db *gorm.DB) *gorm.DB {
	return page(q.where(db), order("", false, nil), q.Limit)
}

// AlertQuery narrows a weather alert listing
type AlertQuery struct {
	AreaID uuid.UUID
	Active *bool
	Limit  int
}

func (q AlertQuery) apply(db *gorm.DB) *gorm.DB {
	if q.AreaID != uuid.Nil {
		db = db.Where("area_id = ?", q.AreaID)
	}
	if q.Active != nil {
		db = db.Where("is_active = ?", *q.Active)
	}
	return page(db, order("", false, nil), q.Limit)
}

var requestOrderColumns = map[string]bool{
	"created_at":      true,
	"updated_at":      true,
	"action_taken_at": true,
}

// order only accepts known columns, anything else falls back to created_at
func order(column string, ascending bool, allowed map[string]bool) string {
	if !allowed[column] {
		column = "created_at"
	}

	direction := "DESC"
	if ascending {
		direction = "ASC"
	}

	clause := []string{column, direction}
	if column != "created_at" {
		clause = append(clause, "NULLS LAST, created_at DESC")
	}
	return strings.Join(clause, " ") + ", id"
}

func page(db *gorm.DB, orderBy string, limit int) *gorm.DB {
	db = db.Order(orderBy)
	if limit > 0 {
		db = db.Limit(limit)
	}
	return db
}
