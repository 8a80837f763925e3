package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/bitmark-inc/relief-api/schema"
)

const ormLogPrefix = "orm"

var (
	ErrRecordNotFound = fmt.Errorf("record not found")
	ErrAreaNotExist   = fmt.Errorf("area does not exist")
	ErrDuplicated     = fmt.Errorf("record already exists")
)

// RequestStore keeps help requests
type RequestStore interface {
	CreateRequest(ctx context.Context, r *schema.HelpRequest) error
	GetRequest(ctx context.Context, id uuid.UUID) (*schema.HelpRequest, error)
	UpdateRequest(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	DeleteRequest(ctx context.Context, id uuid.UUID) error
	ListRequests(ctx context.Context, q RequestQuery) ([]schema.HelpRequest, error)
	CountRequests(ctx context.Context, q RequestQuery) (int, error)
}

// OfferStore keeps help offers
type OfferStore interface {
	CreateOffer(ctx context.Context, o *schema.HelpOffer) error
	GetOffer(ctx context.Context, id uuid.UUID) (*schema.HelpOffer, error)
	UpdateOffer(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	DeleteOffer(ctx context.Context, id uuid.UUID) error
	ListOffers(ctx context.Context, q OfferQuery) ([]schema.HelpOffer, error)
}

// MissingPersonStore keeps missing person reports
type MissingPersonStore interface {
	CreateMissingPerson(ctx context.Context, p *schema.MissingPerson) error
	GetMissingPerson(ctx context.Context, id uuid.UUID) (*schema.MissingPerson, error)
	UpdateMissingPerson(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	DeleteMissingPerson(ctx context.Context, id uuid.UUID) error
	ListMissingPersons(ctx context.Context, q MissingPersonQuery) ([]schema.MissingPerson, error)
	CountMissingPersons(ctx context.Context, q MissingPersonQuery) (int, error)
}

// AlertStore keeps weather alerts
type AlertStore interface {
	CreateAlert(ctx context.Context, a *schema.WeatherAlert) error
	GetAlert(ctx context.Context, id uuid.UUID) (*schema.WeatherAlert, error)
	UpdateAlert(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	ListAlerts(ctx context.Context, q AlertQuery) ([]schema.WeatherAlert, error)
}

// AreaStore reads the reference list of areas
type AreaStore interface {
	GetArea(ctx context.Context, id uuid.UUID) (*schema.Area, error)
	ListAreas(ctx context.Context) ([]schema.Area, error)
	FindArea(ctx context.Context, name, district string) (*schema.Area, error)
}

// RoleStore resolves the role of a user
type RoleStore interface {
	RoleOf(ctx context.Context, userID string) (schema.Role, error)
}

//go:generate mockgen -source=relief.go -destination=../mocks/store.go -package=mocks

// ReliefCore is the main datastore of the relief service
type ReliefCore interface {
	Pinger

	RequestStore
	OfferStore
	MissingPersonStore
	AlertStore
	AreaStore
	RoleStore
}

// ReliefStore is an implementation of ReliefCore
type ReliefStore struct {
	ormDB *gorm.DB
}

func NewReliefStore(ormDB *gorm.DB) *ReliefStore {
	return &ReliefStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *ReliefStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// translate maps driver errors into store errors
func translate(err error) error {
	if err == nil {
		return nil
	}

	if gorm.IsRecordNotFoundError(err) {
		return ErrRecordNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503":
			return ErrAreaNotExist
		case "23505":
			return ErrDuplicated
		}
	}

	return err
}

func (s *ReliefStore) create(ctx context.Context, value interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return translate(s.ormDB.Create(value).Error)
}

func (s *ReliefStore) get(ctx context.Context, id uuid.UUID, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return translate(s.ormDB.Preload("Area").Where("id = ?", id).First(out).Error)
}

// update writes all fields in one statement. Timestamps are taken from fields
// as given, gorm does not stamp them.
func (s *ReliefStore) update(ctx context.Context, model interface{}, id uuid.UUID, fields map[string]interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	result := s.ormDB.Model(model).Where("id = ?", id).UpdateColumns(fields)
	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (s *ReliefStore) delete(ctx context.Context, model interface{}, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	result := s.ormDB.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
