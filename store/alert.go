package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/bitmark-inc/relief-api/schema"
)

func (s *ReliefStore) CreateAlert(ctx context.Context, a *schema.WeatherAlert) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return s.create(ctx, a)
}

func (s *ReliefStore) GetAlert(ctx context.Context, id uuid.UUID) (*schema.WeatherAlert, error) {
	var a schema.WeatherAlert
	if err := s.get(ctx, id, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *ReliefStore) UpdateAlert(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return s.update(ctx, &schema.WeatherAlert{}, id, fields)
}

func (s *ReliefStore) ListAlerts(ctx context.Context, q AlertQuery) ([]schema.WeatherAlert, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	alerts := []schema.WeatherAlert{}
	if err := q.apply(s.ormDB.Preload("Area")).Find(&alerts).Error; err != nil {
		return nil, translate(err)
	}

	return alerts, nil
}
