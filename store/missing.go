package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/bitmark-inc/relief-api/schema"
)

func (s *ReliefStore) CreateMissingPerson(ctx context.Context, p *schema.MissingPerson) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return s.create(ctx, p)
}

func (s *ReliefStore) GetMissingPerson(ctx context.Context, id uuid.UUID) (*schema.MissingPerson, error) {
	var p schema.MissingPerson
	if err := s.get(ctx, id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ReliefStore) UpdateMissingPerson(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return s.update(ctx, &schema.MissingPerson{}, id, fields)
}

func (s *ReliefStore) DeleteMissingPerson(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, &schema.MissingPerson{}, id)
}

func (s *ReliefStore) ListMissingPersons(ctx context.Context, q MissingPersonQuery) ([]schema.MissingPerson, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	persons := []schema.MissingPerson{}
	if err := q.apply(s.ormDB.Preload("Area")).Find(&persons).Error; err != nil {
		return nil, translate(err)
	}

	return persons, nil
}

func (s *ReliefStore) CountMissingPersons(ctx context.Context, q MissingPersonQuery) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var count int
	if err := q.where(s.ormDB.Model(&schema.MissingPerson{})).Count(&count).Error; err != nil {
		return 0, translate(err)
	}

	return count, nil
}
