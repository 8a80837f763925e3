package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/bitmark-inc/relief-api/schema"
)

// CreateRequest inserts a help request
func (s *ReliefStore) CreateRequest(ctx context.Context, r *schema.HelpRequest) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return s.create(ctx, r)
}

func (s *ReliefStore) GetRequest(ctx context.Context, id uuid.UUID) (*schema.HelpRequest, error) {
	var r schema.HelpRequest
	if err := s.get(ctx, id, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateRequest writes the given columns of a help request
func (s *ReliefStore) UpdateRequest(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return s.update(ctx, &schema.HelpRequest{}, id, fields)
}

func (s *ReliefStore) DeleteRequest(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, &schema.HelpRequest{}, id)
}

// ListRequests returns help requests with their areas
func (s *ReliefStore) ListRequests(ctx context.Context, q RequestQuery) ([]schema.HelpRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	requests := []schema.HelpRequest{}
	if err := q.apply(s.ormDB.Preload("Area")).Find(&requests).Error; err != nil {
		return nil, translate(err)
	}

	return requests, nil
}

func (s *ReliefStore) CountRequests(ctx context.Context, q RequestQuery) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var count int
	if err := q.where(s.ormDB.Model(&schema.HelpRequest{})).Count(&count).Error; err != nil {
		return 0, translate(err)
	}

	return count, nil
}
