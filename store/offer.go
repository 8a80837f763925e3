package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/bitmark-inc/relief-api/schema"
)

func (s *ReliefStore) CreateOffer(ctx context.Context, o *schema.HelpOffer) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return s.create(ctx, o)
}

func (s *ReliefStore) GetOffer(ctx context.Context, id uuid.UUID) (*schema.HelpOffer, error) {
	var o schema.HelpOffer
	if err := s.get(ctx, id, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *ReliefStore) UpdateOffer(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return s.update(ctx, &schema.HelpOffer{}, id, fields)
}

func (s *ReliefStore) DeleteOffer(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, &schema.HelpOffer{}, id)
}

func (s *ReliefStore) ListOffers(ctx context.Context, q OfferQuery) ([]schema.HelpOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	offers := []schema.HelpOffer{}
	if err := q.apply(s.ormDB.Preload("Area")).Find(&offers).Error; err != nil {
		return nil, translate(err)
	}

	return offers, nil
}
