package lifecycle

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/relief-api/schema"
)

// CreateOffer stores a new available offer owned by the actor
func (e *Engine) CreateOffer(ctx context.Context, sess SessionContext, d OfferDraft) (*schema.HelpOffer, error) {
	if !sess.Authenticated() {
		return nil, errUnauthenticated
	}

	if err := d.validate(); err != nil {
		return nil, err
	}

	now := e.stamp()
	o := &schema.HelpOffer{
		ID:          uuid.New(),
		UserID:      sess.UserID,
		AreaID:      d.AreaID,
		HelpType:    d.HelpType,
		Description: d.Description,
		ContactInfo: d.ContactInfo,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := e.store.CreateOffer(ctx, o); err != nil {
		return nil, storeFailure("create offer", err)
	}

	return o, nil
}

// SetOfferAvailability flips an offer between available and unavailable
func (e *Engine) SetOfferAvailability(ctx context.Context, sess SessionContext, id uuid.UUID, available bool) (*schema.HelpOffer, error) {
	if !sess.Authenticated() {
		return nil, errUnauthenticated
	}

	o, err := e.store.GetOffer(ctx, id)
	if err != nil {
		return nil, storeFailure("get offer", err)
	}

	if !sess.CanModerate() && !sess.Owns(o.UserID) {
		return nil, forbidden("only the volunteer or a moderator may change an offer")
	}

	if o.IsAvailable == available {
		return o, nil
	}

	now := e.stamp()
	if err := e.store.UpdateOffer(ctx, id, map[string]interface{}{
		"is_available": available,
		"updated_at":   now,
	}); err != nil {
		return nil, storeFailure("update offer availability", err)
	}

	o.IsAvailable = available
	o.UpdatedAt = now
	return o, nil
}

func (e *Engine) DeleteOffer(ctx context.Context, sess SessionContext, id uuid.UUID) error {
	if err := moderator(sess); err != nil {
		return err
	}

	if err := e.store.DeleteOffer(ctx, id); err != nil {
		return storeFailure("delete offer", err)
	}

	audit(sess, "offer deleted", log.Fields{"id": id})
	return nil
}
