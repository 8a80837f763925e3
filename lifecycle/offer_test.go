package lifecycle

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relief-api/schema"
)

func TestCreateOffer(t *testing.T) {
	e, m, ctl := newEngine(t)
	defer ctl.Finish()

	m.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	o, err := e.CreateOffer(context.Background(), stranger, OfferDraft{
		AreaID:      areaA1,
		HelpType:    " boat ",
		Description: "fibre boat with driver",
		ContactInfo: "0779999999",
	})
	assert.NoError(t, err)
	assert.Equal(t, "boat", o.HelpType)
	assert.True(t, o.IsAvailable)
	assert.Equal(t, stranger.UserID, o.UserID)

	_, err = e.CreateOffer(context.Background(), stranger, OfferDraft{AreaID: areaA1, Description: "x", ContactInfo: "y"})
	assertValidation(t, err, "help_type")
}

func TestSetOfferAvailability(t *testing.T) {
	e, m, ctl := newEngine(t)
	defer ctl.Finish()

	ctx := context.Background()
	o := &schema.HelpOffer{ID: uuid.New(), UserID: owner.UserID, IsAvailable: true}
	m.EXPECT().GetOffer(gomock.Any(), o.ID).Return(o, nil).AnyTimes()

	_, err := e.SetOfferAvailability(ctx, stranger, o.ID, false)
	assertAuth(t, err, false)

	m.EXPECT().UpdateOffer(gomock.Any(), o.ID, map[string]interface{}{
		"is_available": false,
		"updated_at":   fixedNow,
	}).Return(nil).Times(1)

	got, err := e.SetOfferAvailability(ctx, owner, o.ID, false)
	assert.NoError(t, err)
	assert.False(t, got.IsAvailable)

	// already unavailable, nothing is written
	got, err = e.SetOfferAvailability(ctx, mod, o.ID, false)
	assert.NoError(t, err)
	assert.False(t, got.IsAvailable)

	m.EXPECT().UpdateOffer(gomock.Any(), o.ID, gomock.Any()).Return(nil).Times(1)
	got, err = e.SetOfferAvailability(ctx, mod, o.ID, true)
	assert.NoError(t, err)
	assert.True(t, got.IsAvailable)
}

func TestDeleteOffer(t *testing.T) {
	e, m, ctl := newEngine(t)
	defer ctl.Finish()

	id := uuid.New()
	assertAuth(t, e.DeleteOffer(context.Background(), owner, id), false)

	m.EXPECT().DeleteOffer(gomock.Any(), id).Return(nil).Times(1)
	assert.NoError(t, e.DeleteOffer(context.Background(), mod, id))
}
