package lifecycle

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relief-api/schema"
)

func TestCreateAlert(t *testing.T) {
	e, m, ctl := newEngine(t)
	defer ctl.Finish()

	ctx := context.Background()
	d := AlertDraft{AreaID: areaA1, Title: "Spill gates open", Description: "Kelani river expected to rise 2m"}

	_, err := e.CreateAlert(ctx, owner, d)
	assertAuth(t, err, false)

	m.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	a, err := e.CreateAlert(ctx, mod, d)
	assert.NoError(t, err)
	assert.Equal(t, schema.SeverityWarning, a.Severity)
	assert.True(t, a.IsActive)
	assert.Equal(t, mod.UserID, a.CreatedBy)

	d.Severity = "apocalyptic"
	_, err = e.CreateAlert(ctx, mod, d)
	assertValidation(t, err, "severity")
}

func TestDeactivateAlert(t *testing.T) {
	e, m, ctl := newEngine(t)
	defer ctl.Finish()

	ctx := context.Background()
	a := &schema.WeatherAlert{ID: uuid.New(), IsActive: true}
	m.EXPECT().GetAlert(gomock.Any(), a.ID).Return(a, nil).Times(2)
	m.EXPECT().UpdateAlert(gomock.Any(), a.ID, gomock.Any()).Return(nil).Times(1)

	got, err := e.DeactivateAlert(ctx, mod, a.ID)
	assert.NoError(t, err)
	assert.False(t, got.IsActive)

	got, err = e.DeactivateAlert(ctx, mod, a.ID)
	assert.NoError(t, err)
	assert.False(t, got.IsActive)
}
