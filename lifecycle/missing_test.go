package lifecycle

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relief-api/schema"
)

func TestReportMissing(t *testing.T) {
	e, m, ctl := newEngine(t)
	defer ctl.Finish()

	m.EXPECT().CreateMissingPerson(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	age := 67
	p, err := e.ReportMissing(context.Background(), owner, MissingPersonDraft{
		AreaID:           areaA1,
		FullName:         "Sunil Fernando",
		Age:              &age,
		LastSeenLocation: "Kelani bridge",
		Description:      "walks with a cane",
		ContactInfo:      "0713333333",
	})
	assert.NoError(t, err)
	assert.Equal(t, schema.MissingStatusMissing, p.Status)
	assert.False(t, p.IsFound)

	tooOld := 151
	_, err = e.ReportMissing(context.Background(), owner, MissingPersonDraft{
		AreaID:      areaA1,
		FullName:    "x",
		Age:         &tooOld,
		Description: "y",
		ContactInfo: "z",
	})
	assertValidation(t, err, "age")
}

func TestMarkFound(t *testing.T) {
	e, m, ctl := newEngine(t)
	defer ctl.Finish()

	ctx := context.Background()
	p := &schema.MissingPerson{ID: uuid.New(), UserID: owner.UserID, Status: schema.MissingStatusMissing}
	m.EXPECT().GetMissingPerson(gomock.Any(), p.ID).Return(p, nil).AnyTimes()

	_, err := e.MarkFound(ctx, stranger, p.ID)
	assertAuth(t, err, false)

	m.EXPECT().UpdateMissingPerson(gomock.Any(), p.ID, gomock.Any()).Return(nil).Times(1)

	got, err := e.MarkFound(ctx, owner, p.ID)
	assert.NoError(t, err)
	assert.True(t, got.IsFound)
	assert.Equal(t, schema.MissingStatusFound, got.Status)
	assert.Equal(t, fixedNow, *got.FoundAt)

	// second call is a no-op
	got, err = e.MarkFound(ctx, mod, p.ID)
	assert.NoError(t, err)
	assert.True(t, got.IsFound)
}

func TestDeleteMissingPerson(t *testing.T) {
	e, m, ctl := newEngine(t)
	defer ctl.Finish()

	id := uuid.New()
	assertAuth(t, e.DeleteMissingPerson(context.Background(), owner, id), false)

	m.EXPECT().DeleteMissingPerson(gomock.Any(), id).Return(nil).Times(1)
	assert.NoError(t, e.DeleteMissingPerson(context.Background(), admin, id))
}
