package store_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relief-api/mocks"
	"github.com/bitmark-inc/relief-api/schema"
	"github.com/bitmark-inc/relief-api/store"
)

type recordingPublisher struct {
	tables []schema.Table
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, table schema.Table) error {
	p.tables = append(p.tables, table)
	return p.err
}

func TestNotifyingCorePublishesAfterWrite(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockReliefCore(ctl)
	p := &recordingPublisher{}
	n := store.NewNotifyingCore(core, p)

	id := uuid.New()
	core.EXPECT().UpdateRequest(gomock.Any(), id, gomock.Any()).Return(nil).Times(1)
	core.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	core.EXPECT().DeleteMissingPerson(gomock.Any(), id).Return(nil).Times(1)
	core.EXPECT().UpdateAlert(gomock.Any(), id, gomock.Any()).Return(nil).Times(1)

	ctx := context.Background()
	assert.NoError(t, n.UpdateRequest(ctx, id, map[string]interface{}{"status": "closed"}))
	assert.NoError(t, n.CreateOffer(ctx, &schema.HelpOffer{}))
	assert.NoError(t, n.DeleteMissingPerson(ctx, id))
	assert.NoError(t, n.UpdateAlert(ctx, id, map[string]interface{}{"is_active": false}))

	assert.Equal(t, []schema.Table{
		schema.TableHelpRequests,
		schema.TableHelpOffers,
		schema.TableMissingPersons,
		schema.TableWeatherAlerts,
	}, p.tables)
}

func TestNotifyingCoreSkipsFailedWrite(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockReliefCore(ctl)
	p := &recordingPublisher{}
	n := store.NewNotifyingCore(core, p)

	id := uuid.New()
	core.EXPECT().DeleteRequest(gomock.Any(), id).Return(store.ErrRecordNotFound).Times(1)

	err := n.DeleteRequest(context.Background(), id)
	assert.Equal(t, store.ErrRecordNotFound, err)
	assert.Empty(t, p.tables)
}

func TestNotifyingCoreIgnoresPublishFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockReliefCore(ctl)
	p := &recordingPublisher{err: fmt.Errorf("broker down")}
	n := store.NewNotifyingCore(core, p)

	core.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	assert.NoError(t, n.CreateRequest(context.Background(), &schema.HelpRequest{}))
	assert.Equal(t, []schema.Table{schema.TableHelpRequests}, p.tables)
}

func TestNotifyingCorePassesReadsThrough(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockReliefCore(ctl)
	p := &recordingPublisher{}
	n := store.NewNotifyingCore(core, p)

	core.EXPECT().RoleOf(gomock.Any(), "u1").Return(schema.RoleModerator, nil).Times(1)

	role, err := n.RoleOf(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, schema.RoleModerator, role)
	assert.Empty(t, p.tables)
}
