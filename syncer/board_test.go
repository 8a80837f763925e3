package syncer

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relief-api/mocks"
	"github.com/bitmark-inc/relief-api/notifier"
	"github.com/bitmark-inc/relief-api/schema"
	"github.com/bitmark-inc/relief-api/store"
)

func TestBoardMountsSectionsPerArea(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	hub := notifier.NewHub()
	defer hub.Close()

	s := mocks.NewMockReliefCore(ctl)
	yes := true

	s.EXPECT().ListRequests(gomock.Any(), store.RequestQuery{AreaID: areaA, ExcludeStatus: schema.StatusClosed}).
		Return([]schema.HelpRequest{{Title: "A"}}, nil).Times(1)
	s.EXPECT().ListAlerts(gomock.Any(), store.AlertQuery{AreaID: areaA, Active: &yes}).
		Return([]schema.WeatherAlert{{Title: "rain"}}, nil).Times(1)
	s.EXPECT().ListRequests(gomock.Any(), store.RequestQuery{AreaID: areaB, ExcludeStatus: schema.StatusClosed}).
		Return([]schema.HelpRequest{{Title: "B"}}, nil).Times(1)
	s.EXPECT().ListAlerts(gomock.Any(), store.AlertQuery{AreaID: areaB, Active: &yes}).
		Return([]schema.WeatherAlert{}, nil).Times(1)

	requests, err := NewSection(schema.TableHelpRequests, hub, s)
	assert.NoError(t, err)
	alerts, err := NewSection(schema.TableWeatherAlerts, hub, s)
	assert.NoError(t, err)

	b := NewBoard().Add(requests, ViewActive).Add(alerts, ViewActive)
	defer b.Stop()

	assert.NoError(t, b.Mount(context.Background(), areaA))

	frames := b.Frames()
	if assert.Len(t, frames, 2) {
		assert.Equal(t, schema.TableHelpRequests, frames[0].Table)
		assert.Equal(t, []schema.HelpRequest{{Title: "A"}}, frames[0].Items)
		assert.Equal(t, schema.TableWeatherAlerts, frames[1].Table)
		assert.Equal(t, areaA, frames[1].AreaID)
	}

	assert.NoError(t, b.SetArea(context.Background(), areaB))
	frames = b.Frames()
	assert.Equal(t, []schema.HelpRequest{{Title: "B"}}, frames[0].Items)
	assert.Equal(t, []schema.WeatherAlert{}, frames[1].Items)
	assert.Equal(t, uint64(2), frames[1].Generation)
}

func TestBoardMountFailsWhenNotifierIsClosed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	hub := notifier.NewHub()
	hub.Close()

	s := mocks.NewMockReliefCore(ctl)
	offers, err := NewSection(schema.TableHelpOffers, hub, s)
	assert.NoError(t, err)

	b := NewBoard().Add(offers, ViewAvailable)
	assert.Equal(t, notifier.ErrClosed, b.Mount(context.Background(), areaA))

	_, err = NewSection(schema.TableAreas, hub, s)
	assert.Error(t, err)
}
