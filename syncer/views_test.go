package syncer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relief-api/schema"
	"github.com/bitmark-inc/relief-api/store"
)

func TestRequestQuery(t *testing.T) {
	yes := true
	cases := []struct {
		view string
		want store.RequestQuery
	}{
		{"", store.RequestQuery{AreaID: areaA, ExcludeStatus: schema.StatusClosed}},
		{ViewActive, store.RequestQuery{AreaID: areaA, ExcludeStatus: schema.StatusClosed}},
		{ViewAll, store.RequestQuery{AreaID: areaA}},
		{ViewVerified, store.RequestQuery{AreaID: areaA, Verified: &yes, ExcludeStatus: schema.StatusClosed}},
		{ViewActions, store.RequestQuery{AreaID: areaA, ActionTaken: &yes, OrderBy: "action_taken_at"}},
		{ViewMap, store.RequestQuery{AreaID: areaA, HasLocation: true, ExcludeStatus: schema.StatusClosed}},
	}

	for _, c := range cases {
		got, err := RequestQuery(Scope{AreaID: areaA, View: c.view})
		assert.NoError(t, err, c.view)
		assert.Equal(t, c.want, got, c.view)
	}

	_, err := RequestQuery(Scope{View: ViewAvailable})
	var uerr *UnknownViewError
	assert.ErrorAs(t, err, &uerr)
}

func TestResolveView(t *testing.T) {
	v, err := ResolveView(schema.TableHelpOffers, "")
	assert.NoError(t, err)
	assert.Equal(t, ViewAvailable, v)

	v, err = ResolveView(schema.TableMissingPersons, ViewFound)
	assert.NoError(t, err)
	assert.Equal(t, ViewFound, v)

	_, err = ResolveView(schema.TableAreas, "")
	assert.Error(t, err)

	_, err = ResolveView(schema.TableWeatherAlerts, ViewMap)
	assert.Error(t, err)
}
