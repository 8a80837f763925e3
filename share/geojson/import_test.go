package geojson

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relief-api/mocks"
	"github.com/bitmark-inc/relief-api/schema"
	"github.com/bitmark-inc/relief-api/store"
)

const boundaries = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "Kaduwela", "district": "Colombo", "province": "Western"},
      "geometry": {"type": "Polygon", "coordinates": [[[79.95, 6.90], [80.02, 6.90], [80.02, 6.97], [79.95, 6.90]]]}
    },
    {
      "type": "Feature",
      "properties": {"name": "Atlantis", "district": "Nowhere"},
      "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 0]]]}
    }
  ]
}`

func TestImportAreaBoundaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	areas := mocks.NewMockReliefCore(ctrl)
	mongo := mocks.NewMockMongoStore(ctrl)

	kaduwela := &schema.Area{ID: uuid.New(), Name: "Kaduwela", District: "Colombo", Province: "Western"}
	areas.EXPECT().FindArea(gomock.Any(), "Kaduwela", "Colombo").Return(kaduwela, nil)
	areas.EXPECT().FindArea(gomock.Any(), "Atlantis", "Nowhere").Return(nil, store.ErrRecordNotFound)

	mongo.EXPECT().UpsertBoundary(gomock.Any()).DoAndReturn(func(b schema.Boundary) error {
		assert.Equal(t, kaduwela.ID.String(), b.AreaID)
		assert.Equal(t, "Polygon", b.Geometry.Type)
		assert.Equal(t, [][][]float64{{{79.95, 6.90}, {80.02, 6.90}, {80.02, 6.97}, {79.95, 6.90}}}, b.Geometry.Coordinates)
		return nil
	})

	summary, err := ImportAreaBoundaries(context.Background(), areas, mongo, strings.NewReader(boundaries))
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, []string{"#1 Nowhere/Atlantis"}, summary.Skipped)
}

func TestImportRejectsPoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	points := `{"type": "FeatureCollection", "features": [
	  {"type": "Feature", "properties": {"name": "x"}, "geometry": {"type": "Point", "coordinates": [80, 7]}}
	]}`

	_, err := ImportAreaBoundaries(context.Background(), mocks.NewMockReliefCore(ctrl), mocks.NewMockMongoStore(ctrl), strings.NewReader(points))
	assert.EqualError(t, err, "feature #0 /x: unsupported geometry Point")
}
