package geojson

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"

	geojson "github.com/paulmach/go.geojson"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/relief-api/schema"
	"github.com/bitmark-inc/relief-api/store"
)

const logPrefix = "import-boundary"

// Property keys read from every feature
const (
	PropertyName     = "name"
	PropertyDistrict = "district"
	PropertyProvince = "province"
)

// Summary counts the outcome of an import
type Summary struct {
	Imported int
	Skipped  []string
}

func geometryOf(g *geojson.Geometry) (schema.Geometry, error) {
	if g == nil {
		return schema.Geometry{}, fmt.Errorf("missing geometry")
	}

	switch g.Type {
	case geojson.GeometryPolygon:
		return schema.Geometry{Type: string(g.Type), Coordinates: g.Polygon}, nil
	case geojson.GeometryMultiPolygon:
		return schema.Geometry{Type: string(g.Type), Coordinates: g.MultiPolygon}, nil
	}
	return schema.Geometry{}, fmt.Errorf("unsupported geometry %s", g.Type)
}

// ImportAreaBoundaries stores the polygon of every feature whose name and
// district match a known area. Features of unknown areas are skipped.
func ImportAreaBoundaries(ctx context.Context, areas store.AreaStore, boundaries store.BoundaryStore, r io.Reader) (*Summary, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for i, f := range fc.Features {
		name := f.PropertyMustString(PropertyName, "")
		district := f.PropertyMustString(PropertyDistrict, "")
		label := fmt.Sprintf("#%d %s/%s", i, district, name)

		geometry, err := geometryOf(f.Geometry)
		if err != nil {
			return nil, fmt.Errorf("feature %s: %w", label, err)
		}

		area, err := areas.FindArea(ctx, name, district)
		if err == store.ErrRecordNotFound {
			log.WithFields(log.Fields{
				"prefix":   logPrefix,
				"name":     name,
				"district": district,
			}).Warn("no area for boundary")
			summary.Skipped = append(summary.Skipped, label)
			continue
		}
		if err != nil {
			return nil, err
		}

		province := f.PropertyMustString(PropertyProvince, area.Province)
		if err := boundaries.UpsertBoundary(schema.Boundary{
			AreaID:   area.ID.String(),
			Name:     area.Name,
			District: area.District,
			Province: province,
			Geometry: geometry,
		}); err != nil {
			return nil, err
		}
		summary.Imported++
	}

	return summary, nil
}
