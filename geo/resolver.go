// Package geo places requests on the map and resolves GPS points to areas.
package geo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/bitmark-inc/relief-api/schema"
	"github.com/bitmark-inc/relief-api/store"
)

const logPrefix = "geo"

var (
	ErrNoGeoInfoFound         = fmt.Errorf("no geo information found")
	ErrResolverNotInitialized = fmt.Errorf("area resolver is not initialized")
)

// AreaResolver - interface for resolving the area of a location
type AreaResolver interface {
	ResolveArea(context.Context, schema.Location) (*schema.Area, error)
}

var defaultResolver AreaResolver

type MultipleResolverErrors struct {
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleResolverErrors(errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		errors: errors,
	}
}

// Geocoder is the part of the google maps client the resolver uses
type Geocoder interface {
	Geocode(context.Context, *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

type GeocodingAreaResolver struct {
	client Geocoder
	areas  store.AreaStore
}

func NewGeocodingAreaResolver(client Geocoder, areas store.AreaStore) *GeocodingAreaResolver {
	return &GeocodingAreaResolver{
		client: client,
		areas:  areas,
	}
}

// districtName drops the suffix google puts on sri lankan districts
func districtName(name string) string {
	return strings.TrimSpace(strings.TrimSuffix(name, " District"))
}

func (g *GeocodingAreaResolver) ResolveArea(ctx context.Context, loc schema.Location) (*schema.Area, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Latitude,
			Lng: loc.Longitude,
		},
		ResultType: []string{"locality|administrative_area_level_2"},
		Language:   "en",
	})
	if nil != err {
		return nil, err
	}

	if len(geos) == 0 {
		return nil, ErrNoGeoInfoFound
	}

	var locality, district string
	for _, a := range geos[0].AddressComponents {
		if len(a.Types) > 0 {
			switch a.Types[0] {
			case "locality", "sublocality":
				if locality == "" {
					locality = a.LongName
				}
			case "administrative_area_level_2":
				district = districtName(a.LongName)
			}
		}
	}

	if locality == "" && district == "" {
		return nil, ErrNoGeoInfoFound
	}

	area, err := g.areas.FindArea(ctx, locality, district)
	if err == store.ErrRecordNotFound && locality != "" && district != "" {
		area, err = g.areas.FindArea(ctx, "", district)
	}
	if err == store.ErrRecordNotFound {
		return nil, ErrNoGeoInfoFound
	}
	return area, err
}

type BoundaryAreaResolver struct {
	boundaries store.BoundaryStore
	areas      store.AreaStore
}

func NewBoundaryAreaResolver(boundaries store.BoundaryStore, areas store.AreaStore) *BoundaryAreaResolver {
	return &BoundaryAreaResolver{
		boundaries: boundaries,
		areas:      areas,
	}
}

func (r *BoundaryAreaResolver) ResolveArea(ctx context.Context, loc schema.Location) (*schema.Area, error) {
	b, err := r.boundaries.BoundaryAt(loc)
	if err != nil {
		if err == store.ErrRecordNotFound {
			return nil, ErrNoGeoInfoFound
		}
		return nil, err
	}

	id, err := uuid.Parse(b.AreaID)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"area_id": b.AreaID,
		}).Warn("boundary with malformed area id")
		return nil, ErrNoGeoInfoFound
	}

	area, err := r.areas.GetArea(ctx, id)
	if err == store.ErrRecordNotFound {
		return nil, ErrNoGeoInfoFound
	}
	return area, err
}

type MultipleAreaResolver struct {
	resolvers []AreaResolver
}

func NewMultipleAreaResolver(resolvers ...AreaResolver) *MultipleAreaResolver {
	return &MultipleAreaResolver{
		resolvers: resolvers,
	}
}

func (r *MultipleAreaResolver) ResolveArea(ctx context.Context, loc schema.Location) (*schema.Area, error) {
	var errors []error
	for _, resolver := range r.resolvers {
		result, err := resolver.ResolveArea(ctx, loc)
		if err != nil {
			errors = append(errors, err)
		} else {
			return result, nil
		}
	}

	return nil, NewMultipleResolverErrors(errors)
}

func SetAreaResolver(resolver AreaResolver) {
	defaultResolver = resolver
}

func ResolveArea(ctx context.Context, loc schema.Location) (*schema.Area, error) {
	if defaultResolver == nil {
		return nil, ErrResolverNotInitialized
	}

	return defaultResolver.ResolveArea(ctx, loc)
}
