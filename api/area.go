package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/relief-api/geo"
	"github.com/bitmark-inc/relief-api/schema"
)

// parseGeoPosition will parse latitude and longitude from the geo-position string
func parseGeoPosition(geoPosition string) (float64, float64, error) {
	positions := strings.Split(geoPosition, ";")

	if len(positions) != 2 {
		return 0, 0, fmt.Errorf("invalid geo-position value")
	}

	lat, err := strconv.ParseFloat(positions[0], 64)
	if err != nil {
		return 0, 0, err
	}

	long, err := strconv.ParseFloat(positions[1], 64)
	if err != nil {
		return 0, 0, err
	}

	return lat, long, nil
}

// queryLocation reads the point from lat and lng, or from the Geo-Position
// header when the query has none
func queryLocation(c *gin.Context) (*schema.Location, error) {
	var lat, lng float64
	var err error

	if c.Query("lat") == "" && c.Query("lng") == "" {
		gp := c.GetHeader("Geo-Position")
		if gp == "" {
			return nil, fmt.Errorf("no location given")
		}
		if lat, lng, err = parseGeoPosition(gp); err != nil {
			return nil, err
		}
	} else {
		if lat, err = strconv.ParseFloat(c.Query("lat"), 64); err != nil {
			return nil, err
		}
		if lng, err = strconv.ParseFloat(c.Query("lng"), 64); err != nil {
			return nil, err
		}
	}

	return schema.NewLocation(lat, lng)
}

func (s *Server) listAreas(c *gin.Context) {
	areas, err := s.store.ListAreas(c.Request.Context())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": areas})
}

// resolveArea is the API to pre-select the area of a form from the
// position of the device
func (s *Server) resolveArea(c *gin.Context) {
	loc, err := queryLocation(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	area, err := s.resolver.ResolveArea(c.Request.Context(), *loc)
	if err != nil {
		var multiple *geo.MultipleResolverErrors
		if err == geo.ErrNoGeoInfoFound || errors.As(err, &multiple) {
			abortWithEncoding(c, http.StatusNotFound, errorUnknownLocation, err)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": area})
}
