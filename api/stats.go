package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bitmark-inc/relief-api/classify"
	"github.com/bitmark-inc/relief-api/lifecycle"
	"github.com/bitmark-inc/relief-api/schema"
	"github.com/bitmark-inc/relief-api/store"
	"github.com/bitmark-inc/relief-api/syncer"
)

type statsResponse struct {
	classify.Stats
	OpenRequests int `json:"open_requests"`
}

func (s *Server) collectStats(ctx context.Context, area uuid.UUID) (*statsResponse, error) {
	requests, err := syncer.RequestFetcher(s.store)(ctx, syncer.Scope{AreaID: area, View: syncer.ViewAll})
	if err != nil {
		return nil, err
	}

	open, err := s.store.CountRequests(ctx, store.RequestQuery{
		AreaID:   area,
		Statuses: []schema.RequestStatus{schema.StatusOpen},
	})
	if err != nil {
		return nil, err
	}

	found := false
	missing, err := s.store.CountMissingPersons(ctx, store.MissingPersonQuery{AreaID: area, Found: &found})
	if err != nil {
		return nil, err
	}

	stats := classify.Count(requests)
	stats.MissingPersons = missing
	return &statsResponse{Stats: stats, OpenRequests: open}, nil
}

// stats is the API for the counters of the admin dashboard
func (s *Server) stats(c *gin.Context) {
	sess := session(c)
	if !sess.CanModerate() {
		if !sess.Authenticated() {
			abortWithError(c, &lifecycle.AuthError{Unauthenticated: true})
		} else {
			abortWithError(c, &lifecycle.AuthError{Reason: "moderators only"})
		}
		return
	}

	s.renderStats(c)
}

// metricStats serves the same counters to api key holders
func (s *Server) metricStats(c *gin.Context) {
	s.renderStats(c)
}

func (s *Server) renderStats(c *gin.Context) {
	area, ok := areaParam(c)
	if !ok {
		return
	}

	stats, err := s.collectStats(c.Request.Context(), area)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": stats})
}
