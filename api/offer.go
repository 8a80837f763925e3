package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/relief-api/classify"
	"github.com/bitmark-inc/relief-api/lifecycle"
	"github.com/bitmark-inc/relief-api/notice"
	"github.com/bitmark-inc/relief-api/schema"
	"github.com/bitmark-inc/relief-api/syncer"
)

func (s *Server) listOffers(c *gin.Context) {
	area, ok := areaParam(c)
	if !ok {
		return
	}

	// availability is filtered here so the type list covers every offer
	offers, err := syncer.OfferFetcher(s.store)(c.Request.Context(), syncer.Scope{AreaID: area, View: syncer.ViewAll})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": classify.FilterOffers(offers, classify.OfferFilter{
			Search:       c.Query("q"),
			Type:         c.Query("type"),
			Availability: c.Query("availability"),
		}),
		"types": classify.OfferTypes(offers),
	})
}

func (s *Server) createOffer(c *gin.Context) {
	var draft lifecycle.OfferDraft
	if !bindJSON(c, &draft) {
		return
	}

	o, err := s.engine.CreateOffer(c.Request.Context(), session(c), draft)
	if err != nil {
		abortWithError(c, err)
		return
	}

	respond(c, http.StatusCreated, o, notice.OfferCreated, nil)
}

func (s *Server) setOfferAvailability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var params struct {
		Available *bool `json:"is_available" binding:"required"`
	}
	if !bindJSON(c, &params) {
		return
	}

	o, err := s.engine.SetOfferAvailability(c.Request.Context(), session(c), id, *params.Available)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": o})
}

func (s *Server) deleteOffer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.engine.DeleteOffer(c.Request.Context(), session(c), id); err != nil {
		abortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", notice.Deleted, nil)
}

func (s *Server) listMissingPersons(c *gin.Context) {
	area, ok := areaParam(c)
	if !ok {
		return
	}

	persons, err := syncer.MissingPersonFetcher(s.store)(c.Request.Context(), syncer.Scope{AreaID: area, View: syncer.ViewAll})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": classify.FilterMissingPersons(persons, classify.MissingPersonFilter{
			Search: c.Query("q"),
			Status: c.Query("status"),
		}),
	})
}

func (s *Server) reportMissing(c *gin.Context) {
	var draft lifecycle.MissingPersonDraft
	if !bindJSON(c, &draft) {
		return
	}

	p, err := s.engine.ReportMissing(c.Request.Context(), session(c), draft)
	if err != nil {
		abortWithError(c, err)
		return
	}

	respond(c, http.StatusCreated, p, notice.MissingReported, nil)
}

func (s *Server) markFound(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	p, err := s.engine.MarkFound(c.Request.Context(), session(c), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, p, notice.PersonFound, nil)
}

func (s *Server) deleteMissingPerson(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.engine.DeleteMissingPerson(c.Request.Context(), session(c), id); err != nil {
		abortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", notice.Deleted, nil)
}

func (s *Server) listAlerts(c *gin.Context) {
	area, ok := areaParam(c)
	if !ok {
		return
	}

	view, err := syncer.ResolveView(schema.TableWeatherAlerts, c.Query("view"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	alerts, err := syncer.AlertFetcher(s.store)(c.Request.Context(), syncer.Scope{AreaID: area, View: view})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": alerts})
}

func (s *Server) createAlert(c *gin.Context) {
	var draft lifecycle.AlertDraft
	if !bindJSON(c, &draft) {
		return
	}

	a, err := s.engine.CreateAlert(c.Request.Context(), session(c), draft)
	if err != nil {
		abortWithError(c, err)
		return
	}

	respond(c, http.StatusCreated, a, notice.AlertPublished, nil)
}

func (s *Server) deactivateAlert(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	a, err := s.engine.DeactivateAlert(c.Request.Context(), session(c), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": a})
}
