package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bitmark-inc/relief-api/classify"
	"github.com/bitmark-inc/relief-api/geo"
	"github.com/bitmark-inc/relief-api/lifecycle"
	"github.com/bitmark-inc/relief-api/notice"
	"github.com/bitmark-inc/relief-api/schema"
	"github.com/bitmark-inc/relief-api/syncer"
)

// requestCard is a help request with its display facets
type requestCard struct {
	schema.HelpRequest
	Facets classify.Facets `json:"facets"`
}

func cards(requests []schema.HelpRequest) []requestCard {
	result := make([]requestCard, 0, len(requests))
	for _, r := range requests {
		result = append(result, requestCard{HelpRequest: r, Facets: classify.FacetsOf(r)})
	}
	return result
}

// pathID parses the :id parameter, answering 400 when it is malformed
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return uuid.Nil, false
	}
	return id, true
}

// areaParam parses the optional area query, uuid.Nil for every area
func areaParam(c *gin.Context) (uuid.UUID, bool) {
	area := c.Query("area")
	if area == "" || area == classify.All {
		return uuid.Nil, true
	}
	id, err := uuid.Parse(area)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.BindJSON(obj); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return false
	}
	return true
}

func respond(c *gin.Context, code int, result interface{}, op string, data map[string]interface{}) {
	c.JSON(code, gin.H{
		"result": result,
		"notice": localizer(c).Success(op, data),
	})
}

// listRequests is the API for the request boards
func (s *Server) listRequests(c *gin.Context) {
	area, ok := areaParam(c)
	if !ok {
		return
	}

	view, err := syncer.ResolveView(schema.TableHelpRequests, c.Query("view"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	requests, err := syncer.RequestFetcher(s.store)(c.Request.Context(), syncer.Scope{AreaID: area, View: view})
	if err != nil {
		abortWithError(c, err)
		return
	}

	filter := classify.RequestFilter{
		Search: c.Query("q"),
		Status: c.Query("status"),
	}
	if view == syncer.ViewActions {
		filter.SortBy = classify.SortActionTaken
	}

	c.JSON(http.StatusOK, gin.H{
		"result": cards(classify.FilterRequests(requests, filter)),
	})
}

func floatQuery(c *gin.Context, key string, fallback float64) (float64, error) {
	v := c.Query(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(v, 64)
}

// requestMap is the API for the emergency map. The current camera is
// passed in so it stays put when no marker is visible.
func (s *Server) requestMap(c *gin.Context) {
	area, ok := areaParam(c)
	if !ok {
		return
	}

	current := geo.DefaultViewport
	size := geo.DefaultSize
	var err error
	for _, p := range []struct {
		key string
		to  *float64
	}{
		{"lat", &current.Center.Latitude},
		{"lng", &current.Center.Longitude},
		{"zoom", &current.Zoom},
	} {
		if *p.to, err = floatQuery(c, p.key, *p.to); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
	}
	if w, err := strconv.Atoi(c.DefaultQuery("width", "0")); err == nil && w > 0 {
		size.Width = w
	}
	if h, err := strconv.Atoi(c.DefaultQuery("height", "0")); err == nil && h > 0 {
		size.Height = h
	}

	requests, err := syncer.RequestFetcher(s.store)(c.Request.Context(), syncer.Scope{AreaID: area, View: syncer.ViewMap})
	if err != nil {
		abortWithError(c, err)
		return
	}

	visible := classify.FilterForMap(requests, classify.MapFilter{
		EmergencyType: c.Query("type"),
		Verified:      c.Query("verified"),
	})

	c.JSON(http.StatusOK, gin.H{
		"result": s.mapAdapter.Render(visible, current, size),
	})
}

// createRequest is the API for asking help from others
func (s *Server) createRequest(c *gin.Context) {
	var draft lifecycle.RequestDraft
	if !bindJSON(c, &draft) {
		return
	}

	r, err := s.engine.CreateRequest(c.Request.Context(), session(c), draft)
	if err != nil {
		abortWithError(c, err)
		return
	}

	respond(c, http.StatusCreated, r, notice.RequestCreated, nil)
}

func (s *Server) editRequest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch lifecycle.RequestPatch
	if !bindJSON(c, &patch) {
		return
	}

	r, err := s.engine.EditRequest(c.Request.Context(), session(c), id, patch)
	if err != nil {
		abortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, r, notice.RequestUpdated, nil)
}

func (s *Server) updateRequestStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var params struct {
		Status schema.RequestStatus `json:"status" binding:"required"`
	}
	if !bindJSON(c, &params) {
		return
	}

	r, err := s.engine.UpdateStatus(c.Request.Context(), session(c), id, params.Status)
	if err != nil {
		abortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, r, notice.StatusUpdated, map[string]interface{}{"Status": r.Status})
}

func (s *Server) verifyRequest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	r, err := s.engine.Verify(c.Request.Context(), session(c), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, r, notice.RequestVerified, nil)
}

func (s *Server) markActionTaken(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var params struct {
		Notes string `json:"notes"`
	}
	if c.Request.ContentLength != 0 && !bindJSON(c, &params) {
		return
	}

	r, err := s.engine.MarkActionTaken(c.Request.Context(), session(c), id, params.Notes)
	if err != nil {
		abortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, r, notice.ActionTaken, nil)
}

func (s *Server) deleteRequest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.engine.DeleteRequest(c.Request.Context(), session(c), id); err != nil {
		abortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, "OK", notice.Deleted, nil)
}
