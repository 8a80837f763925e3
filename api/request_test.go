package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relief-api/geo"
	"github.com/bitmark-inc/relief-api/schema"
	"github.com/bitmark-inc/relief-api/store"
)

func draftBody() map[string]interface{} {
	return map[string]interface{}{
		"area_id":          areaID,
		"emergency_type":   "trapped_by_flood",
		"title":            "Family on the roof",
		"description":      "Water is rising, two children",
		"contact_info":     "071 234 5678",
		"number_of_people": 4,
		"water_level":      "waist_deep",
		"occupants":        map[string]bool{"has_children": true},
		"location":         map[string]float64{"latitude": 6.93, "longitude": 79.98},
	}
}

func TestCreateRequestAnonymous(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)

	code, resp := ts.do(t, "POST", "/api/requests", "", draftBody())
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, int64(1401), resp.Code)
	assert.True(t, resp.Notice.Blocking)
}

func TestCreateRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	ts.as("requester-1", schema.RoleUser)

	ts.store.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *schema.HelpRequest) error {
		assert.Equal(t, "requester-1", r.UserID)
		assert.Equal(t, schema.StatusOpen, r.Status)
		assert.Equal(t, areaID, r.AreaID)
		assert.True(t, r.Occupants.HasChildren)
		r.ID = uuid.New()
		return nil
	})

	code, resp := ts.do(t, "POST", "/api/requests", "requester-1", draftBody())
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Request submitted", resp.Notice.Title)

	var created schema.HelpRequest
	assert.NoError(t, json.Unmarshal(resp.Result, &created))
	assert.Equal(t, schema.StatusOpen, created.Status)
	assert.False(t, created.IsVerified)
	assert.Equal(t, &schema.Location{Latitude: 6.93, Longitude: 79.98}, created.Location)
}

func TestCreateRequestValidation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	ts.as("requester-1", schema.RoleUser)

	body := draftBody()
	body["contact_info"] = "12345"

	code, resp := ts.do(t, "POST", "/api/requests", "requester-1", body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, int64(1400), resp.Code)
	assert.Contains(t, resp.Message, "contact_info")
	assert.True(t, resp.Notice.Blocking)

	code, resp = ts.do(t, "POST", "/api/requests", "requester-1", "not an object")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, int64(1011), resp.Code)
}

func openRequest(owner string) *schema.HelpRequest {
	return &schema.HelpRequest{
		ID:          uuid.New(),
		UserID:      owner,
		AreaID:      areaID,
		Title:       "Need food",
		Description: "no food since yesterday",
		ContactInfo: "0712345678",
		Status:      schema.StatusOpen,
	}
}

func TestUpdateStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	ts.as("requester-1", schema.RoleUser)
	ts.as("moderator-1", schema.RoleModerator)

	r := openRequest("requester-1")
	ts.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil).AnyTimes()

	// owners may not fulfil their own request
	code, resp := ts.do(t, "PUT", "/api/requests/"+r.ID.String()+"/status", "requester-1", map[string]string{"status": "fulfilled"})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, int64(1402), resp.Code)
	assert.Equal(t, "Access Denied", resp.Notice.Title)

	ts.store.EXPECT().UpdateRequest(gomock.Any(), r.ID, gomock.Any()).DoAndReturn(func(_ context.Context, _ uuid.UUID, fields map[string]interface{}) error {
		assert.Equal(t, schema.StatusFulfilled, fields["status"])
		return nil
	})

	code, resp = ts.do(t, "PUT", "/api/requests/"+r.ID.String()+"/status", "moderator-1", map[string]string{"status": "fulfilled"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "The request is now fulfilled.", resp.Notice.Message)
}

func TestUpdateStatusFromClosed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	ts.as("admin-1", schema.RoleAdmin)

	r := openRequest("requester-1")
	r.Status = schema.StatusClosed
	ts.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)

	code, resp := ts.do(t, "PUT", "/api/requests/"+r.ID.String()+"/status", "admin-1", map[string]string{"status": "open"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, int64(1403), resp.Code)
	assert.Equal(t, "A request cannot move from closed to open.", resp.Notice.Message)
}

func TestVerifyAndMarkActionTaken(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	ts.as("requester-1", schema.RoleUser)
	ts.as("moderator-1", schema.RoleModerator)

	r := openRequest("requester-1")
	ts.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil).AnyTimes()

	code, _ := ts.do(t, "POST", "/api/requests/"+r.ID.String()+"/verify", "requester-1", nil)
	assert.Equal(t, http.StatusForbidden, code)

	ts.store.EXPECT().UpdateRequest(gomock.Any(), r.ID, gomock.Any()).DoAndReturn(func(_ context.Context, _ uuid.UUID, fields map[string]interface{}) error {
		assert.Equal(t, true, fields["is_verified"])
		return nil
	})
	code, resp := ts.do(t, "POST", "/api/requests/"+r.ID.String()+"/verify", "moderator-1", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Request verified", resp.Notice.Title)

	ts.store.EXPECT().UpdateRequest(gomock.Any(), r.ID, gomock.Any()).DoAndReturn(func(_ context.Context, _ uuid.UUID, fields map[string]interface{}) error {
		assert.Equal(t, true, fields["action_taken"])
		assert.Equal(t, "boat dispatched", fields["action_notes"])
		return nil
	})
	code, _ = ts.do(t, "POST", "/api/requests/"+r.ID.String()+"/action", "moderator-1", map[string]string{"notes": "boat dispatched"})
	assert.Equal(t, http.StatusOK, code)
}

func TestRequestNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	ts.as("moderator-1", schema.RoleModerator)

	id := uuid.New()
	ts.store.EXPECT().GetRequest(gomock.Any(), id).Return(nil, store.ErrRecordNotFound)

	code, resp := ts.do(t, "POST", "/api/requests/"+id.String()+"/verify", "moderator-1", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, int64(1404), resp.Code)

	code, resp = ts.do(t, "POST", "/api/requests/not-a-uuid/verify", "moderator-1", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, int64(1010), resp.Code)
}

func TestDeleteRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	ts.as("requester-1", schema.RoleUser)
	ts.as("admin-1", schema.RoleAdmin)

	id := uuid.New()
	code, _ := ts.do(t, "DELETE", "/api/requests/"+id.String(), "requester-1", nil)
	assert.Equal(t, http.StatusForbidden, code)

	ts.store.EXPECT().DeleteRequest(gomock.Any(), id).Return(nil)
	code, resp := ts.do(t, "DELETE", "/api/requests/"+id.String(), "admin-1", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Deleted successfully", resp.Notice.Title)
}

func TestListRequests(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)

	base := time.Date(2025, 11, 28, 6, 0, 0, 0, time.UTC)
	older := openRequest("a")
	older.Title = "Boat needed"
	older.CreatedAt = base
	newer := openRequest("b")
	newer.Title = "Insulin"
	newer.CreatedAt = base.Add(time.Hour)
	newer.WaterLevel = schema.WaterOverHead

	ts.store.EXPECT().ListRequests(gomock.Any(), store.RequestQuery{
		AreaID:        areaID,
		ExcludeStatus: schema.StatusClosed,
	}).Return([]schema.HelpRequest{*older, *newer}, nil).Times(2)

	code, resp := ts.do(t, "GET", "/api/requests?area="+areaID.String(), "", nil)
	assert.Equal(t, http.StatusOK, code)

	var list []struct {
		Title  string `json:"title"`
		Facets struct {
			Critical bool `json:"critical"`
		} `json:"facets"`
	}
	assert.NoError(t, json.Unmarshal(resp.Result, &list))
	if assert.Len(t, list, 2) {
		assert.Equal(t, "Insulin", list[0].Title)
		assert.True(t, list[0].Facets.Critical)
		assert.False(t, list[1].Facets.Critical)
	}

	_, resp = ts.do(t, "GET", "/api/requests?area="+areaID.String()+"&q=boat", "", nil)
	assert.NoError(t, json.Unmarshal(resp.Result, &list))
	assert.Len(t, list, 1)

	code, resp = ts.do(t, "GET", "/api/requests?view=archived", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, int64(1010), resp.Code)
}

func TestRequestMap(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)

	flood := openRequest("a")
	flood.EmergencyType = schema.EmergencyTrappedByFlood
	flood.Location = &schema.Location{Latitude: 6.93, Longitude: 79.98}
	medical := openRequest("b")
	medical.EmergencyType = schema.EmergencyMedical
	medical.Location = &schema.Location{Latitude: 7.29, Longitude: 80.63}
	medical.IsVerified = true

	ts.store.EXPECT().ListRequests(gomock.Any(), gomock.Any()).Return([]schema.HelpRequest{*flood, *medical}, nil).Times(2)

	code, resp := ts.do(t, "GET", "/api/requests/map", "", nil)
	assert.Equal(t, http.StatusOK, code)

	var view geo.MapView
	assert.NoError(t, json.Unmarshal(resp.Result, &view))
	assert.Len(t, view.Markers, 2)
	assert.NotEqual(t, geo.DefaultViewport, view.Viewport)
	assert.Len(t, view.Collection.Features, 2)

	// nothing verified and medical: the camera stays where the client left it
	_, resp = ts.do(t, "GET", "/api/requests/map?type=trapped_by_flood&verified=verified&lat=7.0&lng=80.0&zoom=9", "", nil)
	assert.NoError(t, json.Unmarshal(resp.Result, &view))
	assert.Empty(t, view.Markers)
	assert.Equal(t, geo.Viewport{Center: schema.Location{Latitude: 7.0, Longitude: 80.0}, Zoom: 9}, view.Viewport)
}
