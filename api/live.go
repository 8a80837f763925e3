package api

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/relief-api/schema"
	"github.com/bitmark-inc/relief-api/syncer"
)

var keepAliveInterval = 30 * time.Second

var liveCollections = map[string]schema.Table{
	"requests":        schema.TableHelpRequests,
	"offers":          schema.TableHelpOffers,
	"missing-persons": schema.TableMissingPersons,
	"alerts":          schema.TableWeatherAlerts,
}

func sseHeaders(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
}

// stream sends a frame on every tick of changed until the client goes away
// or the watchers stop
func stream(c *gin.Context, changed <-chan struct{}, frames func() []syncer.Frame) {
	sseHeaders(c)

	for _, f := range frames() {
		c.SSEvent(string(f.Table), f)
	}
	c.Writer.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case _, ok := <-changed:
			if !ok {
				return false
			}
			for _, f := range frames() {
				c.SSEvent(string(f.Table), f)
			}
			return true
		case <-keepAlive.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		}
	})
}

// liveCollection streams the snapshots of one collection view. Each
// connection owns its watcher, which stops when the client disconnects.
func (s *Server) liveCollection(c *gin.Context) {
	table, ok := liveCollections[c.Param("collection")]
	if !ok {
		abortWithEncoding(c, http.StatusNotFound, errorNotFound)
		return
	}

	area, ok := areaParam(c)
	if !ok {
		return
	}

	view, err := syncer.ResolveView(table, c.Query("view"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	section, err := syncer.NewSection(table, s.notifier, s.store, syncer.WithMetrics(s.metrics))
	if err != nil {
		abortWithError(c, err)
		return
	}
	defer section.Stop()

	if err := section.Watch(c.Request.Context(), syncer.Scope{AreaID: area, View: view}); err != nil {
		abortWithError(c, err)
		return
	}

	changed, unsubscribe := section.Changed()
	defer unsubscribe()

	stream(c, changed, func() []syncer.Frame {
		return []syncer.Frame{section.Frame()}
	})
}

// liveBoard streams the dashboard: active requests, available offers,
// missing persons and active alerts of one area
func (s *Server) liveBoard(c *gin.Context) {
	area, ok := areaParam(c)
	if !ok {
		return
	}

	board := syncer.NewBoard()
	for _, table := range schema.WatchedTables {
		section, err := syncer.NewSection(table, s.notifier, s.store, syncer.WithMetrics(s.metrics))
		if err != nil {
			abortWithError(c, err)
			return
		}
		board.Add(section, "")
	}
	defer board.Stop()

	if err := board.Mount(c.Request.Context(), area); err != nil {
		abortWithError(c, err)
		return
	}

	changed := make(chan struct{}, 1)
	for _, section := range board.Sections() {
		ticks, unsubscribe := section.Changed()
		defer unsubscribe()

		go func(ticks <-chan struct{}) {
			for range ticks {
				select {
				case changed <- struct{}{}:
				default:
				}
			}
		}(ticks)
	}

	stream(c, changed, board.Frames)
}
