package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/relief-api/geo"
	"github.com/bitmark-inc/relief-api/lifecycle"
	"github.com/bitmark-inc/relief-api/logmodule"
	"github.com/bitmark-inc/relief-api/notifier"
	"github.com/bitmark-inc/relief-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.ReliefCore
	mongoStore store.MongoStore

	// Lifecycle of every write
	engine *lifecycle.Engine

	// Change signals for live views
	notifier notifier.Notifier

	// Geography
	resolver   geo.AreaResolver
	mapAdapter geo.Adapter

	// JWT public key of the identity provider
	jwtPublicKey *rsa.PublicKey

	// Metrics of live view watchers
	metrics tally.Scope
}

// NewServer new instance of server
func NewServer(
	core store.ReliefCore,
	mongoStore store.MongoStore,
	n notifier.Notifier,
	resolver geo.AreaResolver,
	jwtKey *rsa.PublicKey,
	metrics tally.Scope) *Server {
	if metrics == nil {
		metrics = tally.NoopScope
	}

	return &Server{
		store:        core,
		mongoStore:   mongoStore,
		engine:       lifecycle.New(core),
		notifier:     n,
		resolver:     resolver,
		mapAdapter:   geo.NewAdapter(viper.GetInt("geo.padding"), viper.GetFloat64("geo.max_zoom")),
		jwtPublicKey: jwtKey,
		metrics:      metrics.SubScope("live"),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Accept-Language", "Geo-Position"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(s.authMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.GET("/me", s.accountDetail)
	}

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.GET("", s.listRequests)
		requestRoute.GET("/map", s.requestMap)
		requestRoute.POST("", s.createRequest)
		requestRoute.PATCH("/:id", s.editRequest)
		requestRoute.PUT("/:id/status", s.updateRequestStatus)
		requestRoute.POST("/:id/verify", s.verifyRequest)
		requestRoute.POST("/:id/action", s.markActionTaken)
		requestRoute.DELETE("/:id", s.deleteRequest)
	}

	offerRoute := apiRoute.Group("/offers")
	{
		offerRoute.GET("", s.listOffers)
		offerRoute.POST("", s.createOffer)
		offerRoute.PUT("/:id/availability", s.setOfferAvailability)
		offerRoute.DELETE("/:id", s.deleteOffer)
	}

	missingRoute := apiRoute.Group("/missing-persons")
	{
		missingRoute.GET("", s.listMissingPersons)
		missingRoute.POST("", s.reportMissing)
		missingRoute.POST("/:id/found", s.markFound)
		missingRoute.DELETE("/:id", s.deleteMissingPerson)
	}

	alertRoute := apiRoute.Group("/alerts")
	{
		alertRoute.GET("", s.listAlerts)
		alertRoute.POST("", s.createAlert)
		alertRoute.POST("/:id/deactivate", s.deactivateAlert)
	}

	areaRoute := apiRoute.Group("/areas")
	{
		areaRoute.GET("", s.listAreas)
		areaRoute.GET("/resolve", s.resolveArea)
	}

	apiRoute.GET("/stats", s.stats)

	liveRoute := apiRoute.Group("/live")
	{
		liveRoute.GET("", s.liveBoard)
		liveRoute.GET("/:collection", s.liveCollection)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("/stats", s.metricStats)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	if s.mongoStore != nil {
		if shouldInterupt(s.mongoStore.Ping(), c) {
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
