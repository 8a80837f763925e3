package logmodule

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestGinrus(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Ginrus("API"))
	router.GET("/ok", func(c *gin.Context) {
		c.Set("requester", "user-1")
		c.Status(http.StatusOK)
	})
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/broken", func(c *gin.Context) {
		c.Error(errors.New("db down"))
		c.Status(http.StatusInternalServerError)
	})

	testCases := []struct {
		path  string
		level logrus.Level
	}{
		{"/ok?area=1", logrus.InfoLevel},
		{"/missing", logrus.WarnLevel},
		{"/broken", logrus.ErrorLevel},
	}

	for _, tc := range testCases {
		hook.Reset()
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", tc.path, nil))

		entry := hook.LastEntry()
		if assert.NotNil(t, entry, tc.path) {
			assert.Equal(t, tc.level, entry.Level, tc.path)
			assert.Equal(t, "API", entry.Data["prefix"])
			assert.Equal(t, tc.path, entry.Data["path"])
		}
	}

	hook.Reset()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/ok", nil))
	assert.Equal(t, "user-1", hook.LastEntry().Data["requester"])
}
