package api

import (
	"errors"
	"net/http"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/relief-api/lifecycle"
	"github.com/bitmark-inc/relief-api/notice"
	"github.com/bitmark-inc/relief-api/syncer"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1400: "validation failed",
		1401: "authentication required",
		1402: "permission denied",
		1403: "invalid status transition",
		1404: "record not found",

		1500: "unknown location",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorValidation        = errorJSON(1400)
	errorAuthRequired      = errorJSON(1401)
	errorForbidden         = errorJSON(1402)
	errorInvalidTransition = errorJSON(1403)
	errorNotFound          = errorJSON(1404)

	errorUnknownLocation = errorJSON(1500)
)

type ErrorResponse struct {
	Code    int64          `json:"code"`
	Message string         `json:"message"`
	Notice  *notice.Notice `json:"notice,omitempty"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// classifyError picks the status and error object of an engine error
func classifyError(err error) (int, ErrorResponse) {
	var (
		validation  *lifecycle.ValidationError
		auth        *lifecycle.AuthError
		transition  *lifecycle.InvalidTransitionError
		unknownView *syncer.UnknownViewError
	)

	switch {
	case errors.As(err, &validation):
		resp := errorValidation
		resp.Message = validation.Error()
		return http.StatusBadRequest, resp
	case errors.As(err, &auth):
		if auth.Unauthenticated {
			return http.StatusUnauthorized, errorAuthRequired
		}
		return http.StatusForbidden, errorForbidden
	case errors.As(err, &transition):
		resp := errorInvalidTransition
		resp.Message = transition.Error()
		return http.StatusConflict, resp
	case lifecycle.IsNotFound(err):
		return http.StatusNotFound, errorNotFound
	case errors.As(err, &unknownView):
		resp := errorInvalidParameters
		resp.Message = unknownView.Error()
		return http.StatusBadRequest, resp
	}
	return http.StatusInternalServerError, errorInternalServer
}

// abortWithError answers an engine error with its code and a notice in the
// language of the client. Server side failures are reported to sentry.
func abortWithError(c *gin.Context, err error) {
	code, resp := classifyError(err)
	n := localizer(c).Error(err)
	resp.Notice = &n

	if code >= http.StatusInternalServerError {
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
	}
	abortWithEncoding(c, code, resp, err)
}

func localizer(c *gin.Context) notice.Localizer {
	return notice.NewLocalizer(c.GetHeader("Accept-Language"))
}
