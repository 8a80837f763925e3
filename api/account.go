package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/relief-api/lifecycle"
)

// accountDetail is the API to query the role of the caller
func (s *Server) accountDetail(c *gin.Context) {
	sess := session(c)
	if !sess.Authenticated() {
		abortWithError(c, &lifecycle.AuthError{Unauthenticated: true})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"user_id":      sess.UserID,
			"role":         sess.Role,
			"can_moderate": sess.CanModerate(),
		},
	})
}
