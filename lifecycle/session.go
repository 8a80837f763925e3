package lifecycle

import "github.com/bitmark-inc/relief-api/schema"

// SessionContext identifies the actor of an engine call. The zero value is
// an anonymous viewer.
type SessionContext struct {
	UserID string
	Role   schema.Role
}

func (s SessionContext) Authenticated() bool {
	return s.UserID != ""
}

func (s SessionContext) CanModerate() bool {
	return s.Authenticated() && s.Role.CanModerate()
}

func (s SessionContext) IsAdmin() bool {
	return s.Authenticated() && s.Role == schema.RoleAdmin
}

// Owns reports whether the session created a record owned by userID
func (s SessionContext) Owns(userID string) bool {
	return s.Authenticated() && s.UserID == userID
}
