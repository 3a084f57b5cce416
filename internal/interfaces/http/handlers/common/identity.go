package common

import (
	"github.com/gin-gonic/gin"

	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/constants"
)

// IdentityFromContext resolves the caller identity the auth middleware
// stored on the request. Requests without a token resolve to anonymous.
func IdentityFromContext(c *gin.Context) user.Identity {
	identity := user.Anonymous()

	if v, ok := c.Get(constants.ContextKeyUserID); ok {
		if id, ok := v.(uint); ok {
			identity.UserID = id
		}
	}
	if v, ok := c.Get(constants.ContextKeyIsStaff); ok {
		if isStaff, ok := v.(bool); ok {
			identity.IsStaff = isStaff
		}
	}

	return identity
}
