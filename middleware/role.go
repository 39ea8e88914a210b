package middleware

import (
	"casexpert/models"
	"casexpert/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole admits only authenticated callers holding one of roles. It
// must run after SessionAuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := CallerFrom(c)
		if caller == nil {
			utils.JSONError(c, utils.KindUnauthorized, "unauthorized")
			return
		}
		for _, r := range roles {
			if caller.Role == r {
				c.Next()
				return
			}
		}
		utils.JSONError(c, utils.KindForbidden, "insufficient role")
	}
}
