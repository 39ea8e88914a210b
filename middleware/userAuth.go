package middleware

import (
	"context"
	"strings"

	"casexpert/models"
	"casexpert/utils"

	"github.com/gin-gonic/gin"
)

const (
	callerKey = "caller"
	tokenKey  = "sessionToken"
)

// Authenticator resolves a bearer token into the caller's identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Caller, error)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// SessionAuthMiddleware resolves the session and stores the caller in the
// context. With optional set, requests without a valid session continue
// anonymously; otherwise they are rejected with 401.
func SessionAuthMiddleware(auth Authenticator, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			if optional {
				c.Next()
				return
			}
			utils.JSONError(c, utils.KindUnauthorized, "unauthorized")
			return
		}

		caller, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if optional && utils.KindOf(err) == utils.KindUnauthorized {
				c.Next()
				return
			}
			utils.RespondError(c, utils.GetLogger(), err)
			return
		}

		c.Set(callerKey, caller)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// CallerFrom returns the authenticated caller, or nil for anonymous requests.
func CallerFrom(c *gin.Context) *models.Caller {
	if v, ok := c.Get(callerKey); ok {
		if caller, ok := v.(*models.Caller); ok {
			return caller
		}
	}
	return nil
}

// TokenFrom returns the bearer token that authenticated the request.
func TokenFrom(c *gin.Context) string {
	return c.GetString(tokenKey)
}
