package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"anicms/internal/authz"
	"anicms/internal/service"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// AuthMiddleware validates the bearer token and attaches the actor built
// from its claims to the request context. Refresh tokens are not accepted
// here; they are only good for the refresh endpoint.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil || claims.Refresh {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(actorKey, claims.Actor())
		c.Next()
	}
}

// ActorFrom returns the actor set by AuthMiddleware.
func ActorFrom(c *gin.Context) (authz.Actor, bool) {
	v, exists := c.Get(actorKey)
	if !exists {
		return authz.Actor{}, false
	}
	actor, ok := v.(authz.Actor)
	return actor, ok
}

// RequireCapability gates a route on one capability tag. Admins pass every
// check. Denied requests are redirected home with an error flag, matching
// the admin panel's flash-message convention.
func RequireCapability(capability authz.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok || !actor.Can(capability) {
			c.Redirect(http.StatusSeeOther, "/?error="+url.QueryEscape("you do not have access to this page"))
			c.Abort()
			return
		}
		c.Next()
	}
}
