package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tactify-cms/models"
	"tactify-cms/services"
)

const (
	// SessionCookie is the cookie carrying the session id.
	SessionCookie = "session_id"

	principalKey = "principal"
)

// Session resolves the request's principal from the session cookie and
// stores it on the context. Requests without a valid session proceed
// as the anonymous principal.
func Session(sessions services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, _ := c.Cookie(SessionCookie)
		c.Set(principalKey, sessions.PrincipalFromSession(sid))
		c.Next()
	}
}

// CurrentPrincipal returns the principal resolved by Session, falling
// back to anonymous if the middleware did not run.
func CurrentPrincipal(c *gin.Context) models.Principal {
	if v, exists := c.Get(principalKey); exists {
		if p, ok := v.(models.Principal); ok {
			return p
		}
	}
	return models.Anonymous
}

// RequirePermission guards a route with a required permission bit.
// Anonymous callers are sent to the login page; authenticated callers
// without the bit get an access-denied page.
func RequirePermission(permission int) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := CurrentPrincipal(c)

		if !principal.IsAuthenticated() {
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
			return
		}

		if !principal.Can(permission) {
			c.HTML(http.StatusForbidden, "error.html", gin.H{"Message": "Access denied"})
			c.Abort()
			return
		}

		c.Next()
	}
}
