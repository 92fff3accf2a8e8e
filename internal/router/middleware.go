package router

import (
	"net/http"

	"github.com/CEMAMI09/EVOQFORMS/internal/handlers"
	sessionstore "github.com/CEMAMI09/EVOQFORMS/internal/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionLoader resolves the cookie's opaque token against the server-side
// session store. A stale or expired token also clears the cookie, so we
// don't carry zombie cookies around.
func SessionLoader(store *sessionstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie := sessions.Default(c)
		token, ok := cookie.Get(handlers.SessionTokenKey).(string)
		if !ok {
			// No token in the cookie, proceed as a guest.
			c.Next()
			return
		}

		sess, ok := store.Get(token)
		if !ok {
			cookie.Clear()
			cookie.Options(sessions.Options{Path: "/", MaxAge: -1})
			cookie.Save()
			c.Next()
			return
		}

		// Session is live, store it in the context for the handlers.
		c.Set("session", sess)
		c.Next()
	}
}

// AuthRequired checks that SessionLoader found a live session, and otherwise
// sends the browser to the login page instead of a bare error.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("session"); !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
