package middleware

import (
	"net/http"

	"github.com/Myusername84/food-server/models"
	"github.com/Myusername84/food-server/session"
	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// LoadSession resolves the session cookie to a user and stashes it in the
// request context. Anonymous requests pass through untouched.
func LoadSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err == nil && token != "" {
			if user, err := sessions.Current(c.Request.Context(), token); err == nil {
				c.Set(userContextKey, *user)
			}
		}
		c.Next()
	}
}

// RequireAuth rejects requests that carry no authenticated user.
func RequireAuth(c *gin.Context) {
	if _, exists := c.Get(userContextKey); !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}
	c.Next()
}

// CurrentUser returns the session user loaded by LoadSession.
func CurrentUser(c *gin.Context) (models.User, bool) {
	val, exists := c.Get(userContextKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}
