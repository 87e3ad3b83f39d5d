package accountControllers

import (
	"errors"
	"net/http"

	"github.com/Myusername84/food-server/middleware"
	"github.com/Myusername84/food-server/services"
	"github.com/Myusername84/food-server/session"
	"github.com/gin-gonic/gin"
)

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// POST /auth/logIn
//
// The 400 body is always "Bad Credentials" so callers cannot tell an unknown
// email from a wrong password or a federated account.
func LogIn(accounts *services.AccountService, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.String(http.StatusBadRequest, "Bad Credentials")
			return
		}

		user, err := accounts.Login(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				c.String(http.StatusBadRequest, "Bad Credentials")
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}

		token, err := sessions.Create(c.Request.Context(), *user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		setSessionCookie(c, token)
		c.String(http.StatusOK, "User Authorized")
	}
}

// POST /auth/register
func Register(accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.String(http.StatusBadRequest, "Bad Credentials")
			return
		}

		_, err := accounts.Register(c.Request.Context(), input.Email, input.Password, input.Name)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) || errors.Is(err, services.ErrDuplicateAccount) {
				c.String(http.StatusBadRequest, "Bad Credentials")
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
			return
		}

		c.String(http.StatusOK, "User created")
	}
}

// GET /user
func GetUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /signOut
//
// Always 200: signing out an anonymous request is a no-op, and the cookie is
// left in place (later requests are simply anonymous).
func SignOut(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
			_ = sessions.SignOut(c.Request.Context(), token)
		}
		c.Status(http.StatusOK)
	}
}

// DELETE /deleteAccount
func DeleteAccount(accounts *services.AccountService, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := accounts.DeleteAccount(c.Request.Context(), user.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
			return
		}

		// The server-side session still points at the deleted user; drop it.
		if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
			_ = sessions.SignOut(c.Request.Context(), token)
		}

		c.String(http.StatusOK, "User successfully deleted")
	}
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(session.CookieName, token, int(session.DefaultTTL.Seconds()), "/", "", true, true)
}
