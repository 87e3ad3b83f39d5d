package routes

import (
	accountControllers "github.com/Myusername84/food-server/controllers/account"
	"github.com/Myusername84/food-server/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers the account and session endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/logIn", accountControllers.LogIn(deps.Accounts, deps.Sessions)) // POST /auth/logIn
		authGroup.POST("/register", accountControllers.Register(deps.Accounts))          // POST /auth/register
	}

	// Google OAuth redirect flow
	r.GET("/google", deps.Google.Redirect)
	r.GET("/google/callback", deps.Google.Callback)

	r.GET("/user", middleware.RequireAuth, accountControllers.GetUser())
	r.GET("/signOut", accountControllers.SignOut(deps.Sessions))
	r.DELETE("/deleteAccount", middleware.RequireAuth, accountControllers.DeleteAccount(deps.Accounts, deps.Sessions))
}
