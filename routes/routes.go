package routes

import (
	"github.com/Myusername84/food-server/auth"
	"github.com/Myusername84/food-server/middleware"
	"github.com/Myusername84/food-server/services"
	"github.com/Myusername84/food-server/session"
	"github.com/Myusername84/food-server/store"
	"github.com/gin-gonic/gin"
)

// Deps bundles everything the route handlers need.
type Deps struct {
	Accounts *services.AccountService
	Carts    *services.CartService
	Catalog  store.CatalogStore
	Sessions *session.Manager
	Google   *auth.GoogleAuth
}

// SetupRoutes is the single entry-point that wires up the auth, catalog and
// cart route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Every handler sees the session user (if any) via the request context.
	r.Use(middleware.LoadSession(deps.Sessions))

	SetupAuthRoutes(r, deps)
	SetupBurgerRoutes(r, deps)
	SetupCartRoutes(r, deps)
}
