package routes

import (
	cartControllers "github.com/Myusername84/food-server/controllers/cart"
	"github.com/Myusername84/food-server/middleware"
	"github.com/gin-gonic/gin"
)

// SetupCartRoutes registers the session-scoped cart endpoints. All of them
// require an authenticated user.
func SetupCartRoutes(r *gin.Engine, deps Deps) {
	cartGroup := r.Group("/", middleware.RequireAuth)
	{
		cartGroup.GET("/orders", cartControllers.GetOrders(deps.Carts))          // GET /orders
		cartGroup.POST("/cart", cartControllers.AddToCart(deps.Carts))           // POST /cart
		cartGroup.POST("/changeCount", cartControllers.ChangeCount(deps.Carts))  // POST /changeCount
		cartGroup.GET("/deleteItem/:id", cartControllers.DeleteItem(deps.Carts)) // GET /deleteItem/:id
	}
}
