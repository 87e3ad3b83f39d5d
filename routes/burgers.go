package routes

import (
	burgerControllers "github.com/Myusername84/food-server/controllers/burger"
	"github.com/gin-gonic/gin"
)

// SetupBurgerRoutes registers the public catalog endpoints.
func SetupBurgerRoutes(r *gin.Engine, deps Deps) {
	r.GET("/burgers", burgerControllers.GetBurgers(deps.Catalog))        // GET /burgers
	r.POST("/burgers", burgerControllers.FilterBurgers(deps.Catalog))    // POST /burgers
	r.GET("/burgers/:id", burgerControllers.GetBurgerByID(deps.Catalog)) // GET /burgers/:id
}
