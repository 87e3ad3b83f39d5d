package burgerControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Myusername84/food-server/store"
	"github.com/gin-gonic/gin"
)

type filterInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// GET /burgers
func GetBurgers(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.GetAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch burgers"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /burgers — filtered browse. Category "None" disables the category
// filter; the name filter is a case-insensitive substring match.
func FilterBurgers(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input filterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}

		products, err := catalog.Search(c.Request.Context(), input.Name, input.Category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch burgers"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /burgers/:id
//
// Contract quirk, kept deliberately: an unknown id is not an error, the
// endpoint answers 200 with a null body.
func GetBurgerByID(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid burger ID"})
			return
		}

		product, err := catalog.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusOK, nil)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch burger"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
