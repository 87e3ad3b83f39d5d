package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Myusername84/food-server/middleware"
	"github.com/Myusername84/food-server/services"
	"github.com/gin-gonic/gin"
)

type itemInput struct {
	ProductID int `json:"id"`
	Count     int `json:"count"`
}

// GET /orders — the priced cart view for the session user.
func GetOrders(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		lines, err := carts.ViewCart(c.Request.Context(), user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}

// POST /cart — add-or-increment. Responds 200 with no body.
func AddToCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input itemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.String(http.StatusBadRequest, "Invalid input")
			return
		}

		err := carts.AddItem(c.Request.Context(), user.ID, input.ProductID, input.Count)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) || errors.Is(err, services.ErrNotFound) {
				c.String(http.StatusBadRequest, "Invalid input")
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.Status(http.StatusOK)
	}
}

// POST /changeCount — overwrite a line's count, return the refreshed view.
func ChangeCount(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input itemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.String(http.StatusBadRequest, "Invalid input")
			return
		}

		lines, err := carts.SetItemCount(c.Request.Context(), user.ID, input.ProductID, input.Count)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) || errors.Is(err, services.ErrNotFound) {
				c.String(http.StatusBadRequest, "Invalid input")
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}

// GET /deleteItem/:id — remove a line from the session user's cart only,
// return the refreshed view.
func DeleteItem(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.String(http.StatusBadRequest, "Invalid input")
			return
		}

		lines, err := carts.RemoveItem(c.Request.Context(), user.ID, productID)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) || errors.Is(err, services.ErrNotFound) {
				c.String(http.StatusBadRequest, "Invalid input")
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}
